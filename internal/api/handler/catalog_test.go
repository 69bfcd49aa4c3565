package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/inpulse/inpulse-api/internal/domain"
	"github.com/inpulse/inpulse-api/internal/usecases/selling/mocks"
)

func TestCatalogRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCatalog(ctrl)

	service.EXPECT().ListSales(gomock.Any(), "user-1").Return([]*domain.Sale{{ID: "s-1", Revenue: 10}}, nil)
	rec := serve(Catalog(service), newRequest(http.MethodGet, "/api/sales", "", ownerClaims))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 1)

	service.EXPECT().ListCampaigns(gomock.Any(), "user-1").Return(nil, errors.New("timeout"))
	rec = serve(Catalog(service), newRequest(http.MethodGet, "/api/campaigns", "", ownerClaims))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	service.EXPECT().ListProducts(gomock.Any(), "user-1").Return([]*domain.ProductSummary{
		{Product: domain.Product{ID: "p-1", SalePrice: 200, CostPerUnit: 50}, TotalSalesCount: 3, ProfitMargin: 75},
	}, nil)
	rec = serve(Catalog(service), newRequest(http.MethodGet, "/api/products", "", ownerClaims))
	assert.Equal(t, http.StatusOK, rec.Code)

	products := decode[[]map[string]any](t, rec)
	assert.Equal(t, 75.0, products[0]["profitMargin"])
	assert.Equal(t, 3.0, products[0]["totalSalesCount"])
}
