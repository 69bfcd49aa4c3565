package handler

import (
	"net/http"

	"github.com/inpulse/inpulse-api/internal/usecases/selling"
	"github.com/inpulse/inpulse-api/pkg/apiErrors"
	"github.com/inpulse/inpulse-api/pkg/log"
)

func ListSales(service selling.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		sales, err := service.ListSales(r.Context(), claims.UserID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("sales: erro ao listar")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar vendas", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, sales)
	}
}

func ListCampaigns(service selling.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		campaigns, err := service.ListCampaigns(r.Context(), claims.UserID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("campaigns: erro ao listar")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar campanhas", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, campaigns)
	}
}

func ListProducts(service selling.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		products, err := service.ListProducts(r.Context(), claims.UserID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("products: erro ao listar")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar produtos", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, products)
	}
}
