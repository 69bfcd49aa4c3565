package domain

type Product struct {
	ID             string  `json:"id"`
	TenantID       string  `json:"userId"`
	Name           string  `json:"name"`
	SalePrice      float64 `json:"salePrice"`
	CostPerUnit    float64 `json:"costPerUnit"`
	InventoryLevel int     `json:"inventoryLevel"`
}

// ProductSummary é o produto com os campos calculados da listagem
type ProductSummary struct {
	Product
	TotalSalesCount int     `json:"totalSalesCount"`
	ProfitMargin    float64 `json:"profitMargin"`
}

// CalculateProfitMargin retorna a margem percentual, 0 quando não há preço de venda
func (p *Product) CalculateProfitMargin() float64 {
	if p.SalePrice <= 0 {
		return 0
	}
	return (p.SalePrice - p.CostPerUnit) / p.SalePrice * 100
}
