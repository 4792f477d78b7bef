package calculator

import "github.com/vfg2006/profit-calculator-api/internal/domain"

// ComputeBundleTier calcula a economia de um pedido de kit. Taxas e outros custos
// incidem sobre o preço do kit, não sobre o preço unitário.
func ComputeBundleTier(tier domain.BundleTier, cfg domain.CostConfig) domain.BundleResult {
	totalCogs := tier.CogsPerUnit * tier.Quantity
	fees := ProcessingFees(tier.Price, cfg.FeesPercent, cfg.FeesCents)
	otherCosts := percentOf(tier.Price, cfg.OtherCostsPercent)
	profitPerOrder := tier.Price - totalCogs - fees - otherCosts

	result := domain.BundleResult{
		Quantity:       tier.Quantity,
		Price:          tier.Price,
		TotalCogs:      totalCogs,
		Fees:           fees,
		OtherCosts:     otherCosts,
		ProfitPerOrder: profitPerOrder,
	}

	if tier.Quantity > 0 {
		result.PricePerUnit = tier.Price / tier.Quantity
	}

	if profitPerOrder > 0 {
		result.BreakevenRoas = finiteOrZero(tier.Price / profitPerOrder)
		result.BreakevenOrders = ceilCount(cfg.AdSpend / profitPerOrder)
	}

	return result
}

// ComputeBundleTiers aplica ComputeBundleTier a cada kit, mantendo a ordem
func ComputeBundleTiers(tiers []domain.BundleTier, cfg domain.CostConfig) []domain.BundleResult {
	results := make([]domain.BundleResult, 0, len(tiers))
	for _, tier := range tiers {
		results = append(results, ComputeBundleTier(tier, cfg))
	}
	return results
}
