package calculator

import (
	"math"

	"github.com/vfg2006/profit-calculator-api/internal/domain"
	"github.com/vfg2006/profit-calculator-api/pkg/utils"
)

// minTargetProfit abaixo deste lucro alvo o cenário é considerado inalcançável
const minTargetProfit = 0.01

var defaultTargetMargins = []float64{0, 0.10, 0.20, 0.30, 0.40, 0.50}

// DefaultTargetMargins devolve uma cópia das margens alvo exibidas por padrão
func DefaultTargetMargins() []float64 {
	margins := make([]float64, len(defaultTargetMargins))
	copy(margins, defaultTargetMargins)
	return margins
}

// ComputeMarginScenarios monta um cenário por margem alvo, na ordem recebida.
// Lucro e ROAS saem arredondados em duas casas.
func ComputeMarginScenarios(cfg domain.CostConfig, targetMargins []float64) []domain.MarginScenario {
	scenarios := make([]domain.MarginScenario, 0, len(targetMargins))

	for _, margin := range targetMargins {
		targetProfit := cfg.SellingPrice * margin

		breakevenRoas := math.Inf(1)
		breakevenOrders := math.Inf(1)
		if targetProfit > minTargetProfit {
			breakevenRoas = cfg.SellingPrice / targetProfit
			breakevenOrders = math.Ceil(cfg.AdSpend / targetProfit)
		}

		scenarios = append(scenarios, domain.MarginScenario{
			Margin:          margin,
			Price:           cfg.SellingPrice,
			Profit:          utils.RoundWithTwoDecimalPlace(targetProfit),
			BreakevenRoas:   utils.RoundWithTwoDecimalPlace(breakevenRoas),
			BreakevenOrders: breakevenOrders,
		})
	}

	return scenarios
}
