// Package calculator implementa o modelo de economia unitária: lucro por unidade,
// ROAS de equilíbrio, cenários de margem e comparação de kits. Todas as funções são
// puras e nunca retornam erro; entradas degeneradas resultam em zeros.
package calculator

import (
	"math"

	"github.com/vfg2006/profit-calculator-api/internal/domain"
)

// ComputeUnitEconomics calcula lucro por unidade e pontos de equilíbrio.
// Preço de venda <= 0 devolve o resultado inválido, com tudo zerado.
func ComputeUnitEconomics(cfg domain.CostConfig) domain.UnitEconomicsResult {
	if cfg.SellingPrice <= 0 {
		return domain.UnitEconomicsResult{}
	}

	price := cfg.SellingPrice

	grossMargin := price - cfg.Cogs - cfg.FixedFeesPerUnit
	processingFees := ProcessingFees(price, cfg.FeesPercent, cfg.FeesCents)
	taxCost := percentOf(price, cfg.TaxPercent)
	refundCost := percentOf(price, cfg.RefundPercent)
	otherCosts := percentOf(price, cfg.OtherCostsPercent)

	profitPerUnit := grossMargin - processingFees - taxCost - refundCost - otherCosts
	fixedCosts := cfg.AdSpend + cfg.MonthlyOverhead

	breakevenUnits := 0
	if profitPerUnit > 0 && fixedCosts > 0 {
		breakevenUnits = ceilCount(fixedCosts / profitPerUnit)
	}

	breakevenRoas := 0.0
	if profitPerUnit > 0 {
		breakevenRoas = finiteOrZero(price / profitPerUnit)
	}

	return domain.UnitEconomicsResult{
		HasSellingPrice: true,
		GrossMargin:     grossMargin,
		ProcessingFees:  processingFees,
		TaxCost:         taxCost,
		RefundCost:      refundCost,
		OtherCosts:      otherCosts,
		ProfitPerUnit:   profitPerUnit,
		FixedCosts:      fixedCosts,
		BreakevenRoas:   breakevenRoas,
		BreakevenUnits:  breakevenUnits,
		HasAdSpend:      cfg.AdSpend > 0,
	}
}

// ProcessingFees é a taxa do meio de pagamento: percentual sobre o valor mais a
// parte fixa, informada em centavos.
func ProcessingFees(amount, feesPercent, feesCents float64) float64 {
	return percentOf(amount, feesPercent) + feesCents/100
}

func percentOf(amount, percent float64) float64 {
	return amount * (percent / 100)
}

// ceilCount arredonda uma quantidade para cima, saturando em math.MaxInt.
// Razões negativas ou NaN viram 0.
func ceilCount(ratio float64) int {
	count := math.Ceil(ratio)
	switch {
	case math.IsNaN(count) || count <= 0:
		return 0
	case count >= math.MaxInt:
		return math.MaxInt
	}
	return int(count)
}

func finiteOrZero(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}
