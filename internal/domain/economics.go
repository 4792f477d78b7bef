// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"encoding/json"
	"math"
)

// CostConfig reúne os dados de preço e custo de um produto. Todos os percentuais
// são aplicados sobre SellingPrice; campos ausentes valem 0.
type CostConfig struct {
	SellingPrice      float64 `json:"selling_price" validate:"gte=0,lte=1000000000"`
	Cogs              float64 `json:"cogs" validate:"gte=0,lte=1000000000"`
	TaxPercent        float64 `json:"tax_percent" validate:"gte=0,lte=100"`
	RefundPercent     float64 `json:"refund_percent" validate:"gte=0,lte=100"`
	AdSpend           float64 `json:"ad_spend" validate:"gte=0,lte=1000000000"`
	FeesPercent       float64 `json:"fees_percent" validate:"gte=0,lte=100"`
	FeesCents         float64 `json:"fees_cents" validate:"gte=0,lte=100000"`
	OtherCostsPercent float64 `json:"other_costs_percent" validate:"gte=0,lte=100"`
	FixedFeesPerUnit  float64 `json:"fixed_fees_per_unit" validate:"gte=0,lte=1000000000"`
	MonthlyOverhead   float64 `json:"monthly_overhead" validate:"gte=0,lte=1000000000"`
}

// UnitEconomicsResult é a economia unitária calculada a partir de um CostConfig
type UnitEconomicsResult struct {
	HasSellingPrice bool    `json:"has_selling_price"`
	GrossMargin     float64 `json:"gross_margin"`
	ProcessingFees  float64 `json:"processing_fees"`
	TaxCost         float64 `json:"tax_cost"`
	RefundCost      float64 `json:"refund_cost"`
	OtherCosts      float64 `json:"other_costs"`
	ProfitPerUnit   float64 `json:"profit_per_unit"`
	FixedCosts      float64 `json:"fixed_costs"`
	BreakevenRoas   float64 `json:"breakeven_roas"`
	BreakevenUnits  int     `json:"breakeven_units"`
	HasAdSpend      bool    `json:"has_ad_spend"`
}

// MarginScenario é uma linha da tabela de cenários de margem. BreakevenRoas e
// BreakevenOrders podem ser +Inf quando o lucro alvo é desprezível.
type MarginScenario struct {
	Margin          float64 `json:"margin"`
	Price           float64 `json:"price"`
	Profit          float64 `json:"profit"`
	BreakevenRoas   float64 `json:"breakeven_roas"`
	BreakevenOrders float64 `json:"breakeven_orders"`
}

// MarshalJSON serializa valores infinitos como null
func (m MarginScenario) MarshalJSON() ([]byte, error) {
	type scenario MarginScenario
	return json.Marshal(struct {
		scenario
		BreakevenRoas   *float64 `json:"breakeven_roas"`
		BreakevenOrders *float64 `json:"breakeven_orders"`
		Reachable       bool     `json:"reachable"`
	}{
		scenario:        scenario(m),
		BreakevenRoas:   finiteOrNil(m.BreakevenRoas),
		BreakevenOrders: finiteOrNil(m.BreakevenOrders),
		Reachable:       m.Reachable(),
	})
}

// Reachable indica se o cenário tem um ROAS de equilíbrio finito
func (m MarginScenario) Reachable() bool {
	return !math.IsInf(m.BreakevenRoas, 0)
}

func finiteOrNil(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

// BundleTier é uma oferta de kit: quantidade de unidades vendidas por um preço único
type BundleTier struct {
	Quantity    float64 `json:"quantity" validate:"gte=0,lte=10000"`
	Price       float64 `json:"price" validate:"gte=0,lte=1000000000"`
	CogsPerUnit float64 `json:"cogs_per_unit" validate:"gte=0,lte=1000000000"`
}

// BundleResult é a economia de um pedido de kit
type BundleResult struct {
	Quantity        float64 `json:"quantity"`
	Price           float64 `json:"price"`
	PricePerUnit    float64 `json:"price_per_unit"`
	TotalCogs       float64 `json:"total_cogs"`
	Fees            float64 `json:"fees"`
	OtherCosts      float64 `json:"other_costs"`
	ProfitPerOrder  float64 `json:"profit_per_order"`
	BreakevenRoas   float64 `json:"breakeven_roas"`
	BreakevenOrders int     `json:"breakeven_orders"`
}

// FeePlan é um plano de taxas de uma plataforma de pagamento
type FeePlan struct {
	Name        string  `json:"name"`
	Label       string  `json:"label"`
	FeesPercent float64 `json:"fees_percent"`
	FeesCents   float64 `json:"fees_cents"`
	Custom      bool    `json:"custom"`
}

// FeeSelection é o plano ativo no formulário junto com as taxas em uso
type FeeSelection struct {
	Plan        string  `json:"plan"`
	FeesPercent float64 `json:"fees_percent"`
	FeesCents   float64 `json:"fees_cents"`
}

// CalculatorRequest é o corpo aceito pelos endpoints da calculadora. O CostConfig
// embutido é validado à parte, para que os erros saiam com o nome json do campo.
type CalculatorRequest struct {
	CostConfig    `validate:"-"`
	FeePlan       string       `json:"fee_plan"`
	TargetMargins []float64    `json:"target_margins" validate:"max=24,dive,gte=0,lte=1"`
	Tiers         []BundleTier `json:"tiers" validate:"max=20,dive"`
}

// CalculationReport é a resposta completa da calculadora
type CalculationReport struct {
	Inputs              CostConfig          `json:"inputs"`
	FeeSelection        FeeSelection        `json:"fee_selection"`
	UnitEconomics       UnitEconomicsResult `json:"unit_economics"`
	ProfitMarginPercent float64             `json:"profit_margin_percent"`
	BreakevenCAC        float64             `json:"breakeven_cac"`
	Scenarios           []MarginScenario    `json:"scenarios"`
	Bundles             []BundleResult      `json:"bundles,omitempty"`
}
