package calculator

import (
	"strings"

	"github.com/vfg2006/profit-calculator-api/internal/domain"
)

const (
	FeePlanBasic    = "basic"
	FeePlanStandard = "standard"
	FeePlanAdvanced = "advanced"
	FeePlanCustom   = "custom"
)

var feePlans = []domain.FeePlan{
	{Name: FeePlanBasic, Label: "Basic", FeesPercent: 2.9, FeesCents: 30},
	{Name: FeePlanStandard, Label: "Standard", FeesPercent: 2.6, FeesCents: 30},
	{Name: FeePlanAdvanced, Label: "Advanced", FeesPercent: 2.4, FeesCents: 30},
	{Name: FeePlanCustom, Label: "Custom", Custom: true},
}

// FeePlans devolve uma cópia da tabela de planos, na ordem de exibição
func FeePlans() []domain.FeePlan {
	plans := make([]domain.FeePlan, len(feePlans))
	copy(plans, feePlans)
	return plans
}

// ResolveFeePlan procura um plano pelo nome, ignorando caixa e espaços
func ResolveFeePlan(name string) (domain.FeePlan, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, plan := range feePlans {
		if plan.Name == key {
			return plan, true
		}
	}
	return domain.FeePlan{}, false
}

// SelectFeePlan ativa um plano. Planos nomeados sobrescrevem as taxas; custom ou
// nome desconhecido mantém as taxas atuais e passa para custom.
func SelectFeePlan(sel domain.FeeSelection, name string) domain.FeeSelection {
	plan, ok := ResolveFeePlan(name)
	if !ok || plan.Custom {
		sel.Plan = FeePlanCustom
		return sel
	}

	return domain.FeeSelection{
		Plan:        plan.Name,
		FeesPercent: plan.FeesPercent,
		FeesCents:   plan.FeesCents,
	}
}

// EditFeesPercent registra uma edição manual do percentual, o que ativa o plano custom
func EditFeesPercent(sel domain.FeeSelection, feesPercent float64) domain.FeeSelection {
	sel.Plan = FeePlanCustom
	sel.FeesPercent = feesPercent
	return sel
}

// EditFeesCents registra uma edição manual da taxa fixa, o que ativa o plano custom
func EditFeesCents(sel domain.FeeSelection, feesCents float64) domain.FeeSelection {
	sel.Plan = FeePlanCustom
	sel.FeesCents = feesCents
	return sel
}

// ApplyFeeSelection copia as taxas da seleção para a configuração de custos
func ApplyFeeSelection(cfg domain.CostConfig, sel domain.FeeSelection) domain.CostConfig {
	cfg.FeesPercent = sel.FeesPercent
	cfg.FeesCents = sel.FeesCents
	return cfg
}
