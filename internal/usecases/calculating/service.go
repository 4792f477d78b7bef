package calculating

import (
	"maps"

	"github.com/vfg2006/profit-calculator-api/internal/calculator"
	"github.com/vfg2006/profit-calculator-api/internal/domain"
	"github.com/vfg2006/profit-calculator-api/pkg/apiErrors"
	"github.com/vfg2006/profit-calculator-api/pkg/validation"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type Calculator interface {
	Calculate(req *domain.CalculatorRequest) (*domain.CalculationReport, error)
	Scenarios(req *domain.CalculatorRequest) ([]domain.MarginScenario, error)
	Bundles(req *domain.CalculatorRequest) ([]domain.BundleResult, error)
	FeePlans() []domain.FeePlan
}

type Service struct {
	validator *validation.Validator
}

func NewService(validator *validation.Validator) Calculator {
	if validator == nil {
		validator = validation.Default()
	}

	return &Service{
		validator: validator,
	}
}

func (s *Service) Calculate(req *domain.CalculatorRequest) (*domain.CalculationReport, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	selection := resolveFeeSelection(req)
	cfg := calculator.ApplyFeeSelection(req.CostConfig, selection)
	unit := calculator.ComputeUnitEconomics(cfg)

	report := &domain.CalculationReport{
		Inputs:        cfg,
		FeeSelection:  selection,
		UnitEconomics: unit,
		Scenarios:     calculator.ComputeMarginScenarios(cfg, targetMargins(req)),
	}

	if unit.HasSellingPrice && unit.ProfitPerUnit > 0 {
		report.ProfitMarginPercent = unit.ProfitPerUnit / cfg.SellingPrice * 100
		report.BreakevenCAC = unit.ProfitPerUnit
	}

	if len(req.Tiers) > 0 {
		report.Bundles = calculator.ComputeBundleTiers(req.Tiers, cfg)
	}

	return report, nil
}

func (s *Service) Scenarios(req *domain.CalculatorRequest) ([]domain.MarginScenario, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	cfg := calculator.ApplyFeeSelection(req.CostConfig, resolveFeeSelection(req))
	return calculator.ComputeMarginScenarios(cfg, targetMargins(req)), nil
}

func (s *Service) Bundles(req *domain.CalculatorRequest) ([]domain.BundleResult, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	cfg := calculator.ApplyFeeSelection(req.CostConfig, resolveFeeSelection(req))
	return calculator.ComputeBundleTiers(req.Tiers, cfg), nil
}

func (s *Service) FeePlans() []domain.FeePlan {
	return calculator.FeePlans()
}

func (s *Service) validate(req *domain.CalculatorRequest) error {
	if req == nil {
		return NewCalculatorError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "corpo da requisição ausente")
	}

	fields := make(map[string]string)
	for _, target := range []any{req.CostConfig, req} {
		if err := s.validator.Struct(target); err != nil {
			maps.Copy(fields, validation.FieldErrors(err))
		}
	}

	if len(fields) > 0 {
		verr := &validation.Error{Fields: fields}
		calcErr := NewCalculatorError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, verr.Error())
		calcErr.Fields = fields
		return calcErr
	}

	return nil
}

// resolveFeeSelection parte das taxas enviadas (plano custom) e aplica o plano
// nomeado na requisição, quando houver
func resolveFeeSelection(req *domain.CalculatorRequest) domain.FeeSelection {
	selection := domain.FeeSelection{
		Plan:        calculator.FeePlanCustom,
		FeesPercent: req.FeesPercent,
		FeesCents:   req.FeesCents,
	}

	if req.FeePlan == "" {
		return selection
	}

	return calculator.SelectFeePlan(selection, req.FeePlan)
}

func targetMargins(req *domain.CalculatorRequest) []float64 {
	if req.TargetMargins == nil {
		return calculator.DefaultTargetMargins()
	}
	return req.TargetMargins
}
