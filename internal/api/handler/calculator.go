package handler

import (
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-calculator-api/internal/domain"
	"github.com/vfg2006/profit-calculator-api/internal/usecases/calculating"
	"github.com/vfg2006/profit-calculator-api/pkg/apiErrors"
	"github.com/vfg2006/profit-calculator-api/pkg/utils"
)

type FeePlansResponse struct {
	Plans []domain.FeePlan `json:"plans"`
}

type ScenariosResponse struct {
	Scenarios []domain.MarginScenario `json:"scenarios"`
}

type BundlesResponse struct {
	Bundles []domain.BundleResult `json:"bundles"`
}

// Calculate recebe os custos no corpo JSON e devolve o relatório completo
func Calculate(service calculating.Calculator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeCalculatorRequest(w, r)
		if !ok {
			return
		}

		report, err := service.Calculate(req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}

// CalculateFromQuery aceita os custos como query params; valores ilegíveis valem 0
func CalculateFromQuery(service calculating.Calculator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		report, err := service.Calculate(calculatorRequestFromQuery(r.URL.Query()))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}

func Scenarios(service calculating.Calculator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeCalculatorRequest(w, r)
		if !ok {
			return
		}

		scenarios, err := service.Scenarios(req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ScenariosResponse{Scenarios: scenarios})
	})
}

func Bundles(service calculating.Calculator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeCalculatorRequest(w, r)
		if !ok {
			return
		}

		bundles, err := service.Bundles(req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, BundlesResponse{Bundles: bundles})
	})
}

func FeePlans(service calculating.Calculator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, FeePlansResponse{Plans: service.FeePlans()})
	})
}

func decodeCalculatorRequest(w http.ResponseWriter, r *http.Request) (*domain.CalculatorRequest, bool) {
	var req domain.CalculatorRequest
	if err := decodeBody(w, r, &req); err != nil {
		logrus.WithError(err).Warn("calculator: corpo inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return nil, false
	}
	return &req, true
}

func calculatorRequestFromQuery(query url.Values) *domain.CalculatorRequest {
	req := &domain.CalculatorRequest{
		CostConfig: domain.CostConfig{
			SellingPrice:      utils.ParseFloatOrZero(query.Get("selling_price")),
			Cogs:              utils.ParseFloatOrZero(query.Get("cogs")),
			TaxPercent:        utils.ParseFloatOrZero(query.Get("tax_percent")),
			RefundPercent:     utils.ParseFloatOrZero(query.Get("refund_percent")),
			AdSpend:           utils.ParseFloatOrZero(query.Get("ad_spend")),
			FeesPercent:       utils.ParseFloatOrZero(query.Get("fees_percent")),
			FeesCents:         utils.ParseFloatOrZero(query.Get("fees_cents")),
			OtherCostsPercent: utils.ParseFloatOrZero(query.Get("other_costs_percent")),
			FixedFeesPerUnit:  utils.ParseFloatOrZero(query.Get("fixed_fees_per_unit")),
			MonthlyOverhead:   utils.ParseFloatOrZero(query.Get("monthly_overhead")),
		},
		FeePlan: query.Get("fee_plan"),
	}

	if margins, ok := query["margin"]; ok {
		req.TargetMargins = make([]float64, 0, len(margins))
		for _, raw := range margins {
			req.TargetMargins = append(req.TargetMargins, utils.ParseFloatOrZero(raw))
		}
	}

	return req
}
