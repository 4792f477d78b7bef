package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/profit-calculator-api/internal/api/handler/router"
	"github.com/vfg2006/profit-calculator-api/internal/domain"
	"github.com/vfg2006/profit-calculator-api/internal/usecases/calculating"
	"github.com/vfg2006/profit-calculator-api/internal/usecases/calculating/mocks"
	"github.com/vfg2006/profit-calculator-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func calculatorRouter(service calculating.Calculator) http.Handler {
	return router.New(router.WithRoutes(Calculator(service)...))
}

func TestCalculate_JSONBody(t *testing.T) {
	rt := calculatorRouter(calculating.NewService(nil))

	body := `{"selling_price":50,"cogs":10,"fee_plan":"basic","target_margins":[0.2,0]}`
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/calculator", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var report struct {
		FeeSelection  domain.FeeSelection        `json:"fee_selection"`
		UnitEconomics domain.UnitEconomicsResult `json:"unit_economics"`
		Scenarios     []map[string]any           `json:"scenarios"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))

	assert.Equal(t, "basic", report.FeeSelection.Plan)
	assert.InDelta(t, 38.25, report.UnitEconomics.ProfitPerUnit, 1e-9)
	require.Len(t, report.Scenarios, 2)
	assert.Equal(t, 5.0, report.Scenarios[0]["breakeven_roas"])
	assert.Equal(t, true, report.Scenarios[0]["reachable"])
	assert.Nil(t, report.Scenarios[1]["breakeven_roas"])
	assert.Equal(t, false, report.Scenarios[1]["reachable"])
}

func TestCalculate_EmptyBodyIsDegenerateNotError(t *testing.T) {
	rt := calculatorRouter(calculating.NewService(nil))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/calculator", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"has_selling_price":false`)
}

func TestCalculate_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCalculator(ctrl)

	rec := httptest.NewRecorder()
	calculatorRouter(service).ServeHTTP(rec,
		httptest.NewRequest(http.MethodPost, "/v1/calculator", strings.NewReader(`{"selling_price":`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInvalidRequest)
}

func TestCalculate_TooManyMargins(t *testing.T) {
	rt := calculatorRouter(calculating.NewService(nil))

	margins := strings.Repeat("0.1,", 24) + "0.1"
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/calculator",
		strings.NewReader(`{"selling_price":50,"target_margins":[`+margins+`]}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "target_margins")
}

func TestCalculate_OutOfRangeInputs(t *testing.T) {
	rt := calculatorRouter(calculating.NewService(nil))

	body := `{"selling_price":10,"ad_spend":1.7e308,"monthly_overhead":1.7e308,"cogs":-1}`
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/calculator", strings.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
	assert.Equal(t, map[string]any{
		"ad_spend":         "lte",
		"monthly_overhead": "lte",
		"cogs":             "gte",
	}, apiErr.Details)
}

func TestCalculateFromQuery_CoercesInvalidNumbers(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCalculator(ctrl)

	service.EXPECT().
		Calculate(gomock.Any()).
		DoAndReturn(func(req *domain.CalculatorRequest) (*domain.CalculationReport, error) {
			assert.Equal(t, 49.9, req.SellingPrice)
			assert.Zero(t, req.Cogs)
			assert.Equal(t, 2.5, req.TaxPercent)
			assert.Equal(t, "standard", req.FeePlan)
			assert.Equal(t, []float64{0.1, 0}, req.TargetMargins)
			return &domain.CalculationReport{}, nil
		})

	req := httptest.NewRequest(http.MethodGet,
		"/v1/calculator?selling_price=49.9&cogs=abc&tax_percent=2,5&fee_plan=standard&margin=0.1&margin=x", nil)
	rec := httptest.NewRecorder()
	calculatorRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCalculateFromQuery_NoMarginsUsesDefaults(t *testing.T) {
	req := calculatorRequestFromQuery(map[string][]string{"selling_price": {"50"}})
	assert.Nil(t, req.TargetMargins)
	assert.Equal(t, 50.0, req.SellingPrice)
}

func TestScenariosAndBundles(t *testing.T) {
	rt := calculatorRouter(calculating.NewService(nil))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/calculator/scenarios",
		strings.NewReader(`{"selling_price":50,"ad_spend":25}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var scenarios ScenariosResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &scenarios))
	assert.Len(t, scenarios.Scenarios, 6)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/calculator/bundles",
		strings.NewReader(`{"fees_percent":2.9,"fees_cents":30,"tiers":[{"quantity":2,"price":90,"cogs_per_unit":10}]}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var bundles BundlesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bundles))
	require.Len(t, bundles.Bundles, 1)
	assert.Equal(t, 20.0, bundles.Bundles[0].TotalCogs)
}

func TestFeePlans(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCalculator(ctrl)
	service.EXPECT().FeePlans().Return([]domain.FeePlan{{Name: "basic", FeesPercent: 2.9, FeesCents: 30}})

	rec := httptest.NewRecorder()
	calculatorRouter(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/calculator/fee-plans", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp FeePlansResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Plans, 1)
	assert.Equal(t, "basic", resp.Plans[0].Name)
}
