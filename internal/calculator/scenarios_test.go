package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/profit-calculator-api/internal/domain"
)

func TestComputeMarginScenarios_DefaultMargins(t *testing.T) {
	cfg := domain.CostConfig{SellingPrice: 50, AdSpend: 50}

	scenarios := ComputeMarginScenarios(cfg, DefaultTargetMargins())

	require.Len(t, scenarios, 6)

	expected := []struct {
		margin float64
		profit float64
		roas   float64
		orders float64
	}{
		{margin: 0.10, profit: 5, roas: 10, orders: 10},
		{margin: 0.20, profit: 10, roas: 5, orders: 5},
		{margin: 0.30, profit: 15, roas: 3.33, orders: 4},
		{margin: 0.40, profit: 20, roas: 2.5, orders: 3},
		{margin: 0.50, profit: 25, roas: 2, orders: 2},
	}

	zero := scenarios[0]
	assert.Equal(t, 0.0, zero.Margin)
	assert.Equal(t, 0.0, zero.Profit)
	assert.True(t, math.IsInf(zero.BreakevenRoas, 1))
	assert.True(t, math.IsInf(zero.BreakevenOrders, 1))
	assert.False(t, zero.Reachable())

	for i, want := range expected {
		got := scenarios[i+1]
		assert.Equal(t, want.margin, got.Margin)
		assert.Equal(t, 50.0, got.Price)
		assert.Equal(t, want.profit, got.Profit)
		assert.Equal(t, want.roas, got.BreakevenRoas)
		assert.Equal(t, want.orders, got.BreakevenOrders)
		assert.True(t, got.Reachable())
	}
}

func TestComputeMarginScenarios_AscendingOrder(t *testing.T) {
	scenarios := ComputeMarginScenarios(domain.CostConfig{SellingPrice: 80}, DefaultTargetMargins())

	for i := 1; i < len(scenarios); i++ {
		assert.Greater(t, scenarios[i].Margin, scenarios[i-1].Margin)
	}
}

func TestComputeMarginScenarios_KeepsInputOrder(t *testing.T) {
	scenarios := ComputeMarginScenarios(domain.CostConfig{SellingPrice: 50}, []float64{0.5, 0.1, 0.3})

	require.Len(t, scenarios, 3)
	assert.Equal(t, 0.5, scenarios[0].Margin)
	assert.Equal(t, 0.1, scenarios[1].Margin)
	assert.Equal(t, 0.3, scenarios[2].Margin)
}

func TestComputeMarginScenarios_ZeroAdSpend(t *testing.T) {
	scenarios := ComputeMarginScenarios(domain.CostConfig{SellingPrice: 50}, []float64{0.2})

	require.Len(t, scenarios, 1)
	assert.Equal(t, 0.0, scenarios[0].BreakevenOrders)
	assert.Equal(t, 5.0, scenarios[0].BreakevenRoas)
}

func TestComputeMarginScenarios_NegligibleProfit(t *testing.T) {
	tests := []struct {
		name string
		cfg  domain.CostConfig
	}{
		{name: "tiny price", cfg: domain.CostConfig{SellingPrice: 0.02, AdSpend: 10}},
		{name: "no price", cfg: domain.CostConfig{AdSpend: 10}},
		{name: "negative price", cfg: domain.CostConfig{SellingPrice: -10, AdSpend: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scenarios := ComputeMarginScenarios(tt.cfg, []float64{0.5})

			require.Len(t, scenarios, 1)
			assert.True(t, math.IsInf(scenarios[0].BreakevenRoas, 1))
			assert.True(t, math.IsInf(scenarios[0].BreakevenOrders, 1))
		})
	}
}

func TestComputeMarginScenarios_EmptyMargins(t *testing.T) {
	scenarios := ComputeMarginScenarios(domain.CostConfig{SellingPrice: 50}, nil)

	assert.NotNil(t, scenarios)
	assert.Empty(t, scenarios)
}

func TestDefaultTargetMargins_ReturnsCopy(t *testing.T) {
	margins := DefaultTargetMargins()
	margins[0] = 0.99

	assert.Equal(t, []float64{0, 0.10, 0.20, 0.30, 0.40, 0.50}, DefaultTargetMargins())
}
