package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "zero", in: 0, want: 0},
		{name: "already rounded", in: 5, want: 5},
		{name: "rounds down", in: 1.3071895, want: 1.31},
		{name: "half rounds away from zero", in: 1.005, want: 1.01},
		{name: "negative", in: -2.345, want: -2.35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundWithTwoDecimalPlace(tt.in))
		})
	}
}

func TestRoundWithTwoDecimalPlace_KeepsInfinity(t *testing.T) {
	assert.True(t, math.IsInf(RoundWithTwoDecimalPlace(math.Inf(1)), 1))
}

func TestParseFloatOrZero(t *testing.T) {
	assert.Equal(t, 49.9, ParseFloatOrZero("49.9"))
	assert.Equal(t, 2.9, ParseFloatOrZero(" 2,9 "))
	assert.Equal(t, 0.0, ParseFloatOrZero(""))
	assert.Equal(t, 0.0, ParseFloatOrZero("abc"))
	assert.Equal(t, 0.0, ParseFloatOrZero("NaN"))
	assert.Equal(t, 0.0, ParseFloatOrZero("Inf"))
}

func TestParseIntOrDefault(t *testing.T) {
	assert.Equal(t, 10, ParseIntOrDefault("10", 50))
	assert.Equal(t, 50, ParseIntOrDefault("", 50))
	assert.Equal(t, 50, ParseIntOrDefault("x", 50))
}
