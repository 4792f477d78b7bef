package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundWithTwoDecimalPlace arredonda para duas casas (meio para longe do zero).
// Valores infinitos ou NaN são devolvidos sem alteração.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return f
	}

	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}

// ParseFloatOrZero converte o texto de um campo numérico vindo do cliente.
// Texto vazio ou inválido vira 0, nunca um erro.
func ParseFloatOrZero(raw string) float64 {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}

	return value
}

// ParseIntOrDefault converte um parâmetro inteiro, usando fallback quando inválido.
func ParseIntOrDefault(raw string, fallback int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}
