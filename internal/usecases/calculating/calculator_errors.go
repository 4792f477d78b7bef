package calculating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest = errors.New("requisição inválida")
)

// CalculatorError é um erro com o código de API correspondente
type CalculatorError struct {
	Err     error             // Erro base
	Code    string            // Código de erro para API
	Fields  map[string]string // Campos inválidos (quando aplicável)
	Details string            // Detalhes adicionais
}

// Error implementa a interface error
func (e *CalculatorError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *CalculatorError) Unwrap() error {
	return e.Err
}

// NewCalculatorError cria um novo CalculatorError
func NewCalculatorError(err error, code string, details string) *CalculatorError {
	return &CalculatorError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
