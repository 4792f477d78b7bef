package waitlisting

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidEmail      = errors.New("email inválido")
	ErrInvalidRequest    = errors.New("requisição inválida")
	ErrGenerateID        = errors.New("erro ao gerar identificador")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// WaitlistError é um erro com contexto adicional para a lista de espera
type WaitlistError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *WaitlistError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *WaitlistError) Unwrap() error {
	return e.Err
}

// NewWaitlistError cria um novo WaitlistError
func NewWaitlistError(err error, code string, details string) *WaitlistError {
	return &WaitlistError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
