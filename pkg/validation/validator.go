// Package validation encapsula o go-playground/validator com mensagens legíveis.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validator é um wrapper em volta do go-playground/validator
type Validator struct {
	validate *validator.Validate
}

var (
	defaultValidator *Validator
	once             sync.Once
)

// New cria uma instância de validação usando as tags json como nome de campo
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Default devolve a instância compartilhada (validator.Validate é seguro para uso concorrente)
func Default() *Validator {
	once.Do(func() {
		defaultValidator = New()
	})
	return defaultValidator
}

// Struct valida uma struct pelas tags `validate`
func (v *Validator) Struct(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// Var valida um valor isolado contra uma tag
func (v *Validator) Var(field any, tag string) error {
	if err := v.validate.Var(field, tag); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// Error agrega as violações encontradas, campo -> regra
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	messages := make([]string, 0, len(names))
	for _, name := range names {
		messages = append(messages, fmt.Sprintf("field '%s' failed validation: %s", name, e.Fields[name]))
	}
	return "validation failed: " + strings.Join(messages, "; ")
}

// FieldErrors extrai campo -> regra violada, útil para o campo details da API
func FieldErrors(err error) map[string]string {
	var verr *Error
	if !errors.As(err, &verr) {
		return nil
	}
	return verr.Fields
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fields := make(map[string]string, len(validationErrs))
	for _, e := range validationErrs {
		// Namespace vem como "Struct.campo"; o prefixo do tipo não interessa ao cliente
		name := e.Namespace()
		if idx := strings.Index(name, "."); idx >= 0 {
			name = name[idx+1:]
		}
		if name == "" {
			name = "value"
		}
		fields[name] = e.Tag()
	}

	return &Error{Fields: fields}
}
