package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-calculator-api/internal/usecases/authenticating"
	"github.com/vfg2006/profit-calculator-api/internal/usecases/calculating"
	"github.com/vfg2006/profit-calculator-api/internal/usecases/waitlisting"
	"github.com/vfg2006/profit-calculator-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1 << 20

// writeJSON só escreve o status depois de codificar o payload; falha de
// codificação responde 500
func writeJSON(w http.ResponseWriter, status int, payload any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(buf.Bytes()); err != nil {
		logrus.WithError(err).Error("Erro ao escrever resposta")
	}
}

// decodeBody lê o corpo JSON; corpo vazio mantém os valores zero de dst
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// writeServiceError traduz os erros tipados dos casos de uso para o envelope da API
func writeServiceError(w http.ResponseWriter, err error) {
	var (
		calcErr     *calculating.CalculatorError
		waitlistErr *waitlisting.WaitlistError
		authErr     *authenticating.AuthError
	)

	switch {
	case errors.As(err, &calcErr):
		var details any
		if len(calcErr.Fields) > 0 {
			details = calcErr.Fields
		}
		apiErrors.WriteError(w, calcErr.Code, calcErr.Error(), details)
	case errors.As(err, &waitlistErr):
		apiErrors.WriteError(w, waitlistErr.Code, waitlistErr.Error(), nil)
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
	default:
		logrus.WithError(err).Error("Erro não mapeado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
	}
}
