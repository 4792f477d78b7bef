package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-calculator-api/internal/domain"
	"github.com/vfg2006/profit-calculator-api/internal/usecases/waitlisting"
	"github.com/vfg2006/profit-calculator-api/pkg/apiErrors"
	"github.com/vfg2006/profit-calculator-api/pkg/utils"
)

// JoinWaitlist inscreve um email na lista de espera. Reenvios do mesmo email
// respondem 200 com already_joined=true.
func JoinWaitlist(service waitlisting.Waitlister) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.WaitlistRequest
		if err := decodeBody(w, r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		resp, err := service.Join(&req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		status := http.StatusCreated
		if resp.AlreadyJoined {
			status = http.StatusOK
		}

		writeJSON(w, status, resp)
	})
}

// ListWaitlist lista as inscrições para o operador (limit, offset, since=YYYY-MM-DD)
func ListWaitlist(service waitlisting.Waitlister) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		limit := utils.ParseIntOrDefault(query.Get("limit"), 0)
		offset := utils.ParseIntOrDefault(query.Get("offset"), 0)

		since, err := utils.ParseDate(query.Get("since"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use YYYY-MM-DD", nil)
			return
		}

		page, err := service.List(limit, offset, since)
		if err != nil {
			logrus.WithError(err).Error("waitlist: erro ao listar")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, page)
	})
}
