package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-calculator-api/pkg/apiErrors"
)

// Pinger é satisfeito pela conexão com o banco
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthcheckResponse struct {
	Status   string    `json:"status"`
	Time     time.Time `json:"time"`
	Database string    `json:"database,omitempty"`
}

// HealthcheckHandler responde à liveness. Com db, o banco precisa responder ao ping.
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := HealthcheckResponse{Status: "ok", Time: time.Now()}

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				logrus.WithError(err).Warn("error responding to healthcheck")
				apiErrors.WriteError(w, apiErrors.ErrUnavailable, "Banco de dados indisponível", nil)
				return
			}
			resp.Database = "ok"
		}

		writeJSON(w, http.StatusOK, resp)
	})
}
