package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/profit-calculator-api/internal/config"
	"github.com/vfg2006/profit-calculator-api/internal/domain"
	"github.com/vfg2006/profit-calculator-api/internal/usecases/authenticating"
	"github.com/vfg2006/profit-calculator-api/internal/usecases/calculating"
	waitlistmocks "github.com/vfg2006/profit-calculator-api/internal/usecases/waitlisting/mocks"
	"github.com/vfg2006/profit-calculator-api/pkg/log"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestHandler(t *testing.T) (http.Handler, *waitlistmocks.MockWaitlister, authenticating.Authenticator) {
	t.Helper()
	log.SetupTestLogger()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		Server: config.Server{Port: "0"},
		Auth: config.Auth{
			Secret:            "test-secret",
			AdminEmail:        "ops@shop.com",
			AdminPasswordHash: string(hash),
			TokenTTL:          time.Hour,
		},
		Cors: config.Cors{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	ctrl := gomock.NewController(t)
	waitlist := waitlistmocks.NewMockWaitlister(ctrl)
	auth := authenticating.NewService(cfg.Auth)

	h := NewHandler(cfg, Services{
		Calculator:    calculating.NewService(nil),
		Waitlist:      waitlist,
		Authenticator: auth,
	})

	return h, waitlist, auth
}

func TestHandler_PublicCalculator(t *testing.T) {
	h, _, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/calculator", strings.NewReader(`{"selling_price":50,"cogs":10}`))
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}

func TestHandler_AdminFlow(t *testing.T) {
	h, waitlist, auth := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/waitlist", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := auth.LoginAdmin("ops@shop.com", "secret")
	require.NoError(t, err)

	waitlist.EXPECT().List(0, 0, nil).Return(&domain.WaitlistPage{Limit: 50}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/waitlist", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/waitlist", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNew_RequiresServices(t *testing.T) {
	_, err := New(&config.Config{}, Services{})
	assert.Error(t, err)
}
