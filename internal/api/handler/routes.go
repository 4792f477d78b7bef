package handler

import (
	"net/http"

	"github.com/vfg2006/profit-calculator-api/internal/api/handler/router"
	"github.com/vfg2006/profit-calculator-api/internal/usecases/authenticating"
	"github.com/vfg2006/profit-calculator-api/internal/usecases/calculating"
	"github.com/vfg2006/profit-calculator-api/internal/usecases/waitlisting"
	"github.com/vfg2006/profit-calculator-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Calculator(service calculating.Calculator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/calculator",
			Method:  http.MethodPost,
			Handler: Calculate(service),
		},
		{
			Path:    "/v1/calculator",
			Method:  http.MethodGet,
			Handler: CalculateFromQuery(service),
		},
		{
			Path:    "/v1/calculator/scenarios",
			Method:  http.MethodPost,
			Handler: Scenarios(service),
		},
		{
			Path:    "/v1/calculator/bundles",
			Method:  http.MethodPost,
			Handler: Bundles(service),
		},
		{
			Path:    "/v1/calculator/fee-plans",
			Method:  http.MethodGet,
			Handler: FeePlans(service),
		},
	}
}

func Waitlist(service waitlisting.Waitlister) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/waitlist",
			Method:  http.MethodPost,
			Handler: JoinWaitlist(service),
		},
		{
			Path:        "/v1/waitlist",
			Method:      http.MethodGet,
			Handler:     ListWaitlist(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/admin/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
