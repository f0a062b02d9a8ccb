package handler

import (
	"net/http"

	"github.com/vfg2006/dashboard-demo-api/internal/api/handler/router"
	"github.com/vfg2006/dashboard-demo-api/internal/usecases/authenticating"
	"github.com/vfg2006/dashboard-demo-api/internal/usecases/charting"
	"github.com/vfg2006/dashboard-demo-api/internal/usecases/session"
	"github.com/vfg2006/dashboard-demo-api/internal/usecases/widgets"
	"github.com/vfg2006/dashboard-demo-api/pkg/middleware"
)

func Healthcheck(sessions SessionCounter) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(sessions),
		},
	}
}

func Sessions(sessions session.SessionManager, auth authenticating.Authenticator, widgetService widgets.WidgetService) []router.Route {
	requireSession := []func(http.Handler) http.Handler{middleware.RequireSession(sessions)}

	return []router.Route{
		{
			Path:    "/v1/sessions",
			Method:  http.MethodPost,
			Handler: StartSession(sessions, auth),
		},
		{
			Path:        "/v1/sessions/current",
			Method:      http.MethodDelete,
			Handler:     EndSession(sessions),
			Middlewares: requireSession,
		},
		{
			Path:        "/v1/sessions/current/interactions",
			Method:      http.MethodGet,
			Handler:     ListInteractions(widgetService),
			Middlewares: requireSession,
		},
	}
}

func Dataset(sessions session.SessionManager) []router.Route {
	requireSession := []func(http.Handler) http.Handler{middleware.RequireSession(sessions)}

	return []router.Route{
		{
			Path:        "/v1/dataset",
			Method:      http.MethodGet,
			Handler:     GetDataset(sessions),
			Middlewares: requireSession,
		},
		{
			Path:        "/v1/dataset/summary",
			Method:      http.MethodGet,
			Handler:     GetSummary(sessions),
			Middlewares: requireSession,
		},
	}
}

func Charts(sessions session.SessionManager, charter charting.Charter) []router.Route {
	requireSession := []func(http.Handler) http.Handler{middleware.RequireSession(sessions)}

	return []router.Route{
		{
			Path:        "/v1/charts/:kind",
			Method:      http.MethodGet,
			Handler:     GetChart(sessions, charter),
			Middlewares: requireSession,
		},
		{
			Path:        "/v1/charts/:kind/image",
			Method:      http.MethodGet,
			Handler:     GetChartImage(sessions, charter),
			Middlewares: requireSession,
		},
	}
}

func Widgets(sessions session.SessionManager, service widgets.WidgetService) []router.Route {
	requireSession := []func(http.Handler) http.Handler{middleware.RequireSession(sessions)}

	return []router.Route{
		{
			Path:        "/v1/widgets/button",
			Method:      http.MethodPost,
			Handler:     ClickButton(service),
			Middlewares: requireSession,
		},
		{
			Path:        "/v1/widgets/greeting",
			Method:      http.MethodPost,
			Handler:     Greet(service),
			Middlewares: requireSession,
		},
		{
			Path:        "/v1/widgets/square",
			Method:      http.MethodPost,
			Handler:     Square(service),
			Middlewares: requireSession,
		},
		{
			Path:        "/v1/widgets/checkbox",
			Method:      http.MethodPost,
			Handler:     ToggleInfo(service),
			Middlewares: requireSession,
		},
		{
			Path:        "/v1/widgets/color/options",
			Method:      http.MethodGet,
			Handler:     ColorOptions(service),
			Middlewares: requireSession,
		},
		{
			Path:        "/v1/widgets/color",
			Method:      http.MethodPost,
			Handler:     ChooseColor(service),
			Middlewares: requireSession,
		},
	}
}

func Admin(auth authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/admin/login",
			Method:  http.MethodPost,
			Handler: AdminLogin(auth),
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
