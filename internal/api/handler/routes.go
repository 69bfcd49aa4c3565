package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/inpulse/inpulse-api/internal/api/handler/router"
	"github.com/inpulse/inpulse-api/internal/scheduler"
	"github.com/inpulse/inpulse-api/internal/usecases/authenticating"
	"github.com/inpulse/inpulse-api/internal/usecases/dashboarding"
	"github.com/inpulse/inpulse-api/internal/usecases/integrating"
	"github.com/inpulse/inpulse-api/internal/usecases/messaging"
	"github.com/inpulse/inpulse-api/internal/usecases/selling"
	"github.com/inpulse/inpulse-api/internal/usecases/tasking"
	"github.com/inpulse/inpulse-api/internal/usecases/teaming"
	"github.com/inpulse/inpulse-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/auth/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/api/auth/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/api/auth/logout",
			Method:  http.MethodPost,
			Handler: Logout(service),
		},
		{
			Path:    "/api/user/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
		{
			Path:    "/api/user/me",
			Method:  http.MethodPut,
			Handler: UpdateMe(service),
		},
		{
			Path:    "/api/user/password",
			Method:  http.MethodPut,
			Handler: ChangePassword(service),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/api/dashboard/stats",
			Method:  http.MethodGet,
			Handler: GetDashboardStats(service),
		},
		{
			Path:    "/api/dashboard/revenue-chart",
			Method:  http.MethodGet,
			Handler: GetRevenueChart(service),
		},
	}
}

func Tasks(service tasking.TaskManager) []router.Route {
	return []router.Route{
		{
			Path:    "/api/tasks",
			Method:  http.MethodGet,
			Handler: ListTasks(service),
		},
		{
			Path:    "/api/tasks",
			Method:  http.MethodPost,
			Handler: CreateTask(service),
		},
		{
			Path:    "/api/tasks/:id",
			Method:  http.MethodGet,
			Handler: GetTask(service),
		},
		{
			Path:    "/api/tasks/:id",
			Method:  http.MethodPut,
			Handler: UpdateTask(service),
		},
		{
			Path:    "/api/tasks/:id",
			Method:  http.MethodDelete,
			Handler: DeleteTask(service),
		},
		{
			Path:    "/api/notifications",
			Method:  http.MethodGet,
			Handler: ListNotifications(service),
		},
		{
			Path:    "/api/notifications/:id/read",
			Method:  http.MethodPut,
			Handler: MarkNotificationRead(service),
		},
	}
}

func Catalog(service selling.Catalog) []router.Route {
	return []router.Route{
		{
			Path:    "/api/sales",
			Method:  http.MethodGet,
			Handler: ListSales(service),
		},
		{
			Path:    "/api/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(service),
		},
		{
			Path:    "/api/products",
			Method:  http.MethodGet,
			Handler: ListProducts(service),
		},
	}
}

func Team(service teaming.TeamManager) []router.Route {
	return []router.Route{
		{
			Path:    "/api/team",
			Method:  http.MethodGet,
			Handler: ListTeamMembers(service),
		},
		{
			Path:        "/api/team/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteTeamMember(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOrAdmin()},
		},
	}
}

func Integrations(service integrating.IntegrationManager) []router.Route {
	return []router.Route{
		{
			Path:    "/api/integrations",
			Method:  http.MethodGet,
			Handler: ListIntegrations(service),
		},
		{
			Path:    "/api/integrations",
			Method:  http.MethodPost,
			Handler: ConnectIntegration(service),
		},
		{
			Path:    "/api/integrations/:id",
			Method:  http.MethodDelete,
			Handler: DisconnectIntegration(service),
		},
	}
}

func Messaging(service messaging.Messenger) []router.Route {
	return []router.Route{
		{
			Path:    "/api/conversations",
			Method:  http.MethodGet,
			Handler: ListConversations(service),
		},
		{
			Path:    "/api/conversations/:id",
			Method:  http.MethodGet,
			Handler: GetConversation(service),
		},
		{
			Path:    "/api/conversations/start",
			Method:  http.MethodPost,
			Handler: StartConversation(service),
		},
		{
			Path:    "/api/messages",
			Method:  http.MethodPost,
			Handler: SendMessage(service),
		},
	}
}

func CronJobs(syncer scheduler.CampaignSyncer, registry *scheduler.Registry) []router.Route {
	return []router.Route{
		{
			Path:    "/api/sync/facebook",
			Method:  http.MethodPost,
			Handler: SyncFacebook(syncer),
		},
		{
			Path:        "/api/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(registry),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOrAdmin()},
		},
		{
			Path:        "/api/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(registry),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOrAdmin()},
		},
	}
}
