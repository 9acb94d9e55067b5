package handler

import (
	"net/http"

	"github.com/vfg2006/marketing-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/marketing-analytics-api/internal/usecases/insighting"
	"github.com/vfg2006/marketing-analytics-api/internal/usecases/syncing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/api/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Webhook retorna a rota de ingestão chamada pelo n8n
func Webhook(service syncing.Syncer) []router.Route {
	return []router.Route{
		{
			Path:    "/api/webhook/meta-ads",
			Method:  http.MethodPost,
			Handler: MetaAdsWebhook(service),
		},
	}
}

func Insights(service insighting.AgentInsighter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/insights",
			Method:  http.MethodGet,
			Handler: ListInsights(service),
		},
		{
			Path:    "/api/insights/unread-count",
			Method:  http.MethodGet,
			Handler: GetUnreadInsightsCount(service),
		},
		{
			Path:    "/api/insights/:id/read",
			Method:  http.MethodPatch,
			Handler: MarkInsightRead(service),
		},
		{
			Path:    "/api/insights/:id/implement",
			Method:  http.MethodPatch,
			Handler: MarkInsightImplemented(service),
		},
	}
}

func CampaignInsights(service insighting.CampaignInsighter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/campaign-insights",
			Method:  http.MethodGet,
			Handler: ListCampaignInsights(service),
		},
		{
			Path:    "/api/campaign-insights",
			Method:  http.MethodPost,
			Handler: CreateCampaignInsight(service),
		},
		{
			Path:    "/api/campaign-insights/:id",
			Method:  http.MethodGet,
			Handler: GetCampaignInsight(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/api/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/api/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
