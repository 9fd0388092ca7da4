package handler

import (
	"net/http"

	"github.com/vfg2006/ad-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/ad-dashboard-api/internal/usecases/dashboarding"
)

// maxPayloadBytes limita o corpo aceito em /v1/ads/standardize
const maxPayloadBytes = 10 << 20

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Ads(service dashboarding.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ads",
			Method:  http.MethodGet,
			Handler: ListAds(service),
		},
		{
			Path:    "/v1/ads/refresh",
			Method:  http.MethodPost,
			Handler: RefreshAds(service),
		},
		{
			Path:        "/v1/ads/standardize",
			Method:      http.MethodPost,
			Handler:     StandardizeAds(service),
			Middlewares: []func(http.Handler) http.Handler{limitBody(maxPayloadBytes)},
		},
		{
			Path:    "/v1/ads/status",
			Method:  http.MethodGet,
			Handler: GetAdsStatus(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

func Metrics(handler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: handler,
		},
	}
}

func limitBody(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
