package stats

import (
	"time"

	"github.com/splita/splita-api/config/router"
	"github.com/splita/splita-api/internal/log"
	"github.com/splita/splita-api/pkg/ratelimit"
)

func NewStatsController(logger *log.Logger, service StatsService) *router.RESTController {
	return router.NewRESTController(
		"StatsController",
		"/api/stats",
		func(rs *router.RouterService, c *router.RESTController) {
			limiter := ratelimit.NewRateLimiter(&ratelimit.RateLimitConfig{
				Requests: 60,
				Window:   time.Minute,
			})

			rs.AddGetHandler(c, limiter, "", getStatsHandler(service))
		},
	)
}

func getStatsHandler(service StatsService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		stats := service.GetStats(ctx.Request.Context())
		return router.OKResult(stats, "Stats retrieved")
	}
}
