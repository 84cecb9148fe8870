package monitoring

import (
	"context"
	"time"

	"github.com/splita/splita-api/config/router"
	"github.com/splita/splita-api/internal/log"
	"github.com/splita/splita-api/pkg/ratelimit"
	"gorm.io/gorm"
)

type Cache interface {
	Ping(ctx context.Context) error
}

// ProviderStatus reports whether the outbound messaging credentials are
// present. Implemented by the provider configuration.
type ProviderStatus interface {
	EmailConfigured() bool
	SMSConfigured() bool
}

// HealthStatus reports component readiness. Provider entries describe
// configuration, not live connectivity: the remote APIs are not probed on
// every health check.
type HealthStatus struct {
	Database int `json:"database"` // 1 = reachable, 0 = unreachable
	Cache    int `json:"cache"`    // 1 = reachable, 0 = unreachable/not configured
	Email    int `json:"email"`    // 1 = provider credential configured
	SMS      int `json:"sms"`      // 1 = provider credential configured
	Uptime   int `json:"uptime"`   // seconds since process start
}

type MonitoringController struct {
	db        *gorm.DB
	logger    *log.Logger
	cache     Cache
	providers ProviderStatus
	startTime time.Time
}

func NewMonitoringController(db *gorm.DB, logger *log.Logger, cache Cache, providers ProviderStatus) *router.RESTController {
	ctrl := &MonitoringController{
		db:        db,
		logger:    logger,
		cache:     cache,
		providers: providers,
		startTime: time.Now(),
	}

	return router.NewRESTController(
		"MonitoringController",
		"/",
		func(routerService *router.RouterService, controller *router.RESTController) {
			limiter := ratelimit.NewRateLimiter(&ratelimit.RateLimitConfig{
				Requests: 10,
				Window:   time.Minute,
			})

			routerService.AddGetHandler(controller, limiter, "", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.root(c)
			})

			routerService.AddGetHandler(controller, limiter, "health", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.healthCheck(routerService, c)
			})
		},
	)
}

func (ctrl *MonitoringController) root(c *router.RequestContext) *router.ServiceResult {
	return router.OKResult("Splita API is running", "Service operational")
}

func (ctrl *MonitoringController) healthCheck(
	routerService *router.RouterService,
	c *router.RequestContext,
) *router.ServiceResult {
	logger := routerService.GetLogger(c)
	status := ctrl.performHealthChecks(c.Request.Context(), logger)

	return router.OKResult(status, "Health check completed")
}

func (ctrl *MonitoringController) performHealthChecks(ctx context.Context, logger *log.Logger) HealthStatus {
	status := HealthStatus{
		Uptime: int(time.Since(ctrl.startTime).Seconds()),
	}

	if ctrl.checkDatabase(ctx) {
		status.Database = 1
	} else {
		logger.Error("Database health check failed")
	}

	if ctrl.cache != nil && ctrl.cache.Ping(ctx) == nil {
		status.Cache = 1
	}

	if ctrl.providers != nil {
		if ctrl.providers.EmailConfigured() {
			status.Email = 1
		}
		if ctrl.providers.SMSConfigured() {
			status.SMS = 1
		}
	}

	return status
}

func (ctrl *MonitoringController) checkDatabase(ctx context.Context) bool {
	sqlDB, err := ctrl.db.DB()
	if err != nil {
		return false
	}
	return sqlDB.PingContext(ctx) == nil
}
