package admin

import (
	"time"

	"github.com/splita/splita-api/config/router"
	"github.com/splita/splita-api/internal/log"
	"github.com/splita/splita-api/pkg/ratelimit"
)

const dashboardURL = "https://resend.com/audiences"

// Submission data lives in the provider's audiences, so these endpoints are
// informational stubs that point operators at the provider dashboard instead
// of exposing subscriber data through this API.
type stubResponse struct {
	Message      string `json:"message"`
	DashboardURL string `json:"dashboardUrl"`
}

func NewAdminController(logger *log.Logger) *router.RESTController {
	return router.NewRESTController(
		"AdminController",
		"/api/admin",
		func(rs *router.RouterService, c *router.RESTController) {
			limiter := ratelimit.NewRateLimiter(&ratelimit.RateLimitConfig{
				Requests: 10,
				Window:   time.Minute,
			})

			rs.AddGetHandler(c, limiter, "waitlist", stubHandler("View waitlist subscribers in the Resend dashboard"))
			rs.AddGetHandler(c, limiter, "vendors", stubHandler("View vendor subscribers in the Resend dashboard"))
			rs.AddGetHandler(c, limiter, "export", stubHandler("Export subscribers from the Resend dashboard"))
		},
	)
}

func stubHandler(message string) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		return router.OKResult(stubResponse{
			Message:      message,
			DashboardURL: dashboardURL,
		}, "See the provider dashboard")
	}
}
