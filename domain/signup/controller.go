package signup

import (
	"time"

	"github.com/splita/splita-api/config/router"
	"github.com/splita/splita-api/internal/log"
	apperrors "github.com/splita/splita-api/pkg/errors"
	"github.com/splita/splita-api/pkg/ratelimit"
)

// NewSignupController exposes the two public signup forms from the landing
// page. Both resubmit-friendly: posting an email twice refreshes the entry
// instead of failing.
func NewSignupController(logger *log.Logger, service SignupService) *router.RESTController {
	return router.NewRESTController(
		"SignupController",
		"/api",
		func(rs *router.RouterService, c *router.RESTController) {
			limiter := ratelimit.NewRateLimiter(&ratelimit.RateLimitConfig{
				Requests: 30,
				Window:   time.Minute,
			})

			rs.AddPostHandler(c, limiter, "waitlist", waitlistSignupHandler(service))
			rs.AddPostHandler(c, limiter, "vendor", vendorSignupHandler(service))
		},
	)
}

func waitlistSignupHandler(service SignupService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req WaitlistSignupRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		resp, err := service.SubmitWaitlist(ctx.Request.Context(), &req)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(resp, "Successfully joined the waitlist")
	}
}

func vendorSignupHandler(service SignupService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req VendorSignupRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		resp, err := service.SubmitVendor(ctx.Request.Context(), &req)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(resp, "Vendor registration received")
	}
}
