package notify

import (
	"time"

	"github.com/splita/splita-api/config/router"
	"github.com/splita/splita-api/internal/log"
	apperrors "github.com/splita/splita-api/pkg/errors"
	"github.com/splita/splita-api/pkg/ratelimit"
)

// NewNotifyController exposes the direct notification triggers. These send
// synchronously; the background queue is only used by the signup flow.
func NewNotifyController(logger *log.Logger, dispatcher Dispatcher) *router.RESTController {
	return router.NewRESTController(
		"NotifyController",
		"/api",
		func(rs *router.RouterService, c *router.RESTController) {
			limiter := ratelimit.NewRateLimiter(&ratelimit.RateLimitConfig{
				Requests: 10,
				Window:   time.Minute,
			})

			rs.AddPostHandler(c, limiter, "send-email", sendEmailHandler(dispatcher))
			rs.AddPostHandler(c, limiter, "send-sms", sendSMSHandler(dispatcher))
		},
	)
}

func sendEmailHandler(dispatcher Dispatcher) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req SendEmailRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		kind, ok := ParseKind(req.Type)
		if !ok || kind == KindLaunch {
			return router.BadRequestResult("Invalid email type", nil)
		}

		messageID, err := dispatcher.SendWelcome(ctx.Request.Context(), kind, req.To, TemplateContext{
			UserType: req.UserType,
			Vibe:     req.Vibe,
		})
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				"Failed to send email",
				nil,
			)
		}

		return router.OKResult(SendResponse{MessageID: messageID}, "Email sent successfully")
	}
}

func sendSMSHandler(dispatcher Dispatcher) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req SendSMSRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		kind, _ := ParseKind(req.Type)

		messageSID, err := dispatcher.SendSMS(ctx.Request.Context(), req.To, kind, TemplateContext{
			UserType: req.UserType,
			Name:     req.Name,
		})
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(SendResponse{MessageID: messageSID}, "SMS sent successfully")
	}
}
