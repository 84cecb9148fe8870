package domain

import (
	"github.com/splita/splita-api/config"
	"github.com/splita/splita-api/domain/admin"
	"github.com/splita/splita-api/domain/monitoring"
	"github.com/splita/splita-api/domain/notify"
	"github.com/splita/splita-api/domain/signup"
	"github.com/splita/splita-api/domain/stats"
)

func SetupCoreDomain(appConfig *config.ApplicationConfig) {
	repository := signup.NewSignupRepository(appConfig.DB)

	signupService := signup.NewSignupService(appConfig.Logger, repository, signup.ServiceOptions{
		Audience:           appConfig.Audience,
		Dispatcher:         appConfig.Dispatcher,
		Queue:              appConfig.Queue,
		WaitlistAudienceID: appConfig.Providers.WaitlistAudienceID,
		VendorAudienceID:   appConfig.Providers.VendorAudienceID,
	})

	statsService := stats.NewStatsService(appConfig.Logger, repository, stats.ServiceOptions{
		Audience:           appConfig.Audience,
		WaitlistAudienceID: appConfig.Providers.WaitlistAudienceID,
		VendorAudienceID:   appConfig.Providers.VendorAudienceID,
	})

	appConfig.RouterService.MountController(monitoring.NewMonitoringController(appConfig.DB, appConfig.Logger, appConfig.Cache, appConfig.Providers))
	appConfig.RouterService.MountController(signup.NewSignupController(appConfig.Logger, signupService))
	appConfig.RouterService.MountController(stats.NewStatsController(appConfig.Logger, statsService))
	appConfig.RouterService.MountController(notify.NewNotifyController(appConfig.Logger, appConfig.Dispatcher))
	appConfig.RouterService.MountController(admin.NewAdminController(appConfig.Logger))
}
