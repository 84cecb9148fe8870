package stats

import (
	"context"

	"github.com/splita/splita-api/domain/signup"
	"github.com/splita/splita-api/internal/audience"
	"github.com/splita/splita-api/internal/log"
)

// Display numbers for the landing page counter. They are decorative and
// never act as a source of truth: every failure path degrades to a
// plausible-looking value instead of an error.
type StatsResponse struct {
	Signups  int `json:"signups"`
	Waitlist int `json:"waitlist"`
	Cities   int `json:"cities"`
}

const (
	// displayOffset inflates public counts for marketing effect. A product
	// decision inherited from launch, kept deliberately.
	displayOffset = 200

	fallbackSignups  = 3424
	fallbackWaitlist = 23
	fallbackCities   = 1
)

type StatsService interface {
	// GetStats never fails. Remote audience counts win when configured,
	// local counts are the fallback, and hardcoded constants cover the
	// case where both are unreachable.
	GetStats(ctx context.Context) StatsResponse
}

type statsService struct {
	logger     *log.Logger
	repository signup.SignupRepository
	audience   audience.Client

	waitlistAudienceID string
	vendorAudienceID   string
}

type ServiceOptions struct {
	Audience           audience.Client
	WaitlistAudienceID string
	VendorAudienceID   string
}

func NewStatsService(logger *log.Logger, repository signup.SignupRepository, opts ServiceOptions) StatsService {
	return &statsService{
		logger:             logger,
		repository:         repository,
		audience:           opts.Audience,
		waitlistAudienceID: opts.WaitlistAudienceID,
		vendorAudienceID:   opts.VendorAudienceID,
	}
}

func (s *statsService) GetStats(ctx context.Context) StatsResponse {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if resp, ok := s.remoteStats(ctx, logger); ok {
		return resp
	}

	if resp, ok := s.localStats(ctx, logger); ok {
		return resp
	}

	logger.Error("All stat sources unavailable, serving fallback constants")
	return StatsResponse{
		Signups:  fallbackSignups,
		Waitlist: fallbackWaitlist,
		Cities:   fallbackCities,
	}
}

func (s *statsService) remoteStats(ctx context.Context, logger *log.Logger) (StatsResponse, bool) {
	if s.audience == nil || s.waitlistAudienceID == "" {
		return StatsResponse{}, false
	}

	waitlistCount, err := s.audience.CountContacts(ctx, s.waitlistAudienceID)
	if err != nil {
		logger.Warn("Remote waitlist count unavailable, trying local store", "error", err)
		return StatsResponse{}, false
	}

	vendorCount := 0
	if s.vendorAudienceID != "" {
		vendorCount, err = s.audience.CountContacts(ctx, s.vendorAudienceID)
		if err != nil {
			logger.Warn("Remote vendor count unavailable, trying local store", "error", err)
			return StatsResponse{}, false
		}
	}

	return StatsResponse{
		Signups:  waitlistCount + vendorCount + displayOffset,
		Waitlist: waitlistCount + displayOffset,
		Cities:   fallbackCities,
	}, true
}

func (s *statsService) localStats(ctx context.Context, logger *log.Logger) (StatsResponse, bool) {
	waitlistCount, err := s.repository.CountWaitlist(ctx)
	if err != nil {
		logger.Error("Local waitlist count failed", "error", err)
		return StatsResponse{}, false
	}

	vendorCount, err := s.repository.CountVendors(ctx)
	if err != nil {
		logger.Error("Local vendor count failed", "error", err)
		return StatsResponse{}, false
	}

	cities, err := s.repository.CountDistinctDomains(ctx)
	if err != nil {
		logger.Error("Local domain count failed", "error", err)
		return StatsResponse{}, false
	}
	if cities < 1 {
		cities = fallbackCities
	}

	return StatsResponse{
		Signups:  int(waitlistCount+vendorCount) + displayOffset,
		Waitlist: int(waitlistCount) + displayOffset,
		Cities:   int(cities),
	}, true
}
