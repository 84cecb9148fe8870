package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/splita/splita-api/domain/signup"
	"github.com/splita/splita-api/internal/audience"
	"github.com/splita/splita-api/internal/log"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newStatsForTest(t *testing.T, repo signup.SignupRepository, opts ServiceOptions) StatsService {
	t.Helper()
	return NewStatsService(log.NewLoggerWithJSONOutput(), repo, opts)
}

func TestGetStats_RemoteCountsTakePrecedence(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := signup.NewMockSignupRepository(ctrl)
	remote := audience.NewMockClient(ctrl)

	remote.EXPECT().CountContacts(gomock.Any(), "aud-wl").Return(150, nil)
	remote.EXPECT().CountContacts(gomock.Any(), "aud-vendor").Return(30, nil)
	// The local store must not be consulted when the remote succeeds.

	service := newStatsForTest(t, repo, ServiceOptions{
		Audience:           remote,
		WaitlistAudienceID: "aud-wl",
		VendorAudienceID:   "aud-vendor",
	})

	stats := service.GetStats(context.Background())

	assert.Equal(t, 150+30+200, stats.Signups)
	assert.Equal(t, 150+200, stats.Waitlist)
	assert.Equal(t, 1, stats.Cities)
}

func TestGetStats_RemoteFailureFallsBackToLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := signup.NewMockSignupRepository(ctrl)
	remote := audience.NewMockClient(ctrl)

	remote.EXPECT().CountContacts(gomock.Any(), "aud-wl").Return(0, errors.New("provider down"))
	repo.EXPECT().CountWaitlist(gomock.Any()).Return(int64(12), nil)
	repo.EXPECT().CountVendors(gomock.Any()).Return(int64(3), nil)
	repo.EXPECT().CountDistinctDomains(gomock.Any()).Return(int64(7), nil)

	service := newStatsForTest(t, repo, ServiceOptions{
		Audience:           remote,
		WaitlistAudienceID: "aud-wl",
		VendorAudienceID:   "aud-vendor",
	})

	stats := service.GetStats(context.Background())

	assert.Equal(t, 12+3+200, stats.Signups)
	assert.Equal(t, 12+200, stats.Waitlist)
	assert.Equal(t, 7, stats.Cities)
}

func TestGetStats_NoAudienceConfiguredUsesLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := signup.NewMockSignupRepository(ctrl)

	repo.EXPECT().CountWaitlist(gomock.Any()).Return(int64(1), nil)
	repo.EXPECT().CountVendors(gomock.Any()).Return(int64(0), nil)
	repo.EXPECT().CountDistinctDomains(gomock.Any()).Return(int64(1), nil)

	service := newStatsForTest(t, repo, ServiceOptions{})

	stats := service.GetStats(context.Background())

	assert.Equal(t, 201, stats.Signups)
	assert.Equal(t, 201, stats.Waitlist)
	assert.Equal(t, 1, stats.Cities)
}

func TestGetStats_EverythingDownServesConstants(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := signup.NewMockSignupRepository(ctrl)
	remote := audience.NewMockClient(ctrl)

	remote.EXPECT().CountContacts(gomock.Any(), "aud-wl").Return(0, errors.New("provider down"))
	repo.EXPECT().CountWaitlist(gomock.Any()).Return(int64(0), errors.New("db locked"))

	service := newStatsForTest(t, repo, ServiceOptions{
		Audience:           remote,
		WaitlistAudienceID: "aud-wl",
	})

	stats := service.GetStats(context.Background())

	assert.Equal(t, StatsResponse{Signups: 3424, Waitlist: 23, Cities: 1}, stats)
}

func TestGetStats_EmptyLocalStoreStillShowsAtLeastOneCity(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := signup.NewMockSignupRepository(ctrl)

	repo.EXPECT().CountWaitlist(gomock.Any()).Return(int64(0), nil)
	repo.EXPECT().CountVendors(gomock.Any()).Return(int64(0), nil)
	repo.EXPECT().CountDistinctDomains(gomock.Any()).Return(int64(0), nil)

	service := newStatsForTest(t, repo, ServiceOptions{})

	stats := service.GetStats(context.Background())

	assert.Equal(t, 1, stats.Cities)
}
