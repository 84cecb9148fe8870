package signup

import (
	"context"
	"testing"
	"time"

	"github.com/splita/splita-api/domain/notify"
	"github.com/splita/splita-api/internal/audience"
	"github.com/splita/splita-api/internal/log"
	"github.com/splita/splita-api/internal/models"
	apperrors "github.com/splita/splita-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@test.com", NormalizeEmail("  A@Test.com  "))
	assert.Equal(t, "user@example.com", NormalizeEmail("USER@EXAMPLE.COM"))
}

func newServiceForTest(t *testing.T, repo SignupRepository, opts ServiceOptions) SignupService {
	t.Helper()
	return NewSignupService(log.NewLoggerWithJSONOutput(), repo, opts)
}

func TestSubmitWaitlist_NormalizesEmailBeforePersisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockSignupRepository(ctrl)

	repo.EXPECT().
		UpsertWaitlist(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.WaitlistSubmission) (*models.WaitlistSubmission, bool, error) {
			assert.Equal(t, "a@test.com", entry.Email)
			assert.Equal(t, "Student", entry.UserType)
			assert.NotEmpty(t, entry.SubmittedAt)
			return entry, false, nil
		})

	service := newServiceForTest(t, repo, ServiceOptions{})

	resp, err := service.SubmitWaitlist(context.Background(), &WaitlistSignupRequest{
		Email:    "  A@Test.com ",
		UserType: "Student",
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "a@test.com", resp.Email)
	assert.False(t, resp.Updated)
}

func TestSubmitWaitlist_ResubmissionReportsUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockSignupRepository(ctrl)

	entry := &models.WaitlistSubmission{Email: "a@test.com", UserType: "Vendor"}
	repo.EXPECT().UpsertWaitlist(gomock.Any(), gomock.Any()).Return(entry, true, nil)

	service := newServiceForTest(t, repo, ServiceOptions{})

	resp, err := service.SubmitWaitlist(context.Background(), &WaitlistSignupRequest{
		Email:    "a@test.com",
		UserType: "Vendor",
	})

	require.NoError(t, err)
	assert.True(t, resp.Updated)
}

func TestSubmitWaitlist_PersistenceFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockSignupRepository(ctrl)
	remote := audience.NewMockClient(ctrl)

	dbErr := apperrors.NewDatabaseError("unable to create waitlist entry", nil)
	repo.EXPECT().UpsertWaitlist(gomock.Any(), gomock.Any()).Return(nil, false, dbErr)

	// No audience call may happen when persistence fails.
	service := newServiceForTest(t, repo, ServiceOptions{
		Audience:           remote,
		WaitlistAudienceID: "aud-wl",
	})

	resp, err := service.SubmitWaitlist(context.Background(), &WaitlistSignupRequest{
		Email:    "a@test.com",
		UserType: "Student",
	})

	require.Error(t, err)
	assert.Nil(t, resp)
}

func TestSubmitWaitlist_SyncsContactWithUserTypeAsFirstName(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockSignupRepository(ctrl)
	remote := audience.NewMockClient(ctrl)

	entry := &models.WaitlistSubmission{Email: "a@test.com", UserType: "Student"}
	repo.EXPECT().UpsertWaitlist(gomock.Any(), gomock.Any()).Return(entry, false, nil)
	remote.EXPECT().
		CreateContact(gomock.Any(), "aud-wl", "a@test.com", audience.ContactOptions{FirstName: "Student"}).
		Return("contact-1", nil)

	service := newServiceForTest(t, repo, ServiceOptions{
		Audience:           remote,
		WaitlistAudienceID: "aud-wl",
	})

	resp, err := service.SubmitWaitlist(context.Background(), &WaitlistSignupRequest{
		Email:    "A@test.com",
		UserType: "Student",
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestSubmitWaitlist_AudienceFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockSignupRepository(ctrl)
	remote := audience.NewMockClient(ctrl)

	entry := &models.WaitlistSubmission{Email: "a@test.com", UserType: "Student"}
	repo.EXPECT().UpsertWaitlist(gomock.Any(), gomock.Any()).Return(entry, false, nil)
	remote.EXPECT().
		CreateContact(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", &audience.RestrictedKeyError{Message: "restricted_api_key"})

	service := newServiceForTest(t, repo, ServiceOptions{
		Audience:           remote,
		WaitlistAudienceID: "aud-wl",
	})

	resp, err := service.SubmitWaitlist(context.Background(), &WaitlistSignupRequest{
		Email:    "a@test.com",
		UserType: "Student",
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestSubmitWaitlist_QueuesWelcomeEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockSignupRepository(ctrl)
	dispatcher := notify.NewMockDispatcher(ctrl)

	entry := &models.WaitlistSubmission{Email: "a@test.com", UserType: "Student"}
	repo.EXPECT().UpsertWaitlist(gomock.Any(), gomock.Any()).Return(entry, false, nil)

	done := make(chan struct{})
	dispatcher.EXPECT().
		SendWelcome(gomock.Any(), notify.KindWaitlist, "a@test.com", notify.TemplateContext{
			UserType: "Student",
			Vibe:     "Dark mode",
		}).
		DoAndReturn(func(context.Context, notify.Kind, string, notify.TemplateContext) (string, error) {
			close(done)
			return "msg-1", nil
		})

	queue := notify.NewQueue(log.NewLoggerWithJSONOutput(), &notify.QueueConfig{Workers: 1, Depth: 4})

	service := newServiceForTest(t, repo, ServiceOptions{
		Dispatcher: dispatcher,
		Queue:      queue,
	})

	_, err := service.SubmitWaitlist(context.Background(), &WaitlistSignupRequest{
		Email:    "a@test.com",
		UserType: "Student",
		Vibe:     "Dark mode",
	})
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("welcome email was never dispatched")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, queue.Close(ctx))
}

func TestSubmitVendor_UpsertsAndSyncs(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockSignupRepository(ctrl)
	remote := audience.NewMockClient(ctrl)

	repo.EXPECT().
		UpsertVendor(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.VendorSubmission) (*models.VendorSubmission, bool, error) {
			assert.Equal(t, "shop@market.ng", entry.Email)
			return entry, true, nil
		})
	remote.EXPECT().
		CreateContact(gomock.Any(), "aud-vendor", "shop@market.ng", audience.ContactOptions{}).
		Return("contact-2", nil)

	service := newServiceForTest(t, repo, ServiceOptions{
		Audience:         remote,
		VendorAudienceID: "aud-vendor",
	})

	resp, err := service.SubmitVendor(context.Background(), &VendorSignupRequest{
		Email: "Shop@Market.NG",
	})

	require.NoError(t, err)
	assert.True(t, resp.Updated)
	assert.Equal(t, "shop@market.ng", resp.Email)
}

func TestSubmitWaitlist_NilRequestRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockSignupRepository(ctrl)

	service := newServiceForTest(t, repo, ServiceOptions{})

	_, err := service.SubmitWaitlist(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.HTTPStatusCode(err))
}
