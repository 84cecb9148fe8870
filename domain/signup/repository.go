package signup

import (
	"context"
	"errors"

	"github.com/splita/splita-api/internal/models"
	apperrors "github.com/splita/splita-api/pkg/errors"
	"gorm.io/gorm"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=signup

const defaultListLimit = 100

type SignupRepository interface {
	// UpsertWaitlist inserts entry or, when a row with the same email exists,
	// updates its mutable fields in place. The bool reports an update.
	UpsertWaitlist(ctx context.Context, entry *models.WaitlistSubmission) (*models.WaitlistSubmission, bool, error)
	// UpsertVendor is the vendor-table counterpart of UpsertWaitlist.
	UpsertVendor(ctx context.Context, entry *models.VendorSubmission) (*models.VendorSubmission, bool, error)
	// ListWaitlist returns entries ordered by creation time, newest first.
	ListWaitlist(ctx context.Context, limit, offset int) ([]*models.WaitlistSubmission, error)
	// ListVendors returns entries ordered by creation time, newest first.
	ListVendors(ctx context.Context, limit, offset int) ([]*models.VendorSubmission, error)
	CountWaitlist(ctx context.Context) (int64, error)
	CountVendors(ctx context.Context) (int64, error)
	// CountDistinctDomains counts unique email domains across waitlist
	// entries. Used as the "cities" display metric.
	CountDistinctDomains(ctx context.Context) (int64, error)
	// ClearAll irreversibly deletes every submission from both tables.
	ClearAll(ctx context.Context) error
}

type signupRepository struct {
	db *gorm.DB
}

func NewSignupRepository(db *gorm.DB) SignupRepository {
	return &signupRepository{db: db}
}

func (sr *signupRepository) UpsertWaitlist(ctx context.Context, entry *models.WaitlistSubmission) (*models.WaitlistSubmission, bool, error) {
	var existing models.WaitlistSubmission

	err := sr.db.WithContext(ctx).Where("email = ?", entry.Email).First(&existing).Error
	switch {
	case err == nil:
		updates := map[string]interface{}{
			"user_type":    entry.UserType,
			"vibe":         entry.Vibe,
			"submitted_at": entry.SubmittedAt,
		}
		if err := sr.db.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
			return nil, false, apperrors.NewDatabaseError("unable to update waitlist entry", err)
		}
		return &existing, true, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := sr.db.WithContext(ctx).Create(entry).Error; err != nil {
			return nil, false, apperrors.NewDatabaseError("unable to create waitlist entry", err)
		}
		return entry, false, nil

	default:
		return nil, false, apperrors.NewDatabaseError("failed to look up waitlist entry", err)
	}
}

func (sr *signupRepository) UpsertVendor(ctx context.Context, entry *models.VendorSubmission) (*models.VendorSubmission, bool, error) {
	var existing models.VendorSubmission

	err := sr.db.WithContext(ctx).Where("email = ?", entry.Email).First(&existing).Error
	switch {
	case err == nil:
		updates := map[string]interface{}{
			"submitted_at": entry.SubmittedAt,
		}
		if err := sr.db.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
			return nil, false, apperrors.NewDatabaseError("unable to update vendor entry", err)
		}
		return &existing, true, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := sr.db.WithContext(ctx).Create(entry).Error; err != nil {
			return nil, false, apperrors.NewDatabaseError("unable to create vendor entry", err)
		}
		return entry, false, nil

	default:
		return nil, false, apperrors.NewDatabaseError("failed to look up vendor entry", err)
	}
}

func (sr *signupRepository) ListWaitlist(ctx context.Context, limit, offset int) ([]*models.WaitlistSubmission, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	entries := make([]*models.WaitlistSubmission, 0)
	err := sr.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError("unable to fetch waitlist entries", err)
	}

	return entries, nil
}

func (sr *signupRepository) ListVendors(ctx context.Context, limit, offset int) ([]*models.VendorSubmission, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	entries := make([]*models.VendorSubmission, 0)
	err := sr.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError("unable to fetch vendor entries", err)
	}

	return entries, nil
}

func (sr *signupRepository) CountWaitlist(ctx context.Context) (int64, error) {
	var count int64
	if err := sr.db.WithContext(ctx).Model(&models.WaitlistSubmission{}).Count(&count).Error; err != nil {
		return 0, apperrors.NewDatabaseError("unable to count waitlist entries", err)
	}
	return count, nil
}

func (sr *signupRepository) CountVendors(ctx context.Context) (int64, error) {
	var count int64
	if err := sr.db.WithContext(ctx).Model(&models.VendorSubmission{}).Count(&count).Error; err != nil {
		return 0, apperrors.NewDatabaseError("unable to count vendor entries", err)
	}
	return count, nil
}

func (sr *signupRepository) CountDistinctDomains(ctx context.Context) (int64, error) {
	var count int64
	err := sr.db.WithContext(ctx).
		Raw("SELECT COUNT(DISTINCT SUBSTR(email, INSTR(email, '@') + 1)) FROM waitlist_submissions WHERE deleted_at IS NULL").
		Scan(&count).Error
	if err != nil {
		return 0, apperrors.NewDatabaseError("unable to count email domains", err)
	}
	return count, nil
}

func (sr *signupRepository) ClearAll(ctx context.Context) error {
	tables := []interface{}{&models.WaitlistSubmission{}, &models.VendorSubmission{}}

	return sr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range tables {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(table).Error; err != nil {
				return apperrors.NewDatabaseError("unable to clear submissions", err)
			}
		}
		return nil
	})
}
