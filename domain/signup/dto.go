package signup

import (
	"github.com/splita/splita-api/internal/models"
)

// Field names mirror what the landing page sends.
type WaitlistSignupRequest struct {
	Email     string `json:"email" binding:"required,email,max=255"`
	UserType  string `json:"userType" binding:"required,max=64"`
	Vibe      string `json:"vibe" binding:"omitempty,max=64"`
	Timestamp string `json:"timestamp" binding:"omitempty,max=64"`
}

type VendorSignupRequest struct {
	Email     string `json:"email" binding:"required,email,max=255"`
	Timestamp string `json:"timestamp" binding:"omitempty,max=64"`
}

type SignupResponse struct {
	Success bool   `json:"success"`
	Email   string `json:"email"`
	Updated bool   `json:"updated"`
}

// ========================================
// Mappers
// ========================================

func ToWaitlistModel(req *WaitlistSignupRequest, normalizedEmail string) *models.WaitlistSubmission {
	if req == nil {
		return nil
	}
	return &models.WaitlistSubmission{
		Email:       normalizedEmail,
		UserType:    req.UserType,
		Vibe:        req.Vibe,
		SubmittedAt: req.Timestamp,
	}
}

func ToVendorModel(req *VendorSignupRequest, normalizedEmail string) *models.VendorSubmission {
	if req == nil {
		return nil
	}
	return &models.VendorSubmission{
		Email:       normalizedEmail,
		SubmittedAt: req.Timestamp,
	}
}
