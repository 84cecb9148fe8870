package notify

type SendEmailRequest struct {
	To       string `json:"to" binding:"required,email,max=255"`
	Type     string `json:"type" binding:"required,oneof=waitlist vendor"`
	UserType string `json:"userType" binding:"omitempty,max=64"`
	Vibe     string `json:"vibe" binding:"omitempty,max=64"`
}

type SendSMSRequest struct {
	To       string `json:"to" binding:"required,max=32"`
	Type     string `json:"type" binding:"required,oneof=waitlist vendor launch"`
	UserType string `json:"userType" binding:"omitempty,max=64"`
	Name     string `json:"name" binding:"omitempty,max=64"`
}

type SendResponse struct {
	MessageID string `json:"messageId"`
}
