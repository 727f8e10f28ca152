package request_models

// The subscribed flag is system-owned and not caller-suppliable.
type NewsletterRequest struct {
	Email string `json:"email" binding:"required,email"`
}
