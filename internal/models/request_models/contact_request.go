package request_models

// CreateContactRequest carries the caller-suppliable fields only; id,
// created_at and the workflow status are server-owned.
type CreateContactRequest struct {
	Name    string  `json:"name" binding:"required,max=200"`
	Email   string  `json:"email" binding:"required,email"`
	Subject *string `json:"subject" binding:"omitempty,max=200"`
	Message string  `json:"message" binding:"required"`
}

type UpdateContactStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new read replied"`
}
