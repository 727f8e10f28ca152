package db_models

type ContactStatus string

const (
	ContactStatusNew     ContactStatus = "new"
	ContactStatusRead    ContactStatus = "read"
	ContactStatusReplied ContactStatus = "replied"
)

// Contact is a free-standing form submission; status is advanced by staff.
type Contact struct {
	BaseModel
	Name    string        `gorm:"not null" json:"name"`
	Email   string        `gorm:"not null" json:"email"`
	Subject *string       `json:"subject,omitempty"`
	Message string        `gorm:"type:text;not null" json:"message"`
	Status  ContactStatus `gorm:"index;default:'new'" json:"status"`
}
