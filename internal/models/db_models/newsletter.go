package db_models

// Newsletter rows are never hard-deleted; unsubscribe flips the flag.
type Newsletter struct {
	BaseModel
	Email      string `gorm:"uniqueIndex;not null" json:"email"`
	Subscribed bool   `gorm:"default:true" json:"subscribed"`
}
