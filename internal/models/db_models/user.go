package db_models

type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `json:"-"`
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	AvatarURL    *string `json:"avatar_url,omitempty"`

	// Billing-provider customer reference, set on first checkout.
	StripeCustomerID *string `gorm:"index" json:"-"`

	Subscriptions []Subscription `json:"-"`
	Payments      []Payment      `json:"-"`
	Goals         []Goal         `json:"-"`
	Minigames     []Minigame     `json:"-"`
}
