package response_models

// PricingPlan is one tier of the public catalog.
type PricingPlan struct {
	Code       string   `json:"code"`
	Name       string   `json:"name"`
	PriceMinor int64    `json:"price"` // minor units per month
	Currency   string   `json:"currency"`
	Features   []string `json:"features"`
	Popular    bool     `json:"popular,omitempty"`
}

type CreateCheckoutResponse struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
	Plan        string `json:"plan"`
	AmountMinor int64  `json:"amount"`
	Currency    string `json:"currency"`
}

type PaymentResultResponse struct {
	Status      string `json:"status"`
	Plan        string `json:"plan,omitempty"`
	AmountMinor int64  `json:"amount,omitempty"`
	Currency    string `json:"currency,omitempty"`
}
