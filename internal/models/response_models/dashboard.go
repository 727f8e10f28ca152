package response_models

// DashboardReport is the aggregate behind /dashboard/:section. Only the
// sections relevant to the requested view are populated.
type DashboardReport struct {
	Section  string            `json:"section"`
	Overview *OverviewSection  `json:"overview,omitempty"`
	Goals    *GoalsSection     `json:"goals,omitempty"`
	Rewards  *RewardsSection   `json:"rewards,omitempty"`
	Games    *GamesSection     `json:"games,omitempty"`
	Billing  *BillingSection   `json:"billing,omitempty"`
}

type OverviewSection struct {
	GoalsTotal     int64 `json:"goals_total"`
	GoalsCompleted int64 `json:"goals_completed"`
	TotalPoints    int64 `json:"total_points"`
	Level          int   `json:"level"`
	GamesPlayed    int64 `json:"games_played"`
}

type GoalsSection struct {
	Total      int64            `json:"total"`
	Completed  int64            `json:"completed"`
	ByCategory map[string]int64 `json:"by_category"`
}

type RewardsSection struct {
	TotalPoints   int64    `json:"total_points"`
	Level         int      `json:"level"`
	Achievements  []string `json:"achievements"`
	LastMilestone *string  `json:"last_milestone,omitempty"`
	NextLevelAt   int64    `json:"next_level_at"`
}

type GamesSection struct {
	Played       int64            `json:"played"`
	BestScores   map[string]int64 `json:"best_scores"`
	TotalSeconds int64            `json:"total_seconds"`
	PointsEarned int64            `json:"points_earned"`
}

type BillingSection struct {
	Plan             string `json:"plan"`
	Status           string `json:"status"`
	CurrentPeriodEnd *int64 `json:"current_period_end,omitempty"`
	PaymentsCount    int64  `json:"payments_count"`
	TotalPaidMinor   int64  `json:"total_paid"`
}
