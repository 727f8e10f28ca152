package repositories

import (
	"context"

	"gorm.io/gorm"

	"lifesync/internal/models/db_models"
)

// DashboardRepository runs the aggregate queries behind the dashboard views.
type DashboardRepository interface {
	GoalCounts(ctx context.Context, userID string) (total int64, completed int64, err error)
	GoalCountsByCategory(ctx context.Context, userID string) (map[string]int64, error)
	GameStats(ctx context.Context, userID string) (*GameStats, error)
	BestScores(ctx context.Context, userID string) (map[string]int64, error)
	PaymentTotals(ctx context.Context, userID string) (count int64, paidMinor int64, err error)
}

type GameStats struct {
	Played       int64
	TotalSeconds int64
	PointsEarned int64
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (d *dashboardRepository) GoalCounts(ctx context.Context, userID string) (int64, int64, error) {
	var total, completed int64
	err := d.db.WithContext(ctx).
		Model(&db_models.Goal{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return 0, 0, err
	}
	err = d.db.WithContext(ctx).
		Model(&db_models.Goal{}).
		Where("user_id = ? AND completed = TRUE", userID).
		Count(&completed).Error
	if err != nil {
		return 0, 0, err
	}
	return total, completed, nil
}

func (d *dashboardRepository) GoalCountsByCategory(ctx context.Context, userID string) (map[string]int64, error) {
	type row struct {
		Category string
		Count    int64
	}
	var rows []row
	err := d.db.WithContext(ctx).
		Model(&db_models.Goal{}).
		Select("category, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Category] = r.Count
	}
	return out, nil
}

func (d *dashboardRepository) GameStats(ctx context.Context, userID string) (*GameStats, error) {
	var stats GameStats
	err := d.db.WithContext(ctx).
		Model(&db_models.Minigame{}).
		Select("COUNT(*) AS played, COALESCE(SUM(time_spent),0) AS total_seconds, COALESCE(SUM(points_earned),0) AS points_earned").
		Where("user_id = ?", userID).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (d *dashboardRepository) BestScores(ctx context.Context, userID string) (map[string]int64, error) {
	type row struct {
		GameType string
		Best     int64
	}
	var rows []row
	err := d.db.WithContext(ctx).
		Model(&db_models.Minigame{}).
		Select("game_type, MAX(score) AS best").
		Where("user_id = ?", userID).
		Group("game_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.GameType] = r.Best
	}
	return out, nil
}

func (d *dashboardRepository) PaymentTotals(ctx context.Context, userID string) (int64, int64, error) {
	var count int64
	err := d.db.WithContext(ctx).
		Model(&db_models.Payment{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, 0, err
	}

	var paid struct{ Total int64 }
	err = d.db.WithContext(ctx).
		Model(&db_models.Payment{}).
		Select("COALESCE(SUM(amount_minor),0) AS total").
		Where("user_id = ? AND status = ?", userID, db_models.PaymentStatusSucceeded).
		Scan(&paid).Error
	if err != nil {
		return 0, 0, err
	}
	return count, paid.Total, nil
}
