package calendar

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=calendar_repo.go -destination=mock/calendar_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *CalendarEvent) error
	FindRelevantEvents(ctx context.Context, userID int64) ([]CalendarEvent, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, e *CalendarEvent) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// FindRelevantEvents returns events visible to the user: everything of type
// HOLIDAY plus anything owned or created by the user.
func (r *repository) FindRelevantEvents(ctx context.Context, userID int64) ([]CalendarEvent, error) {
	var events []CalendarEvent
	err := r.db.WithContext(ctx).
		Where("event_type = ? OR user_id = ? OR created_by = ?", EventTypeHoliday, userID, userID).
		Order("start_time ASC").
		Find(&events).Error
	return events, err
}

func (r *repository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&CalendarEvent{}, "event_id = ?", id)
	return res.RowsAffected, res.Error
}
