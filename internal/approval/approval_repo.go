package approval

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=approval_repo.go -destination=mock/approval_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	ListByManager(ctx context.Context, managerID int64, status string, leaveTypeID int64) ([]LeaveRequest, error)
	FindByID(ctx context.Context, id int64) (*LeaveRequest, error)
	Update(ctx context.Context, l *LeaveRequest) error
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

// ListByManager returns the manager's requests, newest first. An empty
// status means all statuses; leaveTypeID <= 0 means all leave types.
func (r *repository) ListByManager(ctx context.Context, managerID int64, status string, leaveTypeID int64) ([]LeaveRequest, error) {
	db := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("LeaveType").
		Where("manager_id = ?", managerID)

	if status != "" {
		db = db.Where("status = ?", status)
	}
	if leaveTypeID > 0 {
		db = db.Where("leave_type_id = ?", leaveTypeID)
	}

	var requests []LeaveRequest
	err := db.Order("requested_date DESC").Find(&requests).Error
	return requests, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("LeaveType").
		First(&l, "leave_request_id = ?", id).Error
	return &l, err
}

func (r *repository) Update(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Save(l).Error
}
