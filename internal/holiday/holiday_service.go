package holiday

import (
	"context"
	"database/sql"
	"time"

	holidayerrors "leaveflow/internal/holiday/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=holiday_service.go -destination=mock/holiday_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]HolidayResponse, error)
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	GetInRange(ctx context.Context, start, end string) ([]HolidayResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("holiday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]HolidayResponse, error) {
	holidays, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all holidays failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(holidays), nil
}

func (s *service) Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error) {
	s.logger.Debug("create holiday requested",
		zap.String("name", req.Name),
		zap.String("date", req.Date),
	)

	date, err := parseDate(req.Date)
	if err != nil {
		s.logger.Warn("create holiday validation failed", zap.Error(err))
		return HolidayResponse{}, err
	}

	// Recurring unless the caller explicitly says otherwise
	recurring := true
	if req.IsRecurring != nil {
		recurring = *req.IsRecurring
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create holiday begin tx failed", zap.Error(err))
		return HolidayResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	h := &Holiday{
		Name:        req.Name,
		HolidayDate: date,
		IsRecurring: recurring,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := qtx.Create(ctx, h); err != nil {
		s.logger.Error("create holiday persist failed", zap.Error(err))
		return HolidayResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create holiday commit failed", zap.Error(err))
		return HolidayResponse{}, err
	}
	s.logger.Info("create holiday success",
		zap.Int64("holiday_id", h.ID),
		zap.String("name", h.Name),
	)

	return mapToResponse(*h), nil
}

func (s *service) GetInRange(ctx context.Context, start, end string) ([]HolidayResponse, error) {
	startDate, err := parseDate(start)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(end)
	if err != nil {
		return nil, err
	}
	if startDate.After(endDate) {
		return nil, holidayerrors.ErrInvalidDateRange
	}

	holidays, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get holidays in range failed", zap.Error(err))
		return nil, err
	}

	// Store iteration order is preserved, no re-sort
	matched := make([]Holiday, 0, len(holidays))
	for _, h := range holidays {
		if h.InRange(startDate, endDate) {
			matched = append(matched, h)
		}
	}

	return mapToListResponse(matched), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	rows, err := qtx.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete holiday failed", zap.Int64("holiday_id", id), zap.Error(err))
		return err
	}
	if rows == 0 {
		return holidayerrors.ErrHolidayNotFound
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	s.logger.Info("delete holiday success", zap.Int64("holiday_id", id))
	return nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, holidayerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(h Holiday) HolidayResponse {
	resp := HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		Date:        h.HolidayDate.Format("2006-01-02"),
		IsRecurring: h.IsRecurring,
		Description: h.Description,
	}
	if !h.CreatedAt.IsZero() {
		resp.CreatedAt = h.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(holidays []Holiday) []HolidayResponse {
	resp := make([]HolidayResponse, len(holidays))
	for i, h := range holidays {
		resp[i] = mapToResponse(h)
	}
	return resp
}
