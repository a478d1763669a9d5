package calendar

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	calendarerrors "leaveflow/internal/calendar/errors"
	"leaveflow/internal/holiday"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// LocalDateTime wire format used by the calendar UI
const eventTimeLayout = "2006-01-02T15:04:05"

//go:generate mockgen -source=calendar_service.go -destination=mock/calendar_service_mock.go -package=mock
type Service interface {
	GetEventsForUser(ctx context.Context, userID int64) ([]EventResponse, error)
	CreateEvent(ctx context.Context, req CreateEventRequest) (EventResponse, error)
	DeleteEvent(ctx context.Context, id int64) error
}

type service struct {
	db       *sql.DB
	events   Repository
	holidays holiday.Repository
	sf       *singleflight.Group
	logger   *zap.Logger
}

func NewService(db *sql.DB, events Repository, holidays holiday.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("calendar.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("calendar.service")
	}
	return &service{
		db:       db,
		events:   events,
		holidays: holidays,
		sf:       &singleflight.Group{},
		logger:   l,
	}
}

// ExpandHolidays projects holidays into synthetic display events. Recurring
// holidays yield one instance per year in the 3-year window around
// currentYear; non-recurring holidays yield a single instance on their
// stored date. Nothing returned here is ever persisted.
func ExpandHolidays(holidays []holiday.Holiday, currentYear int) []EventResponse {
	out := make([]EventResponse, 0, len(holidays)*3)
	for _, h := range holidays {
		if h.IsRecurring {
			for year := currentYear - 1; year <= currentYear+1; year++ {
				out = append(out, syntheticEvent(h, h.ProjectToYear(year), year))
			}
			continue
		}
		out = append(out, syntheticEvent(h, h.HolidayDate, h.HolidayDate.Year()))
	}
	return out
}

func syntheticEvent(h holiday.Holiday, day time.Time, year int) EventResponse {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, time.UTC)
	return EventResponse{
		ID:          syntheticEventID(h.ID, year),
		Title:       h.Name,
		Description: h.Description,
		StartTime:   start.Format(eventTimeLayout),
		EndTime:     end.Format(eventTimeLayout),
		EventType:   EventTypeHoliday,
		Color:       ColorHoliday,
		Synthetic:   true,
	}
}

func (s *service) GetEventsForUser(ctx context.Context, userID int64) ([]EventResponse, error) {
	// Concurrent identical reads collapse into one expansion
	key := fmt.Sprintf("events:%d", userID)
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		return s.loadEventsForUser(ctx, userID)
	})
	if err != nil {
		return nil, err
	}
	return v.([]EventResponse), nil
}

func (s *service) loadEventsForUser(ctx context.Context, userID int64) ([]EventResponse, error) {
	events, err := s.events.FindRelevantEvents(ctx, userID)
	if err != nil {
		s.logger.Error("find relevant events failed", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	holidays, err := s.holidays.FindAll(ctx)
	if err != nil {
		s.logger.Error("load holidays for calendar failed", zap.Error(err))
		return nil, err
	}

	out := make([]EventResponse, 0, len(events)+len(holidays)*3)
	for _, e := range events {
		out = append(out, mapToResponse(e))
	}
	out = append(out, ExpandHolidays(holidays, time.Now().Year())...)

	return out, nil
}

func (s *service) CreateEvent(ctx context.Context, req CreateEventRequest) (EventResponse, error) {
	s.logger.Debug("create event requested",
		zap.String("title", req.Title),
		zap.String("event_type", req.EventType),
	)

	startTime, err := parseEventTime(req.StartTime)
	if err != nil {
		return EventResponse{}, err
	}
	endTime, err := parseEventTime(req.EndTime)
	if err != nil {
		return EventResponse{}, err
	}
	if startTime.After(endTime) {
		return EventResponse{}, calendarerrors.ErrInvalidTimeRange
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create event begin tx failed", zap.Error(err))
		return EventResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.events.WithTx(tx)

	e := &CalendarEvent{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   startTime,
		EndTime:     endTime,
		EventType:   req.EventType,
		UserID:      req.UserID,
		CreatedBy:   req.CreatedBy,
		Color:       colorForType(req.EventType),
		CreatedAt:   time.Now().UTC(),
	}

	if err := qtx.Create(ctx, e); err != nil {
		s.logger.Error("create event persist failed", zap.Error(err))
		return EventResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create event commit failed", zap.Error(err))
		return EventResponse{}, err
	}
	s.logger.Info("create event success",
		zap.Int64("event_id", e.ID),
		zap.String("event_type", e.EventType),
	)

	return mapToResponse(*e), nil
}

func (s *service) DeleteEvent(ctx context.Context, id int64) error {
	// Synthetic entries have no rows to delete; callers get a semantic
	// error, not a silent no-op
	if id >= SyntheticIDOffset {
		return calendarerrors.ErrSyntheticEventImmutable
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.events.WithTx(tx)
	rows, err := qtx.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete event failed", zap.Int64("event_id", id), zap.Error(err))
		return err
	}
	if rows == 0 {
		return calendarerrors.ErrEventNotFound
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	s.logger.Info("delete event success", zap.Int64("event_id", id))
	return nil
}

func colorForType(eventType string) string {
	switch eventType {
	case EventTypePersonal:
		return ColorPersonal
	case EventTypeDeadline:
		return ColorDeadline
	default:
		return ColorHoliday
	}
}

func parseEventTime(v string) (time.Time, error) {
	t, err := time.Parse(eventTimeLayout, v)
	if err != nil {
		return time.Time{}, calendarerrors.ErrInvalidTimeFormat
	}
	return t, nil
}

func mapToResponse(e CalendarEvent) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		StartTime:   e.StartTime.Format(eventTimeLayout),
		EndTime:     e.EndTime.Format(eventTimeLayout),
		EventType:   e.EventType,
		UserID:      e.UserID,
		CreatedBy:   e.CreatedBy,
		Color:       e.Color,
	}
}
