package calendar_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"leaveflow/internal/calendar"
	"leaveflow/internal/holiday"
	holidayMock "leaveflow/internal/holiday/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fakeEventRepository struct {
	withTxFn             func(tx *sql.Tx) calendar.Repository
	createFn             func(ctx context.Context, e *calendar.CalendarEvent) error
	findRelevantEventsFn func(ctx context.Context, userID int64) ([]calendar.CalendarEvent, error)
	deleteFn             func(ctx context.Context, id int64) (int64, error)
}

func (f *fakeEventRepository) WithTx(tx *sql.Tx) calendar.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeEventRepository) Create(ctx context.Context, e *calendar.CalendarEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, e)
	}
	return nil
}

func (f *fakeEventRepository) FindRelevantEvents(ctx context.Context, userID int64) ([]calendar.CalendarEvent, error) {
	if f.findRelevantEventsFn != nil {
		return f.findRelevantEventsFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeEventRepository) Delete(ctx context.Context, id int64) (int64, error) {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return 1, nil
}

type calendarServiceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	service  calendar.Service
	events   *fakeEventRepository
	holidays *holidayMock.MockRepository
}

func setupCalendarServiceTest(t *testing.T) *calendarServiceDeps {
	t.Helper()

	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	events := &fakeEventRepository{}
	holidays := holidayMock.NewMockRepository(ctrl)
	svc := calendar.NewService(db, events, holidays)

	return &calendarServiceDeps{
		db:       db,
		sqlMock:  sqlMock,
		service:  svc,
		events:   events,
		holidays: holidays,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestExpandHolidays_Recurring(t *testing.T) {
	holidays := []holiday.Holiday{
		{ID: 3, Name: "Founding Day", Description: "Office closed", HolidayDate: time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC), IsRecurring: true},
	}

	out := calendar.ExpandHolidays(holidays, 2025)

	assert.Len(t, out, 3)
	years := []string{"2024", "2025", "2026"}
	seen := map[int64]bool{}
	for i, e := range out {
		assert.Equal(t, years[i]+"-03-17T00:00:00", e.StartTime)
		assert.Equal(t, years[i]+"-03-17T23:59:59", e.EndTime)
		assert.Equal(t, calendar.EventTypeHoliday, e.EventType)
		assert.Equal(t, calendar.ColorHoliday, e.Color)
		assert.Equal(t, "Founding Day", e.Title)
		assert.True(t, e.Synthetic)
		// IDs are distinct from each other and from any real event
		assert.GreaterOrEqual(t, e.ID, calendar.SyntheticIDOffset)
		assert.False(t, seen[e.ID])
		seen[e.ID] = true
	}
}

func TestExpandHolidays_NonRecurring(t *testing.T) {
	holidays := []holiday.Holiday{
		{ID: 8, Name: "One-off closure", HolidayDate: time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC), IsRecurring: false},
	}

	out := calendar.ExpandHolidays(holidays, 2025)

	assert.Len(t, out, 1)
	assert.Equal(t, "2025-11-03T00:00:00", out[0].StartTime)
	assert.Equal(t, "2025-11-03T23:59:59", out[0].EndTime)
	assert.GreaterOrEqual(t, out[0].ID, calendar.SyntheticIDOffset)
}

func TestExpandHolidays_LeapDay(t *testing.T) {
	holidays := []holiday.Holiday{
		{ID: 4, Name: "Leap Day", HolidayDate: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), IsRecurring: true},
	}

	out := calendar.ExpandHolidays(holidays, 2025)

	assert.Len(t, out, 3)
	// 2024 is a leap year, 2025 and 2026 degrade to Feb 28
	assert.Equal(t, "2024-02-29T00:00:00", out[0].StartTime)
	assert.Equal(t, "2025-02-28T00:00:00", out[1].StartTime)
	assert.Equal(t, "2026-02-28T00:00:00", out[2].StartTime)
}

func TestExpandHolidays_DistinctIDsAcrossHolidays(t *testing.T) {
	holidays := []holiday.Holiday{
		{ID: 1, Name: "A", HolidayDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), IsRecurring: true},
		{ID: 2, Name: "B", HolidayDate: time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC), IsRecurring: true},
		{ID: 101, Name: "C", HolidayDate: time.Date(2020, 9, 2, 0, 0, 0, 0, time.UTC), IsRecurring: true},
	}

	out := calendar.ExpandHolidays(holidays, 2025)

	seen := map[int64]bool{}
	for _, e := range out {
		assert.False(t, seen[e.ID], "synthetic id %d collided", e.ID)
		seen[e.ID] = true
	}
	assert.Len(t, seen, 9)
}

func TestCalendarService_GetEventsForUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success merges events and holiday expansion", func(t *testing.T) {
		deps := setupCalendarServiceTest(t)
		defer deps.db.Close()

		userID := int64(42)
		deps.events.findRelevantEventsFn = func(ctx context.Context, uid int64) ([]calendar.CalendarEvent, error) {
			assert.Equal(t, userID, uid)
			return []calendar.CalendarEvent{
				{
					ID:        12,
					Title:     "Sprint review",
					StartTime: time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC),
					EndTime:   time.Date(2025, 8, 1, 11, 0, 0, 0, time.UTC),
					EventType: calendar.EventTypeDeadline,
					UserID:    &userID,
					Color:     calendar.ColorDeadline,
				},
			}, nil
		}
		deps.holidays.EXPECT().FindAll(gomock.Any()).Return([]holiday.Holiday{
			{ID: 1, Name: "New Year", HolidayDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), IsRecurring: true},
		}, nil)

		resp, err := deps.service.GetEventsForUser(ctx, userID)

		assert.NoError(t, err)
		assert.Len(t, resp, 4)
		assert.Equal(t, int64(12), resp[0].ID)
		assert.False(t, resp[0].Synthetic)
		for _, e := range resp[1:] {
			assert.True(t, e.Synthetic)
			assert.Equal(t, calendar.EventTypeHoliday, e.EventType)
		}
	})

	t.Run("negative holiday load error", func(t *testing.T) {
		deps := setupCalendarServiceTest(t)
		defer deps.db.Close()

		deps.holidays.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("db error"))

		resp, err := deps.service.GetEventsForUser(ctx, 1)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestCalendarService_CreateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("success assigns color by type", func(t *testing.T) {
		deps := setupCalendarServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		userID := int64(7)
		req := calendar.CreateEventRequest{
			Title:     "Dentist",
			StartTime: "2025-09-10T09:00:00",
			EndTime:   "2025-09-10T10:00:00",
			EventType: calendar.EventTypePersonal,
			UserID:    &userID,
		}

		deps.events.createFn = func(ctx context.Context, e *calendar.CalendarEvent) error {
			assert.Equal(t, calendar.ColorPersonal, e.Color)
			assert.Equal(t, calendar.EventTypePersonal, e.EventType)
			e.ID = 31
			return nil
		}

		resp, err := deps.service.CreateEvent(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, int64(31), resp.ID)
		assert.Equal(t, calendar.ColorPersonal, resp.Color)
		assert.False(t, resp.Synthetic)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative end before start", func(t *testing.T) {
		deps := setupCalendarServiceTest(t)
		defer deps.db.Close()

		req := calendar.CreateEventRequest{
			Title:     "Backwards",
			StartTime: "2025-09-10T10:00:00",
			EndTime:   "2025-09-10T09:00:00",
			EventType: calendar.EventTypeDeadline,
		}

		_, err := deps.service.CreateEvent(ctx, req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "start_time must be before or equal end_time")
	})

	t.Run("negative bad time format", func(t *testing.T) {
		deps := setupCalendarServiceTest(t)
		defer deps.db.Close()

		req := calendar.CreateEventRequest{
			Title:     "Broken",
			StartTime: "10:00 on Tuesday",
			EndTime:   "2025-09-10T11:00:00",
			EventType: calendar.EventTypeDeadline,
		}

		_, err := deps.service.CreateEvent(ctx, req)

		assert.Error(t, err)
	})
}

func TestCalendarService_DeleteEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupCalendarServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.events.deleteFn = func(ctx context.Context, id int64) (int64, error) {
			assert.Equal(t, int64(12), id)
			return 1, nil
		}

		err := deps.service.DeleteEvent(ctx, 12)

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative synthetic id is rejected", func(t *testing.T) {
		deps := setupCalendarServiceTest(t)
		defer deps.db.Close()

		err := deps.service.DeleteEvent(ctx, calendar.SyntheticIDOffset+12025)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "synthesized on read")
	})

	t.Run("negative absent id", func(t *testing.T) {
		deps := setupCalendarServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.events.deleteFn = func(ctx context.Context, id int64) (int64, error) {
			return 0, nil
		}

		err := deps.service.DeleteEvent(ctx, 999)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
