package calendar

import "time"

const (
	EventTypeHoliday  = "HOLIDAY"
	EventTypePersonal = "PERSONAL"
	EventTypeDeadline = "DEADLINE"
)

// Display colors are fixed per event type at creation/synthesis time.
const (
	ColorHoliday  = "#ef4444"
	ColorPersonal = "#3b82f6"
	ColorDeadline = "#f97316"
)

// Holiday-derived entries are synthesized on read and never persisted. Their
// IDs start at SyntheticIDOffset; persisted event IDs must stay below it.
// syntheticYearStride keeps the per-year instances of one holiday apart, so
// IDs are collision-free as long as years stay below the stride.
const (
	SyntheticIDOffset   int64 = 100000
	syntheticYearStride int64 = 10000
)

func syntheticEventID(holidayID int64, year int) int64 {
	return SyntheticIDOffset + holidayID*syntheticYearStride + int64(year)
}

type CalendarEvent struct {
	ID          int64  `gorm:"column:event_id;primaryKey;autoIncrement"`
	Title       string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text"`
	StartTime   time.Time
	EndTime     time.Time
	EventType   string `gorm:"type:varchar(20);not null"`
	UserID      *int64
	CreatedBy   *int64
	Color       string `gorm:"type:varchar(20)"`
	CreatedAt   time.Time
}

func (CalendarEvent) TableName() string {
	return "calendar_events"
}
