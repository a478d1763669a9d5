package holiday

import (
	"time"
)

type Holiday struct {
	ID          int64     `gorm:"column:holiday_id;primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_holidays_name_date"`
	HolidayDate time.Time `gorm:"type:date;not null;uniqueIndex:uq_holidays_name_date"`
	IsRecurring bool      `gorm:"not null;default:true"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
}

func (Holiday) TableName() string {
	return "holidays"
}
