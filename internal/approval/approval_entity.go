package approval

import "time"

// Employee and LeaveType live in the wider HRM schema; this service only
// reads the columns it joins for display.
type Employee struct {
	ID        int64  `gorm:"column:employee_id;primaryKey"`
	FirstName string `gorm:"column:first_name"`
	LastName  string `gorm:"column:last_name"`
	AvatarURL string `gorm:"column:avatar_url"`
}

func (Employee) TableName() string {
	return "employees"
}

type LeaveType struct {
	ID   int64  `gorm:"column:leave_type_id;primaryKey"`
	Name string `gorm:"column:name"`
}

func (LeaveType) TableName() string {
	return "leave_types"
}

type LeaveRequest struct {
	ID          int64  `gorm:"column:leave_request_id;primaryKey;autoIncrement"`
	ManagerID   int64  `gorm:"column:manager_id;not null;index:idx_leave_requests_manager_status"`
	EmployeeID  *int64 `gorm:"column:employee_id"`
	LeaveTypeID *int64 `gorm:"column:leave_type_id"`

	StartDate time.Time `gorm:"column:start_date;type:date;not null"`
	EndDate   time.Time `gorm:"column:end_date;type:date;not null"`
	TotalDays float64   `gorm:"column:total_days;not null;default:1"`

	Status        string     `gorm:"column:status;type:varchar(20);not null;default:'Pending';index:idx_leave_requests_manager_status"`
	RequestedDate time.Time  `gorm:"column:requested_date;not null"`
	ApprovalNote  *string    `gorm:"column:approval_note;type:text"`
	ApprovedDate  *time.Time `gorm:"column:approved_date"`

	Employee  *Employee  `gorm:"foreignKey:EmployeeID;references:ID"`
	LeaveType *LeaveType `gorm:"foreignKey:LeaveTypeID;references:ID"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}
