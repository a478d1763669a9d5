package approval

type ApproveRequest struct {
	Note string `json:"note"`
}

type RejectRequest struct {
	Note string `json:"note" binding:"required"`
}

type LeaveApprovalResponse struct {
	ID            int64   `json:"id"`
	EmployeeName  string  `json:"employee_name"`
	AvatarURL     string  `json:"avatar_url,omitempty"`
	LeaveTypeID   *int64  `json:"leave_type_id,omitempty"`
	LeaveTypeName string  `json:"leave_type_name,omitempty"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	TotalDays     float64 `json:"total_days"`
	Status        string  `json:"status"`
	RequestedDate string  `json:"requested_date"`
	ApprovalNote  *string `json:"approval_note,omitempty"`
	ApprovedDate  *string `json:"approved_date,omitempty"`
}
