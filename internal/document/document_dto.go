package document

// All fields are optional; blanks render as N/A in the document.
type GenerateLeavePdfRequest struct {
	EmployeeName string `json:"employee_name"`
	LeaveType    string `json:"leave_type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	TotalDays    string `json:"total_days"`
	Reason       string `json:"reason"`
}
