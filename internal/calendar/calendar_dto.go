package calendar

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	EventType   string `json:"event_type" binding:"required,oneof=HOLIDAY PERSONAL DEADLINE"`
	UserID      *int64 `json:"user_id"`
	CreatedBy   *int64 `json:"created_by"`
}

type EventResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	EventType   string `json:"event_type"`
	UserID      *int64 `json:"user_id,omitempty"`
	CreatedBy   *int64 `json:"created_by,omitempty"`
	Color       string `json:"color"`
	Synthetic   bool   `json:"synthetic,omitempty"`
}
