package leave

import "io"

type CreateLeaveRequest struct {
	LeaveType string `form:"leave_type" binding:"required"`
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
	Reason    string `form:"reason" binding:"required"`
}

type DecideLeaveRequest struct {
	Status    string  `json:"status" binding:"required"`
	AdminNote *string `json:"admin_note"`
}

type ListFilterRequest struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Status    string `form:"status"`
}

// Evidence adalah lampiran bukti opsional dari form multipart.
type Evidence struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	LeaveType    string  `json:"leave_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	TotalDays    int     `json:"total_days"`
	Reason       string  `json:"reason"`
	EvidencePath *string `json:"evidence_path,omitempty"`
	Status       string  `json:"status"`
	AdminNote    *string `json:"admin_note,omitempty"`
	DecidedBy    *string `json:"decided_by,omitempty"`
	DecidedAt    *string `json:"decided_at,omitempty"`
	CreatedAt    string  `json:"created_at"`
}
