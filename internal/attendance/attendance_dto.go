package attendance

import "io"

type CheckInRequest struct {
	Note *string `form:"note"`
}

type CheckOutRequest struct {
	// Catatan aktivitas wajib diisi sebelum foto
	Note string `form:"note" binding:"required"`

	// Untuk checkout hari sebelumnya yang belum selesai:
	// tanggal absensi (YYYY-MM-DD) dan jam checkout manual (HH:MM)
	Date       *string `form:"date"`
	ManualTime *string `form:"manual_time"`
}

type ListFilterRequest struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// Photo membawa berkas kamera dari handler ke service
type Photo struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	EmployeeName   string  `json:"employee_name,omitempty"`
	AttendanceDate string  `json:"attendance_date"`
	ClockIn        string  `json:"clock_in"`
	ClockInPhoto   string  `json:"clock_in_photo"`
	ClockOut       *string `json:"clock_out,omitempty"`
	ClockOutPhoto  *string `json:"clock_out_photo,omitempty"`
	Note           *string `json:"note,omitempty"`
	ActivityNote   *string `json:"activity_note,omitempty"`
	Status         string  `json:"status"`
	WorkDuration   string  `json:"work_duration,omitempty"`
}

// DayStateResponse adalah state harian eksplisit, bukan tebak-tebakan
// dari kolom nullable di sisi client.
type DayStateResponse struct {
	State      string              `json:"state"`
	Today      *AttendanceResponse `json:"today,omitempty"`
	Incomplete *AttendanceResponse `json:"incomplete,omitempty"`
}
