package attendance

import (
	"time"

	"github.com/google/uuid"
)

type Attendance struct {
	ID             uuid.UUID   `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID         uuid.UUID   `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_attendance_user_date"`
	AttendanceDate time.Time   `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_user_date"`
	ClockIn        time.Time   `gorm:"column:clock_in;type:timestamptz;not null"`
	ClockInPhoto   string      `gorm:"column:clock_in_photo;type:text;not null"`
	ClockInNote    *string     `gorm:"column:clock_in_note;type:text"`
	ClockOut       *time.Time  `gorm:"column:clock_out;type:timestamptz"`
	ClockOutPhoto  *string     `gorm:"column:clock_out_photo;type:text"`
	ActivityNote   *string     `gorm:"column:activity_note;type:text"`
	Status         string      `gorm:"column:status;type:varchar(20);not null;default:PRESENT"`
	CreatedAt      time.Time   `gorm:"column:created_at"`
	UpdatedAt      time.Time   `gorm:"column:updated_at"`
	Profile        *ProfileRef `gorm:"foreignKey:UserID;references:UserID"`
}

func (Attendance) TableName() string {
	return "attendances"
}

type ProfileRef struct {
	UserID   uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (ProfileRef) TableName() string {
	return "profiles"
}
