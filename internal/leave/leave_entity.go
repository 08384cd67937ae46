package leave

import (
	"time"

	"github.com/google/uuid"
)

type Leave struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:idx_leaves_user_dates"`

	LeaveType    string    `gorm:"column:leave_type;type:varchar(30);not null"`
	StartDate    time.Time `gorm:"column:start_date;type:date;not null;index:idx_leaves_user_dates"`
	EndDate      time.Time `gorm:"column:end_date;type:date;not null;index:idx_leaves_user_dates"`
	TotalDays    int       `gorm:"column:total_days;type:int;not null;default:1"`
	Reason       string    `gorm:"column:reason;type:text;not null"`
	EvidencePath *string   `gorm:"column:evidence_path;type:text"`

	Status    string     `gorm:"column:status;type:varchar(20);not null;default:'PENDING';index:idx_leaves_status"`
	AdminNote *string    `gorm:"column:admin_note;type:text"`
	DecidedBy *uuid.UUID `gorm:"column:decided_by;type:uuid"`
	DecidedAt *time.Time `gorm:"column:decided_at;type:timestamptz"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`

	Profile *ProfileRef `gorm:"foreignKey:UserID;references:UserID"`
}

func (Leave) TableName() string {
	return "leaves"
}

type ProfileRef struct {
	UserID   uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (ProfileRef) TableName() string {
	return "profiles"
}
