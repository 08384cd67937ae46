package submission

import (
	"time"

	"github.com/google/uuid"
)

type Submission struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Number string    `gorm:"column:number;type:varchar(30);not null;uniqueIndex:uq_submission_number"`
	Type   string    `gorm:"column:type;type:varchar(20);not null;index:idx_submissions_type_status"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:idx_submissions_user"`

	ItemName    *string `gorm:"column:item_name;type:varchar(200)"`
	Category    string  `gorm:"column:category;type:varchar(100);not null"`
	Description string  `gorm:"column:description;type:text;not null"`

	RequestedQty    *int   `gorm:"column:requested_qty;type:int"`
	RequestedAmount *int64 `gorm:"column:requested_amount;type:bigint"`
	ApprovedQty     *int   `gorm:"column:approved_qty;type:int"`
	ApprovedAmount  *int64 `gorm:"column:approved_amount;type:bigint"`

	EvidencePath      *string `gorm:"column:evidence_path;type:text"`
	TransferProofPath *string `gorm:"column:transfer_proof_path;type:text"`

	Status    string     `gorm:"column:status;type:varchar(20);not null;default:'PENDING';index:idx_submissions_type_status"`
	AdminNote *string    `gorm:"column:admin_note;type:text"`
	DecidedBy *uuid.UUID `gorm:"column:decided_by;type:uuid"`
	DecidedAt *time.Time `gorm:"column:decided_at;type:timestamptz"`

	CreatedAt time.Time `gorm:"column:created_at;index:idx_submissions_created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`

	Profile *ProfileRef `gorm:"foreignKey:UserID;references:UserID"`
}

func (Submission) TableName() string {
	return "submissions"
}

type ProfileRef struct {
	UserID   uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (ProfileRef) TableName() string {
	return "profiles"
}
