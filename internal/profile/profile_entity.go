package profile

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	UserID           uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey"`
	FullName         string    `gorm:"column:full_name;type:varchar(255);not null"`
	Role             string    `gorm:"column:role;type:varchar(20);not null;default:employee"`
	Division         string    `gorm:"column:division;type:varchar(100)"`
	Position         string    `gorm:"column:position;type:varchar(100)"`
	EmploymentStatus string    `gorm:"column:employment_status;type:varchar(30)"`
	JoinDate         time.Time `gorm:"column:join_date;type:date"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
	User             *UserRef  `gorm:"foreignKey:UserID;references:ID"`
}

func (Profile) TableName() string {
	return "profiles"
}

type UserRef struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email string    `gorm:"column:email"`
}

func (UserRef) TableName() string {
	return "users"
}
