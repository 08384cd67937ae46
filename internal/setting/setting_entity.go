package setting

import "time"

// Key yang dipakai saat ini hanya satu: gerbang pengajuan global.
const KeySubmissionOpen = "submission_open"

type Setting struct {
	Key       string    `gorm:"column:key;type:varchar(50);primaryKey"`
	Enabled   bool      `gorm:"column:enabled;not null;default:true"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}
