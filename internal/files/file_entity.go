package files

import (
	"time"

	"github.com/google/uuid"
)

// FileObject mencatat kepemilikan setiap berkas yang diunggah.
// Proxy endpoint memeriksa baris ini, bukan sekadar prefix path.
type FileObject struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Bucket      string    `gorm:"column:bucket;type:varchar(50);not null;uniqueIndex:uq_file_bucket_path"`
	Path        string    `gorm:"column:path;type:text;not null;uniqueIndex:uq_file_bucket_path"`
	OwnerID     uuid.UUID `gorm:"column:owner_id;type:uuid;not null;index"`
	ContentType string    `gorm:"column:content_type;type:varchar(100);not null"`
	SizeBytes   int64     `gorm:"column:size_bytes;not null"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (FileObject) TableName() string {
	return "file_objects"
}
