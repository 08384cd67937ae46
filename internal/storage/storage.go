package storage

import (
	"context"
	"io"
)

// Bucket names. Satu bucket per jenis berkas, mengikuti penamaan
// yang dipakai portal lama.
const (
	BucketFotoAbsensi        = "foto-absensi"
	BucketBuktiIzin          = "bukti-izin"
	BucketBuktiLaporan       = "bukti-laporan"
	BucketBuktiReimbursement = "bukti-reimbursement"
	BucketBuktiTransfer      = "bukti-transfer"
)

func ValidBucket(name string) bool {
	switch name {
	case BucketFotoAbsensi, BucketBuktiIzin, BucketBuktiLaporan,
		BucketBuktiReimbursement, BucketBuktiTransfer:
		return true
	default:
		return false
	}
}

//go:generate mockgen -source=storage.go -destination=mock/storage_mock.go -package=mock
type FileStorage interface {
	// Upload stores a file under bucket/path and returns the stored path
	Upload(ctx context.Context, bucket, path string, file io.Reader) (string, error)

	// Download retrieves a file
	Download(ctx context.Context, bucket, path string) (io.ReadCloser, error)

	// Delete removes a file
	Delete(ctx context.Context, bucket, path string) error

	// Exists checks if file exists
	Exists(ctx context.Context, bucket, path string) (bool, error)
}
