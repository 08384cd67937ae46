package attendance

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapCreateError menerjemahkan pelanggaran unik (satu baris per user per
// tanggal) menjadi pesan ramah, bukan error database mentah.
func mapCreateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_attendance_user_date" {
			return ErrAlreadyCheckedIn
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_attendance_user_date") {
		return ErrAlreadyCheckedIn
	}

	return err
}
