package submission

import (
	"errors"
	"strings"

	submissionerrors "sistem-pengajuan/internal/submission/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapCreateError menerjemahkan tabrakan nomor pengajuan menjadi pesan
// ramah, bukan error database mentah.
func mapCreateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_submission_number" {
			return submissionerrors.ErrDuplicateNumber
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_submission_number") {
		return submissionerrors.ErrDuplicateNumber
	}

	return err
}
