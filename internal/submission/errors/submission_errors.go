package errors

import (
	"net/http"

	"sistem-pengajuan/internal/shared/apperror"
)

var (
	ErrSubmissionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Pengajuan tidak ditemukan",
		http.StatusNotFound,
	)

	ErrSubmissionClosed = apperror.New(
		apperror.CodeClosed,
		"Pengajuan sedang ditutup oleh admin",
		http.StatusForbidden,
	)

	ErrInvalidSubmissionType = apperror.New(
		apperror.CodeInvalidInput,
		"Jenis pengajuan tidak dikenal",
		http.StatusBadRequest,
	)

	ErrItemNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Nama barang wajib diisi untuk pengajuan barang",
		http.StatusBadRequest,
	)

	ErrInvalidQuantity = apperror.New(
		apperror.CodeInvalidInput,
		"Jumlah barang harus lebih dari nol",
		http.StatusBadRequest,
	)

	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Nominal harus berupa angka tidak negatif",
		http.StatusBadRequest,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status keputusan harus APPROVED atau REJECTED",
		http.StatusBadRequest,
	)

	ErrDuplicateNumber = apperror.New(
		apperror.CodeConflict,
		"Nomor pengajuan sudah terpakai, silakan coba lagi",
		http.StatusConflict,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"User ID tidak valid",
		http.StatusBadRequest,
	)

	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"Actor ID tidak valid",
		http.StatusBadRequest,
	)

	ErrInvalidSubmissionID = apperror.New(
		apperror.CodeInvalidInput,
		"Submission ID tidak valid",
		http.StatusBadRequest,
	)

	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Format tanggal tidak valid (YYYY-MM-DD)",
		http.StatusBadRequest,
	)

	ErrProofRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Bukti transfer wajib dilampirkan",
		http.StatusBadRequest,
	)
)
