package errors

import (
	"net/http"

	"sistem-pengajuan/internal/shared/apperror"
)

var (
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"Profil karyawan tidak ditemukan",
		http.StatusNotFound,
	)

	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Email sudah terdaftar",
		http.StatusConflict,
	)

	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Role tidak dikenal",
		http.StatusBadRequest,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"User ID tidak valid",
		http.StatusBadRequest,
	)

	ErrInvalidJoinDate = apperror.New(
		apperror.CodeInvalidInput,
		"Format tanggal bergabung tidak valid (YYYY-MM-DD)",
		http.StatusBadRequest,
	)
)
