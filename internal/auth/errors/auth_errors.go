package errors

import (
	"net/http"

	"sistem-pengajuan/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Email atau password salah",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Token tidak valid",
		http.StatusUnauthorized,
	)

	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Sesi Anda telah berakhir, silakan login kembali",
		http.StatusUnauthorized,
	)

	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeUnauthorized,
		"Refresh token tidak valid",
		http.StatusUnauthorized,
	)

	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"Anda tidak memiliki akses ke resource ini",
		http.StatusForbidden,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"User ID tidak valid",
		http.StatusBadRequest,
	)

	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User tidak ditemukan",
		http.StatusNotFound,
	)

	ErrWrongOldPassword = apperror.New(
		apperror.CodeInvalidInput,
		"Password lama salah",
		http.StatusBadRequest,
	)

	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Gagal membuat token",
		http.StatusInternalServerError,
	)
)
