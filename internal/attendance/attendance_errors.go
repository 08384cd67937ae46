package attendance

import (
	"net/http"

	"sistem-pengajuan/internal/shared/apperror"
)

var (
	ErrAlreadyCheckedIn = apperror.New(
		apperror.CodeConflict,
		"Anda sudah melakukan check-in hari ini",
		http.StatusConflict,
	)

	ErrOnApprovedLeave = apperror.New(
		apperror.CodeInvalidState,
		"Anda memiliki izin/cuti yang disetujui untuk hari ini, check-in tidak diperlukan",
		http.StatusConflict,
	)

	ErrIncompletePreviousDay = apperror.New(
		apperror.CodeInvalidState,
		"Check-in hari sebelumnya belum ditutup, selesaikan check-out terlebih dahulu",
		http.StatusConflict,
	)

	ErrNoActiveCheckIn = apperror.New(
		apperror.CodeNotFound,
		"Tidak ditemukan check-in yang belum diselesaikan",
		http.StatusNotFound,
	)

	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Data absensi tidak ditemukan",
		http.StatusNotFound,
	)

	ErrAlreadyCheckedOut = apperror.New(
		apperror.CodeInvalidState,
		"Absensi ini sudah memiliki check-out",
		http.StatusConflict,
	)

	ErrInvalidManualTime = apperror.New(
		apperror.CodeInvalidInput,
		"Format jam checkout tidak valid (HH:MM)",
		http.StatusBadRequest,
	)

	ErrCheckoutTooLate = apperror.New(
		apperror.CodeInvalidInput,
		"Waktu checkout lebih dari dua hari setelah check-in",
		http.StatusBadRequest,
	)

	ErrManualTimeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Jam checkout manual wajib diisi untuk hari sebelumnya",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Format tanggal tidak valid (YYYY-MM-DD)",
		http.StatusBadRequest,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"User ID tidak valid",
		http.StatusBadRequest,
	)

	ErrPhotoRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Foto kamera wajib dilampirkan",
		http.StatusBadRequest,
	)
)
