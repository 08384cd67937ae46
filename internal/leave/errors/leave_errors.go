package errors

import (
	"net/http"

	"sistem-pengajuan/internal/shared/apperror"
)

var (
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Pengajuan izin tidak ditemukan",
		http.StatusNotFound,
	)

	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"Jenis izin tidak dikenal",
		http.StatusBadRequest,
	)

	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Format tanggal tidak valid (YYYY-MM-DD)",
		http.StatusBadRequest,
	)

	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Tanggal mulai tidak boleh setelah tanggal selesai",
		http.StatusBadRequest,
	)

	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"Sudah ada pengajuan izin pada rentang tanggal tersebut",
		http.StatusConflict,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status keputusan harus APPROVED atau REJECTED",
		http.StatusBadRequest,
	)

	ErrAdminNoteRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Catatan admin wajib diisi saat menolak pengajuan",
		http.StatusBadRequest,
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

	ErrInvalidLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"Leave ID tidak valid",
		http.StatusBadRequest,
	)
)
