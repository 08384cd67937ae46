package apperror

import "fmt"

type AppError struct {
	Code       string // Kode error (mis. INVALID_INPUT)
	Message    string // Pesan untuk pengguna, bahasa Indonesia
	HTTPStatus int    // Status HTTP yang dikembalikan handler
	Err        error  // Error asal yang dibungkus (opsional)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap mendukung errors.Is/As terhadap error asal
func (e *AppError) Unwrap() error {
	return e.Err
}

// New membuat AppError tanpa membungkus error lain
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        nil,
	}
}

// Wrap membungkus error asal dengan kode dan pesan pengguna
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}
