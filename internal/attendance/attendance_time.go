package attendance

import (
	"fmt"
	"time"
)

// ZoneWIB adalah zona waktu tetap portal (UTC+7). Tanggal absensi selalu
// dihitung di zona ini, bukan zona lokal server, agar tidak meleset di
// sekitar pergantian hari.
var ZoneWIB = time.FixedZone("WIB", 7*60*60)

// HolidayWeekday adalah hari libur kerja mingguan; check-in pada hari ini
// dihitung sebagai lembur.
const HolidayWeekday = time.Wednesday

const (
	StatusPresent  = "PRESENT"
	StatusOvertime = "OVERTIME"
	StatusLeave    = "LEAVE"
	StatusSick     = "SICK"
	StatusAbsent   = "ABSENT"
)

const (
	StateNotCheckedIn          = "NOT_CHECKED_IN"
	StateCheckedIn             = "CHECKED_IN"
	StateCheckedOut            = "CHECKED_OUT"
	StateIncompletePreviousDay = "INCOMPLETE_PREVIOUS_DAY"
)

// incompleteWindow membatasi pencarian baris check-in tanpa checkout.
const incompleteWindow = 48 * time.Hour

// maxCheckoutGap: checkout lebih dari dua hari setelah check-in ditolak.
const maxCheckoutGap = 48 * time.Hour

// DateOf memotong timestamp menjadi tanggal kalender WIB.
func DateOf(t time.Time) time.Time {
	t = t.In(ZoneWIB)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, ZoneWIB)
}

// StatusForCheckIn menentukan status kehadiran berdasarkan hari check-in.
func StatusForCheckIn(t time.Time) string {
	if t.In(ZoneWIB).Weekday() == HolidayWeekday {
		return StatusOvertime
	}
	return StatusPresent
}

// FormatWorkDuration memformat durasi kerja menjadi "<jam>j <menit>m",
// misal 8 jam 30 menit -> "8j 30m".
func FormatWorkDuration(clockIn, clockOut time.Time) string {
	d := clockOut.Sub(clockIn)
	if d < 0 {
		d = 0
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dj %dm", hours, minutes)
}

// ResolveManualCheckout menggabungkan tanggal absensi dengan jam checkout
// manual (HH:MM). Jika hasilnya jatuh di atau sebelum waktu check-in, shift
// dianggap melewati tengah malam dan tanggal checkout maju satu hari.
// Checkout lebih dari dua hari setelah check-in dianggap tidak valid.
func ResolveManualCheckout(attendanceDate, clockIn time.Time, manualTime string) (time.Time, error) {
	parsed, err := time.Parse("15:04", manualTime)
	if err != nil {
		return time.Time{}, ErrInvalidManualTime
	}

	date := attendanceDate.In(ZoneWIB)
	checkout := time.Date(
		date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0,
		ZoneWIB,
	)

	if !checkout.After(clockIn) {
		checkout = checkout.AddDate(0, 0, 1)
	}

	if checkout.Sub(clockIn) > maxCheckoutGap {
		return time.Time{}, ErrCheckoutTooLate
	}

	return checkout, nil
}
