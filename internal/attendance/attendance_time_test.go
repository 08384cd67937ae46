package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOf(t *testing.T) {
	// 2026-01-06 23:30 UTC = 2026-01-07 06:30 WIB
	utc := time.Date(2026, 1, 6, 23, 30, 0, 0, time.UTC)
	got := DateOf(utc)

	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.January, got.Month())
	assert.Equal(t, 7, got.Day())
	assert.Equal(t, 0, got.Hour())
}

func TestStatusForCheckIn(t *testing.T) {
	tests := []struct {
		name string
		day  time.Time
		want string
	}{
		{
			name: "selasa dihitung hadir",
			day:  time.Date(2026, 1, 6, 9, 0, 0, 0, ZoneWIB),
			want: StatusPresent,
		},
		{
			name: "rabu dihitung lembur",
			day:  time.Date(2026, 1, 7, 9, 0, 0, 0, ZoneWIB),
			want: StatusOvertime,
		},
		{
			name: "rabu menurut WIB meski masih selasa UTC",
			day:  time.Date(2026, 1, 6, 20, 0, 0, 0, time.UTC),
			want: StatusOvertime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusForCheckIn(tt.day))
		})
	}
}

func TestFormatWorkDuration(t *testing.T) {
	clockIn := time.Date(2026, 1, 6, 9, 0, 0, 0, ZoneWIB)

	tests := []struct {
		name     string
		clockOut time.Time
		want     string
	}{
		{"delapan setengah jam", clockIn.Add(8*time.Hour + 30*time.Minute), "8j 30m"},
		{"kurang dari satu jam", clockIn.Add(45 * time.Minute), "0j 45m"},
		{"tepat satu hari", clockIn.Add(24 * time.Hour), "24j 0m"},
		{"checkout sebelum checkin dijepit nol", clockIn.Add(-time.Hour), "0j 0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatWorkDuration(clockIn, tt.clockOut))
		})
	}
}

func TestResolveManualCheckout(t *testing.T) {
	date := time.Date(2026, 1, 6, 0, 0, 0, 0, ZoneWIB)

	t.Run("jam setelah check-in di hari yang sama", func(t *testing.T) {
		clockIn := time.Date(2026, 1, 6, 9, 0, 0, 0, ZoneWIB)
		got, err := ResolveManualCheckout(date, clockIn, "17:30")

		assert.NoError(t, err)
		assert.Equal(t, 6, got.Day())
		assert.Equal(t, 17, got.Hour())
		assert.Equal(t, 30, got.Minute())
	})

	t.Run("shift melewati tengah malam maju satu hari", func(t *testing.T) {
		clockIn := time.Date(2026, 1, 6, 22, 0, 0, 0, ZoneWIB)
		got, err := ResolveManualCheckout(date, clockIn, "06:00")

		assert.NoError(t, err)
		assert.Equal(t, 7, got.Day())
		assert.Equal(t, 6, got.Hour())
		assert.True(t, got.After(clockIn))
	})

	t.Run("jam sama persis dengan check-in dianggap lewat tengah malam", func(t *testing.T) {
		clockIn := time.Date(2026, 1, 6, 8, 0, 0, 0, ZoneWIB)
		got, err := ResolveManualCheckout(date, clockIn, "08:00")

		assert.NoError(t, err)
		assert.Equal(t, 7, got.Day())
	})

	t.Run("format jam salah ditolak", func(t *testing.T) {
		clockIn := time.Date(2026, 1, 6, 9, 0, 0, 0, ZoneWIB)
		_, err := ResolveManualCheckout(date, clockIn, "9 pagi")

		assert.ErrorIs(t, err, ErrInvalidManualTime)
	})

	t.Run("lebih dari dua hari setelah check-in ditolak", func(t *testing.T) {
		// Check-in tercatat jauh sebelum tanggal absensi yang diklaim
		clockIn := time.Date(2026, 1, 3, 9, 0, 0, 0, ZoneWIB)
		lateDate := time.Date(2026, 1, 6, 0, 0, 0, 0, ZoneWIB)
		_, err := ResolveManualCheckout(lateDate, clockIn, "17:00")

		assert.ErrorIs(t, err, ErrCheckoutTooLate)
	})
}
