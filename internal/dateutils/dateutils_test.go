package dateutils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		expectedOk bool
		expectedY  int
		expectedM  time.Month
		expectedD  int
	}{
		{"Brazilian slash format", "15/01/2023", true, 2023, time.January, 15},
		{"Brazilian dash format", "15-01-2023", true, 2023, time.January, 15},
		{"Two-digit year", "15/01/23", true, 2023, time.January, 15},
		{"ISO format", "2023-01-15", true, 2023, time.January, 15},
		{"ISO with time", "2023-01-15 10:30:45", true, 2023, time.January, 15},
		{"Ambiguous day-first", "06/10/2025", true, 2025, time.October, 6},
		{"Empty string", "", false, 0, 0, 0},
		{"Invalid format", "not a date", false, 0, 0, 0},
		{"Impossible date", "31/02/2023", false, 0, 0, 0},
		{"Bare number", "15", false, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, err := ParseDate(tc.raw)
			if tc.expectedOk {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedY, date.Year())
				assert.Equal(t, tc.expectedM, date.Month())
				assert.Equal(t, tc.expectedD, date.Day())
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParseDate_DayMonthImpliesCurrentYear(t *testing.T) {
	date, err := ParseDate("06/10")
	assert.NoError(t, err)
	assert.Equal(t, time.Now().Year(), date.Year())
	assert.Equal(t, time.October, date.Month())
	assert.Equal(t, 6, date.Day())
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2023-01-15", NormalizeDate("15/01/2023"))
	assert.Equal(t, "2023-01-15", NormalizeDate("2023-01-15"))
	assert.Equal(t, fmt.Sprintf("%d-10-06", time.Now().Year()), NormalizeDate("06/10"))
	assert.Equal(t, "", NormalizeDate("garbage"))
	assert.Equal(t, "", NormalizeDate(""))
}
