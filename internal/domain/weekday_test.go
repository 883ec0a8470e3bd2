package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWeekday(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Weekday
		wantErr bool
	}{
		{name: "canonical", input: "Monday", want: Monday},
		{name: "lowercase", input: "friday", want: Friday},
		{name: "uppercase", input: "SUNDAY", want: Sunday},
		{name: "mixed case", input: "wEdNeSdAy", want: Wednesday},
		{name: "surrounding whitespace", input: "  Tuesday ", want: Tuesday},
		{name: "abbreviation is rejected", input: "Mon", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "Funday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeWeekday(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidWeekday)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeWeekdaySet(t *testing.T) {
	t.Run("result follows canonical order regardless of input order", func(t *testing.T) {
		got, err := NormalizeWeekdaySet([]string{"friday", "Monday", "WEDNESDAY"})
		require.NoError(t, err)
		assert.Equal(t, []Weekday{Monday, Wednesday, Friday}, got)
	})

	t.Run("duplicates are collapsed", func(t *testing.T) {
		got, err := NormalizeWeekdaySet([]string{"Monday", "monday", " MONDAY "})
		require.NoError(t, err)
		assert.Equal(t, []Weekday{Monday}, got)
	})

	t.Run("single invalid name fails the whole set", func(t *testing.T) {
		_, err := NormalizeWeekdaySet([]string{"Monday", "Smonday"})
		assert.ErrorIs(t, err, ErrInvalidWeekday)
	})

	t.Run("empty input gives empty set", func(t *testing.T) {
		got, err := NormalizeWeekdaySet(nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestWeekdayOfDate(t *testing.T) {
	tests := []struct {
		date string
		want Weekday
	}{
		{date: "2025-10-13", want: Monday},
		{date: "2025-10-15", want: Wednesday},
		{date: "2025-10-18", want: Saturday},
		{date: "2025-10-19", want: Sunday},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			date, err := time.Parse(DateFormat, tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, WeekdayOfDate(date))
		})
	}
}
