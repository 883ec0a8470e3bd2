package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Weekday represents a canonical weekday name (Monday..Sunday)
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// ErrInvalidWeekday возвращается при неизвестном имени дня недели
var ErrInvalidWeekday = errors.New("domain: invalid weekday name")

// canonicalOrder is the fixed Monday..Sunday ordering used everywhere,
// regardless of submission order.
var canonicalOrder = []Weekday{
	Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday,
}

// NormalizeWeekday parses a weekday name case-insensitively into its
// canonical form.
func NormalizeWeekday(name string) (Weekday, error) {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	for _, day := range canonicalOrder {
		if strings.ToLower(string(day)) == trimmed {
			return day, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidWeekday, name)
}

// NormalizeWeekdaySet normalizes a set of weekday names: duplicates are
// collapsed and the result follows the canonical Monday..Sunday order.
func NormalizeWeekdaySet(names []string) ([]Weekday, error) {
	seen := make(map[Weekday]bool, len(names))
	for _, name := range names {
		day, err := NormalizeWeekday(name)
		if err != nil {
			return nil, err
		}
		seen[day] = true
	}

	result := make([]Weekday, 0, len(seen))
	for _, day := range canonicalOrder {
		if seen[day] {
			result = append(result, day)
		}
	}
	return result, nil
}

// WeekdayOfDate returns the canonical weekday of a calendar date
func WeekdayOfDate(date time.Time) Weekday {
	switch date.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}
