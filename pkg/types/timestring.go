package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// Layout формат времени HH:MM (24 часа)
const Layout = "15:04"

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")
)

// TimeString время в формате "HH:MM" (24 часа), секунды отбрасываются.
// Используется для хранения времени суток без привязки к дате и таймзоне.
type TimeString string

// NewTimeString создает TimeString из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(Layout))
}

// NewTimeStringFromString парсит строку "HH:MM" или "HH:MM:SS" в TimeString.
// Секунды отбрасываются до сравнения (поведение легаси-системы).
func NewTimeStringFromString(s string) (TimeString, error) {
	normalized, err := normalize(s)
	if err != nil {
		return "", err
	}
	return TimeString(normalized), nil
}

// normalize приводит строку времени к каноничному виду "HH:MM"
func normalize(s string) (string, error) {
	if len(s) >= 8 {
		if _, err := time.Parse("15:04:05", s[:8]); err == nil {
			return s[:5], nil
		}
	}
	if len(s) >= 5 {
		if _, err := time.Parse(Layout, s[:5]); err == nil {
			return s[:5], nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение соответствует формату "HH:MM"
func (t TimeString) Validate() error {
	if _, err := time.Parse(Layout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, t)
	}
	return nil
}

// Minutes возвращает количество минут от полуночи.
// Для некорректного значения возвращает ошибку.
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(Layout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, t)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return compare(t, other) < 0
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return compare(t, other) > 0
}

// Equal возвращает true, если времена совпадают с точностью до минуты
func (t TimeString) Equal(other TimeString) bool {
	return compare(t, other) == 0
}

// compare сравнивает два валидных TimeString лексикографически.
// Формат фиксированной ширины "HH:MM" делает это корректным.
func compare(a, b TimeString) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// AddMinutes возвращает новый TimeString со сдвигом на minutes минут вперед
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(Layout, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, t)
	}
	return TimeString(parsed.Add(time.Duration(minutes) * time.Minute).Format(Layout)), nil
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД.
// Postgres TIME может приходить строкой "HH:MM:SS" - секунды отбрасываем.
func (t *TimeString) Scan(src interface{}) error {
	if src == nil {
		*t = ""
		return nil
	}

	switch v := src.(type) {
	case string:
		normalized, err := normalize(v)
		if err != nil {
			return err
		}
		*t = TimeString(normalized)
		return nil
	case []byte:
		normalized, err := normalize(string(v))
		if err != nil {
			return err
		}
		*t = TimeString(normalized)
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
}
