package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// DateFormat формат календарной даты (ISO, с ведущими нулями)
const DateFormat = "2006-01-02"

var (
	// ErrInvalidDateFormat возвращается при некорректном формате даты
	ErrInvalidDateFormat = errors.New("types: invalid date format, expected YYYY-MM-DD")
)

// DateString represents a calendar date as a zero-padded ISO string ("2025-10-15").
// The zero-padded format keeps lexicographic comparison equivalent to
// chronological comparison, which the aggregation layer relies on.
type DateString string

// NewDateString создает DateString из time.Time (локальный календарный день)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateFormat))
}

// NewDateStringFromString создает DateString из строки с валидацией
func NewDateStringFromString(s string) (DateString, error) {
	d := DateString(s)
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

// Validate проверяет, что строка является корректной ISO датой
func (d DateString) Validate() error {
	if _, err := time.Parse(DateFormat, string(d)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateFormat, string(d))
	}
	return nil
}

// IsZero returns true if the date is empty.
func (d DateString) IsZero() bool {
	return d == ""
}

// Before reports whether d is chronologically before other.
// Валидно только для zero-padded ISO дат (см. комментарий к типу).
func (d DateString) Before(other DateString) bool {
	return string(d) < string(other)
}

// Time converts the date to a time.Time at midnight UTC.
func (d DateString) Time() (time.Time, error) {
	return time.Parse(DateFormat, string(d))
}

// String returns the raw ISO representation.
func (d DateString) String() string {
	return string(d)
}

// Value implements driver.Valuer so the type maps onto a DATE column.
func (d DateString) Value() (driver.Value, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return string(d), nil
}

// Scan implements sql.Scanner. Поддерживает time.Time (DATE колонка),
// string и []byte представления.
func (d *DateString) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDateString(v)
		return nil
	case string:
		*d = DateString(v)
		return d.Validate()
	case []byte:
		*d = DateString(v)
		return d.Validate()
	default:
		return fmt.Errorf("types: cannot scan %T into DateString", src)
	}
}
