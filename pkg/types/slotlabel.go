package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidSlotLabel возвращается при некорректном формате метки слота
	ErrInvalidSlotLabel = errors.New("types: invalid slot label, expected \"hh:mm AM/PM\" or \"HH:MM\"")
)

// SlotLabel represents a bookable time slot as display text, exactly as it is
// shown to the client and stored: either 12-hour ("09:30 PM") or 24-hour
// ("21:30") depending on the configured catalogue. The label is never parsed
// for display purposes, only for ordering via Rank.
type SlotLabel string

// NewSlotLabelFromString создает SlotLabel из строки с валидацией
func NewSlotLabelFromString(s string) (SlotLabel, error) {
	l := SlotLabel(strings.TrimSpace(s))
	if err := l.Validate(); err != nil {
		return "", err
	}
	return l, nil
}

// Validate проверяет формат метки слота (12- или 24-часовой)
func (l SlotLabel) Validate() error {
	if _, err := l.parse(); err != nil {
		return err
	}
	return nil
}

// IsZero returns true if the label is empty.
func (l SlotLabel) IsZero() bool {
	return l == ""
}

// Rank converts the label into a comparable integer in 24-hour space,
// hours*100+minutes: "12:00 AM" -> 0, "12:30 PM" -> 1230, "11:30 PM" -> 2330.
// For 24-hour labels the conversion is an identity ("21:30" -> 2130).
// Used only as a sort key, never displayed.
func (l SlotLabel) Rank() int {
	r, err := l.parse()
	if err != nil {
		// Некорректные метки уходят в конец сортировки
		return 9999
	}
	return r
}

// IsBefore reports whether l sorts before other in chronological order.
func (l SlotLabel) IsBefore(other SlotLabel) bool {
	return l.Rank() < other.Rank()
}

// String returns the raw display representation.
func (l SlotLabel) String() string {
	return string(l)
}

// Value implements driver.Valuer (TEXT column).
func (l SlotLabel) Value() (driver.Value, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return string(l), nil
}

// Scan implements sql.Scanner.
func (l *SlotLabel) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*l = SlotLabel(v)
		return nil
	case []byte:
		*l = SlotLabel(v)
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into SlotLabel", src)
	}
}

// parse разбирает метку и возвращает ранг hours*100+minutes в 24-часовом пространстве
func (l SlotLabel) parse() (int, error) {
	s := strings.TrimSpace(string(l))
	if s == "" {
		return 0, ErrInvalidSlotLabel
	}

	// Отделяем суффикс AM/PM, если он есть
	meridiem := ""
	upper := strings.ToUpper(s)
	switch {
	case strings.HasSuffix(upper, " AM"):
		meridiem = "AM"
		s = strings.TrimSpace(s[:len(s)-3])
	case strings.HasSuffix(upper, " PM"):
		meridiem = "PM"
		s = strings.TrimSpace(s[:len(s)-3])
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSlotLabel, string(l))
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSlotLabel, string(l))
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSlotLabel, string(l))
	}
	if minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSlotLabel, string(l))
	}

	switch meridiem {
	case "AM":
		if hours < 1 || hours > 12 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidSlotLabel, string(l))
		}
		// 12 AM это полночь
		if hours == 12 {
			hours = 0
		}
	case "PM":
		if hours < 1 || hours > 12 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidSlotLabel, string(l))
		}
		// 12 PM остаётся 12, остальные сдвигаются на 12 часов
		if hours != 12 {
			hours += 12
		}
	default:
		// 24-часовой формат
		if hours < 0 || hours > 23 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidSlotLabel, string(l))
		}
	}

	return hours*100 + minutes, nil
}
