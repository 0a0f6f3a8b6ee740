package domain

import (
	"errors"
	"fmt"

	"github.com/m04kA/JBarber-BookingService/pkg/types"
)

var (
	// ErrEmptyCatalogue возвращается при попытке создать пустой каталог слотов
	ErrEmptyCatalogue = errors.New("domain: slot catalogue must not be empty")

	// ErrDuplicateSlot возвращается, когда каталог содержит повторяющиеся метки
	ErrDuplicateSlot = errors.New("domain: slot catalogue contains duplicate label")
)

// SlotCatalogue is the fixed, finite, ordered enumeration of bookable time
// labels for a day. The catalogue is supplied by configuration and is
// independent of any particular day's bookings.
type SlotCatalogue struct {
	labels []types.SlotLabel
	index  map[types.SlotLabel]struct{}
}

// NewSlotCatalogue создает каталог из сырых строк конфигурации с валидацией
func NewSlotCatalogue(raw []string) (*SlotCatalogue, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyCatalogue
	}

	labels := make([]types.SlotLabel, 0, len(raw))
	index := make(map[types.SlotLabel]struct{}, len(raw))

	for _, s := range raw {
		label, err := types.NewSlotLabelFromString(s)
		if err != nil {
			return nil, fmt.Errorf("domain: invalid slot label in catalogue: %w", err)
		}
		if _, ok := index[label]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSlot, label)
		}
		labels = append(labels, label)
		index[label] = struct{}{}
	}

	return &SlotCatalogue{labels: labels, index: index}, nil
}

// Contains reports whether the label is part of the catalogue.
func (c *SlotCatalogue) Contains(label types.SlotLabel) bool {
	_, ok := c.index[label]
	return ok
}

// Labels returns the catalogue labels in configured order.
// Возвращается копия: каталог неизменяем после создания.
func (c *SlotCatalogue) Labels() []types.SlotLabel {
	out := make([]types.SlotLabel, len(c.labels))
	copy(out, c.labels)
	return out
}

// Len returns the number of slots in the catalogue.
func (c *SlotCatalogue) Len() int {
	return len(c.labels)
}
