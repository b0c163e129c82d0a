package reservation

import (
	"fmt"
	"strings"

	"fleetdesk/internal/pkg/errs"
)

var ErrNegativeAmount = errs.Mark(errs.New("amount cannot be negative"), errs.ErrValidation)

// Money is an amount in minor currency units.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewNonNegativeMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) String() string {
	sign, c := "", m.cents
	if c < 0 {
		sign, c = "-", -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

// Location is an optional pickup or return place.
type Location struct {
	value string
}

func NewLocation(value string) Location {
	return Location{value: strings.TrimSpace(value)}
}

func (l Location) String() string {
	return l.value
}

func (l Location) IsEmpty() bool {
	return l.value == ""
}

// Ptr returns nil for an empty location, for nullable columns and JSON.
func (l Location) Ptr() *string {
	if l.IsEmpty() {
		return nil
	}
	v := l.value
	return &v
}
