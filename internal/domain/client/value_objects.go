package client

import (
	"regexp"
	"strings"

	"fleetdesk/internal/pkg/errs"
)

var (
	ErrInvalidEmail    = errs.Mark(errs.New("invalid email format"), errs.ErrValidation)
	ErrInvalidFullName = errs.Mark(errs.New("full name is required"), errs.ErrValidation)
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: strings.ToLower(s)}, nil
}

func (e Email) Value() string {
	return e.value
}
