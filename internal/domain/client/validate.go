// internal/domain/client/validate.go
package client

import (
	"errors"
	"regexp"
	"strings"
)

// E.164-style international number: optional leading +, no leading zero,
// 2 to 15 digits total.
var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

var (
	ErrEmptyFirstName = errors.New("Имя не может быть пустым")
	ErrInvalidPhone   = errors.New("Неверный формат телефона")
)

// Validate enforces the constraints binding tags cannot express and
// normalizes the request in place: first_name is trimmed and must stay
// non-empty, phone is stripped down to digits (plus a leading +) and
// must match the international pattern.
func (r *CreateClientRequest) Validate() error {
	name := strings.TrimSpace(r.FirstName)
	if name == "" {
		return ErrEmptyFirstName
	}
	r.FirstName = name

	if r.Phone != "" {
		normalized := NormalizePhone(r.Phone)
		if !phonePattern.MatchString(normalized) {
			return ErrInvalidPhone
		}
		r.Phone = normalized
	}

	return nil
}

// NormalizePhone strips every character that is not a digit, keeping a
// leading + if present.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for i, c := range raw {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
			continue
		}
		if c == '+' && i == 0 {
			b.WriteRune(c)
		}
	}
	return b.String()
}
