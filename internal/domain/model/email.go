package model

import (
	"fmt"
	"regexp"
	"strings"

	"newsletter-service/internal/domain"
)

// Unicode-aware local@domain grammar. The local part accepts the usual atext
// specials plus dots; the domain must be dot-separated labels ending in a
// letter-only TLD of at least two characters.
var (
	emailLocalRegex  = regexp.MustCompile("^[\\p{L}\\p{N}.!#$%&'*+/=?^_`{|}~-]+$")
	emailDomainRegex = regexp.MustCompile(`^(?:[\p{L}\p{N}](?:[\p{L}\p{N}-]*[\p{L}\p{N}])?\.)+\p{L}{2,}$`)
)

// Email is a validated email address. Immutable once constructed.
type Email struct {
	value string
}

// ParseEmail validates raw as an email address.
func ParseEmail(raw string) (Email, error) {
	at := strings.LastIndex(raw, "@")
	if at <= 0 || at == len(raw)-1 {
		return Email{}, invalidEmail(raw)
	}
	local, host := raw[:at], raw[at+1:]
	if len(local) > 64 || len(host) > 255 {
		return Email{}, invalidEmail(raw)
	}
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") || strings.Contains(local, "..") {
		return Email{}, invalidEmail(raw)
	}
	if !emailLocalRegex.MatchString(local) || !emailDomainRegex.MatchString(host) {
		return Email{}, invalidEmail(raw)
	}
	return Email{value: raw}, nil
}

func invalidEmail(raw string) error {
	return domain.NewError(domain.KindValidation,
		fmt.Sprintf("%q is not a valid subscriber email", raw), domain.ErrInvalidArgument)
}

func (e Email) String() string { return e.value }

func (e Email) IsZero() bool { return e.value == "" }
