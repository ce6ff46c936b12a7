package model

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"newsletter-service/internal/domain"
)

const maxNameGraphemes = 256

const forbiddenNameChars = `/()"<>\{}`

// Name is a validated subscriber display name. Immutable once constructed.
type Name struct {
	value string
}

// ParseName validates raw as a display name: non-blank after trimming, at
// most 256 grapheme clusters, and free of control/markup characters.
func ParseName(raw string) (Name, error) {
	if strings.TrimSpace(raw) == "" {
		return Name{}, invalidName(raw)
	}
	if uniseg.GraphemeClusterCount(raw) > maxNameGraphemes {
		return Name{}, invalidName(raw)
	}
	if strings.ContainsAny(raw, forbiddenNameChars) {
		return Name{}, invalidName(raw)
	}
	return Name{value: raw}, nil
}

func invalidName(raw string) error {
	return domain.NewError(domain.KindValidation,
		fmt.Sprintf("%q is not a valid subscriber name", raw), domain.ErrInvalidArgument)
}

func (n Name) String() string { return n.value }

func (n Name) IsZero() bool { return n.value == "" }
