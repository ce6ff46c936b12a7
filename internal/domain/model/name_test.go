package model_test

import (
	"strings"
	"testing"

	"newsletter-service/internal/domain"
	"newsletter-service/internal/domain/model"
)

func TestParseName(t *testing.T) {
	t.Run("a 256 grapheme long name is valid", func(t *testing.T) {
		name := strings.Repeat("ё", 256)
		if _, err := model.ParseName(name); err != nil {
			t.Errorf("expected 256-grapheme name to parse, got error: %v", err)
		}
	})

	t.Run("a name longer than 256 graphemes is rejected", func(t *testing.T) {
		name := strings.Repeat("ё", 257)
		if _, err := model.ParseName(name); err == nil {
			t.Error("expected 257-grapheme name to fail")
		}
	})

	t.Run("whitespace only names are rejected", func(t *testing.T) {
		if _, err := model.ParseName("   "); err == nil {
			t.Error("expected whitespace-only name to fail")
		}
	})

	t.Run("empty string is rejected", func(t *testing.T) {
		if _, err := model.ParseName(""); err == nil {
			t.Error("expected empty name to fail")
		}
	})

	t.Run("names containing an invalid character are rejected", func(t *testing.T) {
		for _, c := range []string{"/", "(", ")", `"`, "<", ">", `\`, "{", "}"} {
			if _, err := model.ParseName("le guin" + c); err == nil {
				t.Errorf("expected name containing %q to fail", c)
			}
		}
	})

	t.Run("a valid name is parsed successfully", func(t *testing.T) {
		name, err := model.ParseName("Ursula Le Guin")
		if err != nil {
			t.Fatalf("expected valid name, got error: %v", err)
		}
		if name.String() != "Ursula Le Guin" {
			t.Errorf("String() = %q", name.String())
		}
	})

	t.Run("failure carries the validation kind", func(t *testing.T) {
		_, err := model.ParseName("")
		if domain.KindOf(err) != domain.KindValidation {
			t.Errorf("expected validation kind, got %s", domain.KindOf(err))
		}
	})
}
