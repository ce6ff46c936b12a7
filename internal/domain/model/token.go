package model

import (
	"crypto/rand"
	"fmt"
)

const (
	tokenLength   = 25
	tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// GenerateToken produces a confirmation token of 25 characters drawn
// uniformly from [A-Za-z0-9] using the OS CSPRNG. The alphabet has 62
// symbols, so bytes >= 248 are rejected to keep the draw uniform.
func GenerateToken() (string, error) {
	out := make([]byte, 0, tokenLength)
	buf := make([]byte, 32)
	for len(out) < tokenLength {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("generate token: %w", err)
		}
		for _, b := range buf {
			if b >= 248 {
				continue
			}
			out = append(out, tokenAlphabet[int(b)%len(tokenAlphabet)])
			if len(out) == tokenLength {
				break
			}
		}
	}
	return string(out), nil
}
