package toolkit

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"primer/internal/domain"
)

// Character classes used by Password.
const (
	Letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits  = "0123456789"
	Symbols = "!@#$%^&*()-_=+[]{}<>?"
)

// PasswordOptions controls the character classes used for generation.
// Letters are always included.
type PasswordOptions struct {
	NoDigits  bool
	NoSymbols bool
}

// Charset returns the full alphabet implied by the options.
func (o PasswordOptions) Charset() string {
	var b strings.Builder
	b.WriteString(Letters)
	if !o.NoDigits {
		b.WriteString(Digits)
	}
	if !o.NoSymbols {
		b.WriteString(Symbols)
	}
	return b.String()
}

// Password generates a random password of exactly length characters drawn
// from the enabled character classes. When length allows, the result contains
// at least one character from each enabled class.
func Password(length int, opts PasswordOptions) (string, error) {
	if length < 1 {
		return "", domain.ErrValidation("password length must be at least 1, got %d", length)
	}

	classes := []string{Letters}
	if !opts.NoDigits {
		classes = append(classes, Digits)
	}
	if !opts.NoSymbols {
		classes = append(classes, Symbols)
	}
	charset := opts.Charset()

	out := make([]byte, 0, length)

	// One character per enabled class first, when the password is long
	// enough to hold them all, then fill from the full alphabet.
	if length >= len(classes) {
		for _, class := range classes {
			c, err := pick(class)
			if err != nil {
				return "", err
			}
			out = append(out, c)
		}
	}
	for len(out) < length {
		c, err := pick(charset)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	if err := shuffle(out); err != nil {
		return "", err
	}
	return string(out), nil
}

func pick(charset string) (byte, error) {
	i, err := pickIndex(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[i], nil
}

func pickIndex(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read random source: %w", err)
	}
	return int(v.Int64()), nil
}

// shuffle performs a Fisher-Yates shuffle using crypto/rand.
func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := pickIndex(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}
