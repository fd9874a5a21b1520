// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package codes

import "math/rand/v2"

const (
	// CodeLength is the length of a generated access code.
	CodeLength = 16
	// alphabet for access codes: upper + lower letters and digits.
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// IntN returns a uniform random int in [0, n). Codes are distributed
// out-of-band and gate content, not accounts, so a non-cryptographic source
// is sufficient; tests inject a deterministic one.
type IntN func(n int) int

// Generator produces random access code values.
type Generator struct {
	intn IntN
}

// NewGenerator creates a generator backed by math/rand.
func NewGenerator() *Generator {
	return &Generator{intn: rand.IntN}
}

// NewGeneratorWithSource creates a generator with a custom random source.
func NewGeneratorWithSource(intn IntN) *Generator {
	return &Generator{intn: intn}
}

// Generate returns a new code value of CodeLength characters.
func (g *Generator) Generate() string {
	buf := make([]byte, CodeLength)
	for i := range buf {
		buf[i] = alphabet[g.intn(len(alphabet))]
	}
	return string(buf)
}
