// Package handid mints identifiers for dealt hands. An ID is a UUIDv7
// encoded as 26 characters of Crockford base32, so IDs sort by deal time and
// are safe in file names and log lines.
package handid

import (
	cryptorand "crypto/rand"
	"fmt"
	"io"
	"strings"
	"time"
)

// Crockford's base32 alphabet: no i, l, o or u.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

const encodedLen = 26

// Generator mints hand IDs from an entropy source.
type Generator struct {
	entropy io.Reader
}

// New returns a Generator drawing from crypto/rand.
func New() *Generator {
	return &Generator{entropy: cryptorand.Reader}
}

// NewWithEntropy returns a Generator drawing random bytes from r, for
// reproducible IDs in tests.
func NewWithEntropy(r io.Reader) *Generator {
	return &Generator{entropy: r}
}

// Generate mints one hand ID.
func (g *Generator) Generate() (string, error) {
	id, err := g.newUUIDv7()
	if err != nil {
		return "", err
	}
	return encode(id), nil
}

// Generate mints one hand ID with the production generator.
func Generate() (string, error) {
	return New().Generate()
}

// newUUIDv7 builds a UUIDv7: a 48-bit millisecond timestamp, then version
// and variant bits over random data.
func (g *Generator) newUUIDv7() ([16]byte, error) {
	var id [16]byte

	ms := uint64(time.Now().UnixMilli())
	id[0] = byte(ms >> 40)
	id[1] = byte(ms >> 32)
	id[2] = byte(ms >> 24)
	id[3] = byte(ms >> 16)
	id[4] = byte(ms >> 8)
	id[5] = byte(ms)

	if _, err := io.ReadFull(g.entropy, id[6:]); err != nil {
		return id, fmt.Errorf("hand id entropy: %w", err)
	}

	id[6] = id[6]&0x0f | 0x70
	id[8] = id[8]&0x3f | 0x80

	return id, nil
}

// encode renders 128 bits as 26 base32 characters, most significant bits
// first. 26 characters hold 130 bits, so the last character carries only 3
// data bits.
func encode(id [16]byte) string {
	var out [encodedLen]byte
	acc, bits, n := uint(0), uint(0), 0
	for _, b := range id {
		acc = acc<<8 | uint(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			out[n] = alphabet[acc>>bits&0x1f]
			n++
		}
	}
	out[n] = alphabet[acc<<(5-bits)&0x1f]
	return string(out[:])
}

// Validate reports whether id is a well-formed hand ID.
func Validate(id string) error {
	if len(id) != encodedLen {
		return fmt.Errorf("hand id must be %d characters, got %d", encodedLen, len(id))
	}
	// The top two of the 130 encoded bits must be zero for the value to
	// fit 128 bits, which caps the first character at '7'.
	if id[0] > '7' {
		return fmt.Errorf("hand id first character must be 0-7, got %c", id[0])
	}
	for i := 0; i < len(id); i++ {
		if strings.IndexByte(alphabet, id[i]) < 0 {
			return fmt.Errorf("hand id has invalid character %c at position %d", id[i], i)
		}
	}
	return nil
}
