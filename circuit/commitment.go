package circuit

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"io"
)

// CommitmentSize is the byte length of commitments and commitment keys.
const CommitmentSize = sha256.Size

// Commit binds a deck permutation: HMAC-SHA256 over the 52 slot bytes under
// the given key. The keyed construction hides the permutation from anyone
// holding only the commitment; the key stays escrowed until the hand ends,
// then opens it for verification.
func Commit(key [CommitmentSize]byte, deck PackedDeck) [CommitmentSize]byte {
	slots := deck.Slots()
	mac := hmac.New(sha256.New, key[:])
	mac.Write(slots[:])
	var out [CommitmentSize]byte
	mac.Sum(out[:0])
	return out
}

// NewCommitmentKey draws a fresh key from the entropy source.
func NewCommitmentKey(rand io.Reader) ([CommitmentSize]byte, error) {
	var key [CommitmentSize]byte
	if _, err := io.ReadFull(rand, key[:]); err != nil {
		return key, fmt.Errorf("commitment key: %w", err)
	}
	return key, nil
}

// VerifyCommitment reports whether the deck and key reproduce the
// commitment. The comparison is constant time.
func VerifyCommitment(commitment, key [CommitmentSize]byte, deck PackedDeck) bool {
	expected := Commit(key, deck)
	return hmac.Equal(commitment[:], expected[:])
}
