package circuit

import (
	"crypto/hmac"
	cryptorand "crypto/rand"
	"crypto/sha256"
	"fmt"
	"hash"
	"math/big"
	rand "math/rand/v2"

	"github.com/stanleykosi/arcium-aces/internal/randutil"
)

// Shuffler permutes a deck of card slots in place.
type Shuffler interface {
	Shuffle(slots []uint8) error
}

// CryptoShuffler is the production shuffler: a Fisher-Yates walk driven by
// crypto/rand, uniform over all permutations.
type CryptoShuffler struct{}

func (CryptoShuffler) Shuffle(slots []uint8) error {
	for i := len(slots) - 1; i > 0; i-- {
		n, err := cryptorand.Int(cryptorand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return fmt.Errorf("crypto shuffle: %w", err)
		}
		j := int(n.Int64())
		slots[i], slots[j] = slots[j], slots[i]
	}
	return nil
}

// SeededShuffler produces deterministic permutations for simulations and
// tests. Successive Shuffle calls continue the same stream.
type SeededShuffler struct {
	rng *rand.Rand
}

// NewSeededShuffler returns a shuffler seeded through randutil, so equal
// seeds give equal permutation sequences.
func NewSeededShuffler(seed int64) *SeededShuffler {
	return &SeededShuffler{rng: randutil.New(seed)}
}

func (s *SeededShuffler) Shuffle(slots []uint8) error {
	s.rng.Shuffle(len(slots), func(i, j int) {
		slots[i], slots[j] = slots[j], slots[i]
	})
	return nil
}

// FairShuffler is the provably-fair construction: a Fisher-Yates walk fed by
// an HMAC-SHA256 byte stream derived from a server seed, a client seed and a
// nonce. Publishing the seed pair after the hand lets anyone replay the
// permutation; every Shuffle call reproduces the same one.
type FairShuffler struct {
	serverSeed []byte
	clientSeed string
	nonce      uint64
}

func NewFairShuffler(serverSeed []byte, clientSeed string, nonce uint64) *FairShuffler {
	return &FairShuffler{
		serverSeed: append([]byte(nil), serverSeed...),
		clientSeed: clientSeed,
		nonce:      nonce,
	}
}

func (f *FairShuffler) Shuffle(slots []uint8) error {
	stream := newFairStream(f.serverSeed, f.clientSeed, f.nonce)
	for i := len(slots) - 1; i > 0; i-- {
		j := stream.uniform(i + 1)
		slots[i], slots[j] = slots[j], slots[i]
	}
	return nil
}

// fairStream yields HMAC-SHA256 output one byte at a time, keyed by the
// server seed over "clientSeed:nonce:block" messages with an incrementing
// block counter.
type fairStream struct {
	mac    hash.Hash
	prefix string
	block  uint64
	buf    [sha256.Size]byte
	used   int
}

func newFairStream(serverSeed []byte, clientSeed string, nonce uint64) *fairStream {
	return &fairStream{
		mac:    hmac.New(sha256.New, serverSeed),
		prefix: fmt.Sprintf("%s:%d", clientSeed, nonce),
		used:   sha256.Size,
	}
}

func (s *fairStream) next() uint8 {
	if s.used == sha256.Size {
		s.mac.Reset()
		fmt.Fprintf(s.mac, "%s:%d", s.prefix, s.block)
		s.mac.Sum(s.buf[:0])
		s.block++
		s.used = 0
	}
	b := s.buf[s.used]
	s.used++
	return b
}

// uniform draws an integer in [0, n) by rejection sampling, keeping the
// permutation unbiased. n must be in [1, 256].
func (s *fairStream) uniform(n int) int {
	limit := 256 - 256%n
	for {
		if b := int(s.next()); b < limit {
			return b % n
		}
	}
}
