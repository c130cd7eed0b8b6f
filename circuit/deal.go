package circuit

import (
	cryptorand "crypto/rand"
	"errors"
	"fmt"
	"io"
)

// ErrTooFewPlayers is returned when fewer than two seats are active at deal
// time. Dealing to one seat is a caller defect and is rejected before any
// shuffling happens.
var ErrTooFewPlayers = errors.New("too few active players")

// Deal is the output of one shuffle-and-deal.
type Deal struct {
	// Deck is the full shuffled permutation in packed form. Dealt hole
	// cards stay in their slots; the reveal cursor skips past them.
	Deck PackedDeck

	// Commitment binds the dealer to the permutation before any card is
	// shown. CommitmentKey opens it and must stay escrowed until the hand
	// ends.
	Commitment    [CommitmentSize]byte
	CommitmentKey [CommitmentSize]byte

	// Hands holds each seat's packed hole cards, DummyHand for inactive
	// seats. Output is always MaxPlayers wide.
	Hands [MaxPlayers]PackedHand

	// CardsDealt is the number of deck slots consumed by hole cards. It is
	// the caller's initial reveal cursor.
	CardsDealt uint8
}

// Dealer runs shuffle-and-deal with injectable shuffle and entropy sources.
// The zero configuration is the production one: crypto/rand for both.
type Dealer struct {
	shuffler Shuffler
	entropy  io.Reader
}

// DealerOption configures a Dealer.
type DealerOption func(*Dealer)

// WithShuffler replaces the default CryptoShuffler.
func WithShuffler(s Shuffler) DealerOption {
	return func(d *Dealer) { d.shuffler = s }
}

// WithEntropy replaces the commitment-key entropy source.
func WithEntropy(r io.Reader) DealerOption {
	return func(d *Dealer) { d.entropy = r }
}

// NewDealer returns a Dealer with the given options applied.
func NewDealer(opts ...DealerOption) *Dealer {
	d := &Dealer{
		shuffler: CryptoShuffler{},
		entropy:  cryptorand.Reader,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ShuffleAndDeal shuffles a fresh deck, commits to the permutation and deals
// two hole cards to every active seat: one card to each in seat order, then
// the second the same way, matching live dealing order. Card accounting
// downstream depends on that order, so it is part of the contract.
func (d *Dealer) ShuffleAndDeal(active [MaxPlayers]bool) (*Deal, error) {
	activeCount := 0
	for _, a := range active {
		if a {
			activeCount++
		}
	}
	if activeCount < 2 {
		return nil, fmt.Errorf("%w: %d active of %d seats", ErrTooFewPlayers, activeCount, MaxPlayers)
	}

	slots := OrderedDeck()
	if err := d.shuffler.Shuffle(slots[:]); err != nil {
		return nil, fmt.Errorf("shuffle: %w", err)
	}

	key, err := NewCommitmentKey(d.entropy)
	if err != nil {
		return nil, err
	}

	deck := PackDeck(slots)
	deal := &Deal{
		Deck:          deck,
		Commitment:    Commit(key, deck),
		CommitmentKey: key,
	}

	var dealt [MaxPlayers][HoleCards]uint8
	next := uint8(0)
	for round := 0; round < HoleCards; round++ {
		for seat := 0; seat < MaxPlayers; seat++ {
			if !active[seat] {
				continue
			}
			dealt[seat][round] = slots[next]
			next++
		}
	}
	for seat := 0; seat < MaxPlayers; seat++ {
		if active[seat] {
			deal.Hands[seat] = PackHand(dealt[seat][0], dealt[seat][1])
		} else {
			deal.Hands[seat] = DummyHand
		}
	}
	deal.CardsDealt = next

	return deal, nil
}

// ShuffleAndDeal runs one deal with the production Dealer configuration.
func ShuffleAndDeal(active [MaxPlayers]bool) (*Deal, error) {
	return NewDealer().ShuffleAndDeal(active)
}
