package circuit

import (
	"errors"
	"fmt"

	"github.com/stanleykosi/arcium-aces/poker"
)

var (
	// ErrCursorOutOfRange is returned when the reveal cursor points past
	// the deck.
	ErrCursorOutOfRange = errors.New("cursor out of range")

	// ErrRevealCount is returned when the requested reveal count is not
	// between 1 and MaxReveal.
	ErrRevealCount = errors.New("invalid reveal count")
)

// RevealCommunityCards burns the card at topCardIdx, then reveals the
// following numToReveal cards (3 for the flop, 1 for turn and river). Burned
// and revealed slots are overwritten with NoCard in the returned deck so no
// later call can surface them again. The output is always MaxReveal wide,
// padded with NoCard.
//
// Cursor progression is the caller's job: the flop starts at the number of
// hole cards dealt, the turn 4 slots later, the river 2 after that. The loop
// always runs MaxReveal iterations; positions past numToReveal or past the
// deck end stay NoCard rather than erroring. Only the public preconditions
// (cursor in range, count in 1..MaxReveal) fail loudly.
func RevealCommunityCards(deck PackedDeck, topCardIdx, numToReveal uint8) ([MaxReveal]uint8, PackedDeck, error) {
	revealed := [MaxReveal]uint8{NoCard, NoCard, NoCard}

	if topCardIdx >= poker.DeckSize {
		return revealed, deck, fmt.Errorf("%w: top card index %d", ErrCursorOutOfRange, topCardIdx)
	}
	if numToReveal < 1 || numToReveal > MaxReveal {
		return revealed, deck, fmt.Errorf("%w: %d", ErrRevealCount, numToReveal)
	}

	deck = deck.WithSlot(topCardIdx, NoCard)

	for i := uint8(0); i < MaxReveal; i++ {
		idx := topCardIdx + 1 + i
		if i < numToReveal && idx < poker.DeckSize {
			revealed[i] = deck.Slot(idx)
			deck = deck.WithSlot(idx, NoCard)
		}
	}

	return revealed, deck, nil
}
