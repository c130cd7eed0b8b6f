package circuit

import (
	"errors"
	"strings"
	"testing"

	"github.com/stanleykosi/arcium-aces/poker"
)

func dealSeeded(t *testing.T, seed int64, active [MaxPlayers]bool) (*Deal, [poker.DeckSize]uint8) {
	t.Helper()
	dealer := NewDealer(
		WithShuffler(NewSeededShuffler(seed)),
		WithEntropy(strings.NewReader(strings.Repeat("k", CommitmentSize))),
	)
	deal, err := dealer.ShuffleAndDeal(active)
	if err != nil {
		t.Fatalf("ShuffleAndDeal() returned error: %v", err)
	}
	return deal, deal.Deck.Slots()
}

func TestRevealFlopTurnRiver(t *testing.T) {
	t.Parallel()

	deal, perm := dealSeeded(t, 3, [MaxPlayers]bool{true, true, false, false, false, false})
	cursor := deal.CardsDealt

	flop, deck, err := RevealCommunityCards(deal.Deck, cursor, 3)
	if err != nil {
		t.Fatalf("Flop reveal returned error: %v", err)
	}
	turn, deck, err := RevealCommunityCards(deck, cursor+4, 1)
	if err != nil {
		t.Fatalf("Turn reveal returned error: %v", err)
	}
	river, deck, err := RevealCommunityCards(deck, cursor+6, 1)
	if err != nil {
		t.Fatalf("River reveal returned error: %v", err)
	}

	// Each street burns one card and reveals from the slots after it.
	if want := [MaxReveal]uint8{perm[cursor+1], perm[cursor+2], perm[cursor+3]}; flop != want {
		t.Errorf("Flop = %v, want %v", flop, want)
	}
	if want := [MaxReveal]uint8{perm[cursor+5], NoCard, NoCard}; turn != want {
		t.Errorf("Turn = %v, want %v", turn, want)
	}
	if want := [MaxReveal]uint8{perm[cursor+7], NoCard, NoCard}; river != want {
		t.Errorf("River = %v, want %v", river, want)
	}

	// No card surfaces twice across hole cards and board.
	seen := make(map[uint8]bool)
	for seat := 0; seat < 2; seat++ {
		c0, c1 := deal.Hands[seat].Cards()
		seen[c0], seen[c1] = true, true
	}
	for _, c := range []uint8{flop[0], flop[1], flop[2], turn[0], river[0]} {
		if c >= poker.DeckSize {
			t.Fatalf("Board card %d is not a card", c)
		}
		if seen[c] {
			t.Fatalf("Card %d surfaced twice", c)
		}
		seen[c] = true
	}

	// Burned and revealed slots are consumed; every other slot is intact.
	final := deck.Slots()
	for i := range final {
		consumed := uint8(i) >= cursor && uint8(i) <= cursor+7
		switch {
		case consumed && final[i] != NoCard:
			t.Errorf("Slot %d should be consumed, holds %d", i, final[i])
		case !consumed && final[i] != perm[i]:
			t.Errorf("Slot %d changed from %d to %d", i, perm[i], final[i])
		}
	}
}

func TestRevealValidation(t *testing.T) {
	t.Parallel()

	deck := PackDeck(OrderedDeck())
	empty := [MaxReveal]uint8{NoCard, NoCard, NoCard}

	revealed, out, err := RevealCommunityCards(deck, poker.DeckSize, 1)
	if !errors.Is(err, ErrCursorOutOfRange) {
		t.Errorf("Expected ErrCursorOutOfRange, got %v", err)
	}
	if out != deck {
		t.Error("Deck must be unchanged on a rejected reveal")
	}
	if revealed != empty {
		t.Errorf("Expected no reveals, got %v", revealed)
	}

	for _, n := range []uint8{0, 4} {
		revealed, out, err := RevealCommunityCards(deck, 0, n)
		if !errors.Is(err, ErrRevealCount) {
			t.Errorf("numToReveal=%d: expected ErrRevealCount, got %v", n, err)
		}
		if out != deck {
			t.Errorf("numToReveal=%d: deck must be unchanged on a rejected reveal", n)
		}
		if revealed != empty {
			t.Errorf("numToReveal=%d: expected no reveals, got %v", n, revealed)
		}
	}
}

func TestRevealAtDeckEnd(t *testing.T) {
	t.Parallel()

	deck := PackDeck(OrderedDeck())

	// Burning slot 49 leaves only two cards to reveal; the third output
	// position stays the sentinel.
	revealed, out, err := RevealCommunityCards(deck, 49, 3)
	if err != nil {
		t.Fatalf("RevealCommunityCards() returned error: %v", err)
	}
	if want := [MaxReveal]uint8{50, 51, NoCard}; revealed != want {
		t.Errorf("Expected %v, got %v", want, revealed)
	}
	slots := out.Slots()
	for i := uint8(0); i < poker.DeckSize; i++ {
		if i >= 49 {
			if slots[i] != NoCard {
				t.Errorf("Slot %d should be consumed, holds %d", i, slots[i])
			}
		} else if slots[i] != i {
			t.Errorf("Slot %d changed to %d", i, slots[i])
		}
	}

	// Burning the last slot reveals nothing at all.
	revealed, _, err = RevealCommunityCards(deck, 51, 3)
	if err != nil {
		t.Fatalf("RevealCommunityCards() returned error: %v", err)
	}
	if want := [MaxReveal]uint8{NoCard, NoCard, NoCard}; revealed != want {
		t.Errorf("Expected %v, got %v", want, revealed)
	}
}

func TestRevealConsumedSlotYieldsSentinel(t *testing.T) {
	t.Parallel()

	// Revealing over an already-consumed region returns sentinels, not
	// cards: the burn overwrote them.
	deck := PackDeck(OrderedDeck())
	_, deck, err := RevealCommunityCards(deck, 10, 3)
	if err != nil {
		t.Fatalf("RevealCommunityCards() returned error: %v", err)
	}
	revealed, _, err := RevealCommunityCards(deck, 10, 3)
	if err != nil {
		t.Fatalf("RevealCommunityCards() returned error: %v", err)
	}
	if want := [MaxReveal]uint8{NoCard, NoCard, NoCard}; revealed != want {
		t.Errorf("Expected %v, got %v", want, revealed)
	}
}
