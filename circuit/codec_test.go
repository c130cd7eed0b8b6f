package circuit

import (
	"strings"
	"testing"

	"github.com/stanleykosi/arcium-aces/internal/randutil"
	"github.com/stanleykosi/arcium-aces/poker"
)

func TestPackDeckRoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("ordered deck", func(t *testing.T) {
		slots := OrderedDeck()
		if got := PackDeck(slots).Slots(); got != slots {
			t.Errorf("Expected %v, got %v", slots, got)
		}
	})

	t.Run("shuffled decks", func(t *testing.T) {
		rng := randutil.New(3)
		for trial := 0; trial < 50; trial++ {
			slots := OrderedDeck()
			rng.Shuffle(len(slots), func(i, j int) {
				slots[i], slots[j] = slots[j], slots[i]
			})
			if got := PackDeck(slots).Slots(); got != slots {
				t.Fatalf("Round trip failed for %v: got %v", slots, got)
			}
		}
	})

	t.Run("sentinel values survive", func(t *testing.T) {
		var slots [poker.DeckSize]uint8
		for i := range slots {
			switch i % 3 {
			case 0:
				slots[i] = NoCard
			case 1:
				slots[i] = DummyCard
			default:
				slots[i] = uint8(i)
			}
		}
		if got := PackDeck(slots).Slots(); got != slots {
			t.Errorf("Expected %v, got %v", slots, got)
		}
	})

	t.Run("values masked to six bits", func(t *testing.T) {
		var slots [poker.DeckSize]uint8
		slots[0] = 255
		slots[51] = 64
		got := PackDeck(slots).Slots()
		if got[0] != 63 {
			t.Errorf("Expected slot 0 masked to 63, got %d", got[0])
		}
		if got[51] != 0 {
			t.Errorf("Expected slot 51 masked to 0, got %d", got[51])
		}
	})
}

func TestWithSlotWordBoundary(t *testing.T) {
	t.Parallel()

	// Slot 10 occupies bits 60-65 of the first chunk, the only slot that
	// straddles the two 64-bit words.
	var d PackedDeck
	d = d.WithSlot(10, NoCard)
	if d[0].Lo != 0xf000000000000000 {
		t.Errorf("Expected low word 0xf000000000000000, got %#016x", d[0].Lo)
	}
	if d[0].Hi != 0x3 {
		t.Errorf("Expected high word 0x3, got %#x", d[0].Hi)
	}
	if got := d.Slot(10); got != NoCard {
		t.Errorf("Expected slot 10 = %d, got %d", NoCard, got)
	}

	// Rewriting the straddling slot must leave its neighbors alone.
	d = d.WithSlot(9, 41).WithSlot(11, 37).WithSlot(10, 5)
	if got := d.Slot(9); got != 41 {
		t.Errorf("Expected slot 9 = 41, got %d", got)
	}
	if got := d.Slot(10); got != 5 {
		t.Errorf("Expected slot 10 = 5, got %d", got)
	}
	if got := d.Slot(11); got != 37 {
		t.Errorf("Expected slot 11 = 37, got %d", got)
	}
}

func TestWithSlotAllPositions(t *testing.T) {
	t.Parallel()

	deck := PackDeck(OrderedDeck())
	for i := uint8(0); i < poker.DeckSize; i++ {
		updated := deck.WithSlot(i, NoCard)
		slots := updated.Slots()
		for j := uint8(0); j < poker.DeckSize; j++ {
			want := j
			if j == i {
				want = NoCard
			}
			if slots[j] != want {
				t.Fatalf("WithSlot(%d): slot %d = %d, want %d", i, j, slots[j], want)
			}
		}
	}
}

func TestPackedDeckStringRoundTrip(t *testing.T) {
	t.Parallel()

	deck := PackDeck(OrderedDeck()).WithSlot(10, NoCard).WithSlot(30, DummyCard)
	parsed, err := ParsePackedDeck(deck.String())
	if err != nil {
		t.Fatalf("ParsePackedDeck() returned error: %v", err)
	}
	if parsed != deck {
		t.Errorf("Expected %s, got %s", deck, parsed)
	}
}

func TestParsePackedDeckErrors(t *testing.T) {
	t.Parallel()

	zeros := strings.Repeat("0", 32)
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"missing chunks", zeros},
		{"too many chunks", zeros + ":" + zeros + ":" + zeros + ":" + zeros},
		{"short chunk", "abc:def:012"},
		{"not hex", strings.Repeat("zz", 16) + ":" + zeros + ":" + zeros},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := ParsePackedDeck(tt.input); err == nil {
				t.Error("Expected an error, got nil")
			}
		})
	}
}

func TestPackHandRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct{ c0, c1 uint8 }{
		{0, 51},
		{51, 0},
		{12, 38},
		{DummyCard, DummyCard},
		{NoCard, 7},
	}
	for _, tt := range tests {
		h := PackHand(tt.c0, tt.c1)
		c0, c1 := h.Cards()
		if c0 != tt.c0 || c1 != tt.c1 {
			t.Errorf("PackHand(%d, %d).Cards() = (%d, %d)", tt.c0, tt.c1, c0, c1)
		}
	}

	if c0, c1 := DummyHand.Cards(); c0 != DummyCard || c1 != DummyCard {
		t.Errorf("DummyHand.Cards() = (%d, %d), want (%d, %d)", c0, c1, DummyCard, DummyCard)
	}
}

func TestOrderedDeck(t *testing.T) {
	t.Parallel()

	slots := OrderedDeck()
	for i, v := range slots {
		if v != uint8(i) {
			t.Errorf("Slot %d = %d, want %d", i, v, i)
		}
	}
}

func TestParseUint128(t *testing.T) {
	t.Parallel()

	u := Uint128{Lo: 0x0123456789abcdef, Hi: 0xfedcba9876543210}
	parsed, err := ParseUint128(u.Hex())
	if err != nil {
		t.Fatalf("ParseUint128() returned error: %v", err)
	}
	if parsed != u {
		t.Errorf("Expected %+v, got %+v", u, parsed)
	}

	if _, err := ParseUint128("abcd"); err == nil {
		t.Error("Expected an error for a short string")
	}
	if _, err := ParseUint128(strings.Repeat("g", 32)); err == nil {
		t.Error("Expected an error for non-hex input")
	}
}
