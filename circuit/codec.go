package circuit

import (
	"fmt"
	"strings"

	"github.com/stanleykosi/arcium-aces/poker"
)

// Card slots are 6-bit base-64 digits: the minimum width covering 0-63,
// a superset of the real cards (0-51), DummyCard and NoCard.
const (
	slotBits = 6
	slotMask = 1<<slotBits - 1

	// slotsPerChunk is how many 6-bit digits fit one 128-bit chunk.
	slotsPerChunk = 21
	deckChunks    = 3
)

// PackedDeck is the 52-slot deck in packed form: slots 0-20 in chunk 0,
// 21-41 in chunk 1, 42-51 in chunk 2. Within its chunk a slot is a base-64
// digit at positional weight 64^(slot-base).
type PackedDeck [deckChunks]Uint128

// PackDeck packs 52 card slots. Values are masked to 6 bits.
func PackDeck(slots [poker.DeckSize]uint8) PackedDeck {
	var d PackedDeck
	for i, v := range slots {
		chunk, off := slotPosition(uint8(i))
		d[chunk] = d[chunk].withField6(off, v)
	}
	return d
}

// Slots unpacks the deck into its 52 card slots.
func (d PackedDeck) Slots() [poker.DeckSize]uint8 {
	var slots [poker.DeckSize]uint8
	for i := range slots {
		chunk, off := slotPosition(uint8(i))
		slots[i] = d[chunk].field6(off)
	}
	return slots
}

// Slot returns the card value at one deck position.
func (d PackedDeck) Slot(i uint8) uint8 {
	chunk, off := slotPosition(i)
	return d[chunk].field6(off)
}

// WithSlot returns a copy of the deck with one position replaced.
func (d PackedDeck) WithSlot(i, v uint8) PackedDeck {
	chunk, off := slotPosition(i)
	d[chunk] = d[chunk].withField6(off, v)
	return d
}

func slotPosition(i uint8) (chunk int, off uint) {
	return int(i) / slotsPerChunk, uint(i%slotsPerChunk) * slotBits
}

// String renders the deck as three colon-separated 32-hex-digit words,
// the form the CLI threads between invocations.
func (d PackedDeck) String() string {
	return d[0].Hex() + ":" + d[1].Hex() + ":" + d[2].Hex()
}

// ParsePackedDeck parses the colon-separated hex form produced by String.
func ParsePackedDeck(s string) (PackedDeck, error) {
	parts := strings.Split(s, ":")
	if len(parts) != deckChunks {
		return PackedDeck{}, fmt.Errorf("packed deck must have %d chunks, got %d", deckChunks, len(parts))
	}
	var d PackedDeck
	for i, p := range parts {
		u, err := ParseUint128(p)
		if err != nil {
			return PackedDeck{}, fmt.Errorf("chunk %d: %w", i, err)
		}
		d[i] = u
	}
	return d, nil
}

// OrderedDeck returns the identity permutation 0..51.
func OrderedDeck() [poker.DeckSize]uint8 {
	var slots [poker.DeckSize]uint8
	for i := range slots {
		slots[i] = uint8(i)
	}
	return slots
}

// PackedHand is one seat's two hole cards in packed form: c0 + c1*64.
type PackedHand uint16

// DummyHand is the packed filler hand for inactive seats.
const DummyHand PackedHand = DummyCard | DummyCard<<slotBits

// PackHand packs two card values, each masked to 6 bits.
func PackHand(c0, c1 uint8) PackedHand {
	return PackedHand(c0&slotMask) | PackedHand(c1&slotMask)<<slotBits
}

// Cards unpacks the two hole cards.
func (h PackedHand) Cards() (c0, c1 uint8) {
	return uint8(h & slotMask), uint8(h >> slotBits & slotMask)
}
