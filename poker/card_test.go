package poker

import "testing"

func TestNewCardRoundTrip(t *testing.T) {
	t.Parallel()

	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			c := NewCard(rank, suit)
			if !c.Valid() {
				t.Fatalf("NewCard(%v, %v) = %d, not a valid card", rank, suit, c)
			}
			if c.Rank() != rank {
				t.Errorf("Card %d: expected rank %v, got %v", c, rank, c.Rank())
			}
			if c.Suit() != suit {
				t.Errorf("Card %d: expected suit %v, got %v", c, suit, c.Suit())
			}
		}
	}
}

func TestCardIndexLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		card     Card
		expected string
	}{
		{Card(0), "2c"},
		{Card(12), "Ac"},
		{Card(13), "2d"},
		{Card(25), "Ad"},
		{Card(26), "2h"},
		{Card(39), "2s"},
		{Card(51), "As"},
	}

	for _, tt := range tests {
		if got := tt.card.String(); got != tt.expected {
			t.Errorf("Card(%d).String() = %q, want %q", tt.card, got, tt.expected)
		}
	}
}

func TestCardValid(t *testing.T) {
	t.Parallel()

	if c := Card(DeckSize); c.Valid() {
		t.Errorf("Card(%d) should not be valid", DeckSize)
	}
	if c := Card(63); c.Valid() {
		t.Error("Card(63) should not be valid")
	}
	if got := Card(63).String(); got != "?63" {
		t.Errorf("Card(63).String() = %q, want %q", got, "?63")
	}
}

func TestAllCards(t *testing.T) {
	t.Parallel()

	all := AllCards()
	if len(all) != DeckSize {
		t.Fatalf("Expected %d cards, got %d", DeckSize, len(all))
	}
	seen := make(map[Card]bool)
	for i, c := range all {
		if uint8(c) != uint8(i) {
			t.Errorf("AllCards()[%d] = %d, want %d", i, c, i)
		}
		if seen[c] {
			t.Errorf("Duplicate card %s at index %d", c, i)
		}
		seen[c] = true
	}
}
