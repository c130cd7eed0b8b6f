// Package poker provides card primitives and a 7-card Texas Hold'em hand
// evaluator with full kicker-level tie-breaking.
package poker

import "fmt"

// Deck geometry constants. Card indices run 0-51 with rank = index % 13
// and suit = index / 13.
const (
	NumRanks = 13
	NumSuits = 4
	DeckSize = NumRanks * NumSuits
)

// Rank represents a card rank, 0-12
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the single-character rank notation
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Suit represents a card suit, 0-3
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the single-character suit notation
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

// Card represents a playing card as an index in [0,51], computed as
// suit*13 + rank. Exactly one index exists per physical card.
type Card uint8

// NewCard creates a card from its rank and suit
func NewCard(rank Rank, suit Suit) Card {
	return Card(uint8(suit)*NumRanks + uint8(rank))
}

// Rank returns the card's rank (0=Two .. 12=Ace)
func (c Card) Rank() Rank {
	return Rank(c % NumRanks)
}

// Suit returns the card's suit (0=Clubs .. 3=Spades)
func (c Card) Suit() Suit {
	return Suit(c / NumRanks)
}

// Valid reports whether the card index refers to a real card
func (c Card) Valid() bool {
	return c < DeckSize
}

// String returns the two-character card notation (e.g., "As", "2c")
func (c Card) String() string {
	if !c.Valid() {
		return fmt.Sprintf("?%d", uint8(c))
	}
	return c.Rank().String() + c.Suit().String()
}

// AllCards returns every card in index order, Two of Clubs through Ace of Spades
func AllCards() [DeckSize]Card {
	var cards [DeckSize]Card
	for i := range cards {
		cards[i] = Card(i)
	}
	return cards
}
