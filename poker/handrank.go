package poker

import (
	"fmt"
	"strings"
)

// Category enumerates poker hand categories ordered from weakest to strongest.
// NoHand is the zero value and marks an unevaluated or inactive hand; every
// real hand compares stronger than it.
type Category uint8

const (
	NoHand Category = iota
	HighCard
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// NumCategories counts the Category values, NoHand included.
const NumCategories = 10

// String returns the readable name of the category
func (c Category) String() string {
	switch c {
	case NoHand:
		return "No Hand"
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// HandRank is a tagged hand strength value: the category plus the rank fields
// needed for a complete tie-break within that category. Tiebreaks are laid out
// strongest-first in a category-specific order (primary grouping ranks, then
// kickers high to low); unused trailing slots stay zero. Two ranks of the same
// category are fully ordered by comparing Tiebreaks lexicographically.
//
// Layouts by category:
//
//	StraightFlush: [high]             FourOfAKind: [quad, kicker]
//	FullHouse:     [trips, pair]      Flush:       [r0..r4]
//	Straight:      [high]             ThreeOfAKind:[trips, k0, k1]
//	TwoPair:       [hi, lo, kicker]   OnePair:     [pair, k0, k1, k2]
//	HighCard:      [r0..r4]           NoHand:      all zero
type HandRank struct {
	Category  Category
	Tiebreaks [5]Rank
}

// StraightFlushRank builds a straight flush with the given high card.
// The wheel's high card is Five.
func StraightFlushRank(high Rank) HandRank {
	return HandRank{Category: StraightFlush, Tiebreaks: [5]Rank{high}}
}

// FourOfAKindRank builds quads with the best remaining kicker
func FourOfAKindRank(quad, kicker Rank) HandRank {
	return HandRank{Category: FourOfAKind, Tiebreaks: [5]Rank{quad, kicker}}
}

// FullHouseRank builds a full house from the trips rank and the pair rank
func FullHouseRank(trips, pair Rank) HandRank {
	return HandRank{Category: FullHouse, Tiebreaks: [5]Rank{trips, pair}}
}

// FlushRank builds a flush from its five ranks, highest first
func FlushRank(ranks [5]Rank) HandRank {
	return HandRank{Category: Flush, Tiebreaks: ranks}
}

// StraightRank builds a straight with the given high card.
// The wheel's high card is Five.
func StraightRank(high Rank) HandRank {
	return HandRank{Category: Straight, Tiebreaks: [5]Rank{high}}
}

// ThreeOfAKindRank builds trips with the two best kickers, highest first
func ThreeOfAKindRank(trips Rank, kickers [2]Rank) HandRank {
	return HandRank{Category: ThreeOfAKind, Tiebreaks: [5]Rank{trips, kickers[0], kickers[1]}}
}

// TwoPairRank builds two pair from the high pair, low pair and best kicker
func TwoPairRank(highPair, lowPair, kicker Rank) HandRank {
	return HandRank{Category: TwoPair, Tiebreaks: [5]Rank{highPair, lowPair, kicker}}
}

// OnePairRank builds one pair with the three best kickers, highest first
func OnePairRank(pair Rank, kickers [3]Rank) HandRank {
	return HandRank{Category: OnePair, Tiebreaks: [5]Rank{pair, kickers[0], kickers[1], kickers[2]}}
}

// HighCardRank builds a no-pair hand from its five ranks, highest first
func HighCardRank(ranks [5]Rank) HandRank {
	return HandRank{Category: HighCard, Tiebreaks: ranks}
}

// Compare returns 1 if h is stronger than other, -1 if weaker, 0 on a true
// tie. Categories compare first; equal categories compare their tiebreak
// fields lexicographically.
func (h HandRank) Compare(other HandRank) int {
	if h.Category != other.Category {
		if h.Category > other.Category {
			return 1
		}
		return -1
	}
	for i := 0; i < len(h.Tiebreaks); i++ {
		if h.Tiebreaks[i] != other.Tiebreaks[i] {
			if h.Tiebreaks[i] > other.Tiebreaks[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// String returns the category name with its tie-break detail,
// e.g. "Full House (Ks full of 2s)" or "Straight (9 high)".
func (h HandRank) String() string {
	switch h.Category {
	case NoHand:
		return "No Hand"
	case StraightFlush, Straight:
		return fmt.Sprintf("%s (%s high)", h.Category, h.Tiebreaks[0])
	case FourOfAKind:
		return fmt.Sprintf("%s (%ss, %s kicker)", h.Category, h.Tiebreaks[0], h.Tiebreaks[1])
	case FullHouse:
		return fmt.Sprintf("%s (%ss full of %ss)", h.Category, h.Tiebreaks[0], h.Tiebreaks[1])
	case Flush, HighCard:
		return fmt.Sprintf("%s (%s)", h.Category, formatRanks(h.Tiebreaks[:]))
	case ThreeOfAKind:
		return fmt.Sprintf("%s (%ss)", h.Category, h.Tiebreaks[0])
	case TwoPair:
		return fmt.Sprintf("%s (%ss and %ss)", h.Category, h.Tiebreaks[0], h.Tiebreaks[1])
	case OnePair:
		return fmt.Sprintf("%s (%ss)", h.Category, h.Tiebreaks[0])
	default:
		return "Unknown"
	}
}

func formatRanks(ranks []Rank) string {
	parts := make([]string, len(ranks))
	for i, r := range ranks {
		parts[i] = r.String()
	}
	return strings.Join(parts, " ")
}
