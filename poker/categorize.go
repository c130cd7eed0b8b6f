package poker

// HoleCardCategory buckets starting hands into coarse preflop strength tiers
type HoleCardCategory string

const (
	CategoryPremium HoleCardCategory = "Premium"
	CategoryStrong  HoleCardCategory = "Strong"
	CategoryMedium  HoleCardCategory = "Medium"
	CategoryWeak    HoleCardCategory = "Weak"
	CategoryTrash   HoleCardCategory = "Trash"
	CategoryUnknown HoleCardCategory = "Unknown"
)

// CategorizeHoleCards gives a simple preflop categorization of a starting
// hand: Premium (JJ+, AK), Strong (TT, AQ, AJ), Medium (77-99, suited
// broadway), Weak (22-66, suited connectors), Trash (everything else).
func CategorizeHoleCards(card1, card2 Card) HoleCardCategory {
	if !card1.Valid() || !card2.Valid() {
		return CategoryUnknown
	}

	low, high := card1.Rank(), card2.Rank()
	if low > high {
		low, high = high, low
	}
	pair := low == high
	suited := card1.Suit() == card2.Suit()

	switch {
	case pair && low >= Jack:
		return CategoryPremium
	case high == Ace && low == King:
		return CategoryPremium
	case pair && low == Ten:
		return CategoryStrong
	case high == Ace && (low == Queen || low == Jack):
		return CategoryStrong
	case pair && low >= Seven:
		return CategoryMedium
	case suited && low >= Ten:
		return CategoryMedium
	case pair:
		return CategoryWeak
	case suited && high-low <= 2:
		// Suited connectors, including one- and two-gappers.
		return CategoryWeak
	default:
		return CategoryTrash
	}
}
