package poker

import "testing"

func TestCategoryOrdering(t *testing.T) {
	t.Parallel()

	ordered := []Category{
		NoHand, HighCard, OnePair, TwoPair, ThreeOfAKind,
		Straight, Flush, FullHouse, FourOfAKind, StraightFlush,
	}
	if len(ordered) != NumCategories {
		t.Fatalf("Expected %d categories, got %d", NumCategories, len(ordered))
	}
	for i := 1; i < len(ordered); i++ {
		if ordered[i] <= ordered[i-1] {
			t.Errorf("Category %v should order above %v", ordered[i], ordered[i-1])
		}
	}
	for _, c := range ordered {
		if c.String() == "Unknown" {
			t.Errorf("Category %d has no name", c)
		}
	}
}

func TestHandRankCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     HandRank
		expected int
	}{
		{
			name:     "straight flush beats four of a kind",
			a:        StraightFlushRank(Five),
			b:        FourOfAKindRank(Ace, King),
			expected: 1,
		},
		{
			name:     "high card loses to one pair",
			a:        HighCardRank([5]Rank{Ace, King, Queen, Jack, Nine}),
			b:        OnePairRank(Two, [3]Rank{Five, Four, Three}),
			expected: -1,
		},
		{
			name:     "any hand beats no hand",
			a:        HighCardRank([5]Rank{Seven, Five, Four, Three, Two}),
			b:        HandRank{},
			expected: 1,
		},
		{
			name:     "higher straight flush wins",
			a:        StraightFlushRank(Ace),
			b:        StraightFlushRank(King),
			expected: 1,
		},
		{
			name:     "quad rank dominates kicker",
			a:        FourOfAKindRank(Nine, Two),
			b:        FourOfAKindRank(Eight, Ace),
			expected: 1,
		},
		{
			name:     "equal quads decided by kicker",
			a:        FourOfAKindRank(Nine, Ace),
			b:        FourOfAKindRank(Nine, King),
			expected: 1,
		},
		{
			name:     "full house trips dominate pair",
			a:        FullHouseRank(Three, Two),
			b:        FullHouseRank(Two, Ace),
			expected: 1,
		},
		{
			name:     "flush compared card by card",
			a:        FlushRank([5]Rank{Ace, King, Nine, Eight, Three}),
			b:        FlushRank([5]Rank{Ace, King, Nine, Eight, Two}),
			expected: 1,
		},
		{
			name:     "two pair low pair breaks tie",
			a:        TwoPairRank(Ace, Nine, Two),
			b:        TwoPairRank(Ace, Eight, King),
			expected: 1,
		},
		{
			name:     "two pair kicker breaks tie",
			a:        TwoPairRank(Ace, Nine, Queen),
			b:        TwoPairRank(Ace, Nine, Jack),
			expected: 1,
		},
		{
			name:     "one pair third kicker breaks tie",
			a:        OnePairRank(Ten, [3]Rank{Ace, King, Eight}),
			b:        OnePairRank(Ten, [3]Rank{Ace, King, Seven}),
			expected: 1,
		},
		{
			name:     "identical hands tie",
			a:        TwoPairRank(Ace, Nine, Queen),
			b:        TwoPairRank(Ace, Nine, Queen),
			expected: 0,
		},
		{
			name:     "wheel is the lowest straight",
			a:        StraightRank(Five),
			b:        StraightRank(Six),
			expected: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.expected {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}
			if got := tt.b.Compare(tt.a); got != -tt.expected {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.b, tt.a, got, -tt.expected)
			}
		})
	}
}

func TestHandRankString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rank     HandRank
		expected string
	}{
		{StraightFlushRank(Ace), "Straight Flush (A high)"},
		{FourOfAKindRank(Nine, Ace), "Four of a Kind (9s, A kicker)"},
		{FullHouseRank(King, Two), "Full House (Ks full of 2s)"},
		{FlushRank([5]Rank{Ace, Jack, Nine, Five, Two}), "Flush (A J 9 5 2)"},
		{StraightRank(Five), "Straight (5 high)"},
		{ThreeOfAKindRank(Queen, [2]Rank{Ace, Ten}), "Three of a Kind (Qs)"},
		{TwoPairRank(Jack, Four, Ace), "Two Pair (Js and 4s)"},
		{OnePairRank(Eight, [3]Rank{Ace, Seven, Six}), "One Pair (8s)"},
		{HighCardRank([5]Rank{King, Ten, Eight, Four, Three}), "High Card (K T 8 4 3)"},
		{HandRank{}, "No Hand"},
	}

	for _, tt := range tests {
		if got := tt.rank.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}
