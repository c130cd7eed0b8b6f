package poker

import "testing"

func TestCategorizeHoleCards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cards    string
		expected HoleCardCategory
	}{
		{"AsAh", CategoryPremium},
		{"KdKc", CategoryPremium},
		{"JsJh", CategoryPremium},
		{"AsKd", CategoryPremium},
		{"AsKs", CategoryPremium},
		{"TsTh", CategoryStrong},
		{"AdQc", CategoryStrong},
		{"AhJs", CategoryStrong},
		{"9s9h", CategoryMedium},
		{"7d7c", CategoryMedium},
		{"KsQs", CategoryMedium},
		{"JhTh", CategoryMedium},
		{"AdTd", CategoryMedium},
		{"6s6h", CategoryWeak},
		{"2d2c", CategoryWeak},
		{"8h7h", CategoryWeak},
		{"9s7s", CategoryWeak},
		{"KhQd", CategoryTrash},
		{"AdTc", CategoryTrash},
		{"9d7c", CategoryTrash},
		{"7c2d", CategoryTrash},
	}

	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			cards := MustParseCards(tt.cards)
			if got := CategorizeHoleCards(cards[0], cards[1]); got != tt.expected {
				t.Errorf("CategorizeHoleCards(%s) = %v, want %v", tt.cards, got, tt.expected)
			}
		})
	}
}

func TestCategorizeHoleCardsInvalid(t *testing.T) {
	t.Parallel()

	if got := CategorizeHoleCards(Card(60), Card(0)); got != CategoryUnknown {
		t.Errorf("CategorizeHoleCards with invalid card = %v, want %v", got, CategoryUnknown)
	}
}
