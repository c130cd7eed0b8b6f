package circuit

import (
	"errors"
	"fmt"

	"github.com/stanleykosi/arcium-aces/poker"
)

// ErrInvalidCard is returned when a hole or community card value is not a
// real card at showdown time.
var ErrInvalidCard = errors.New("invalid card")

// EvaluateHandsAndPayout is the showdown entry point. It unpacks every
// active seat's hole cards, ranks the best 5 of the 7 cards against the
// board and settles all pots. Inactive seats keep the NoHand zero rank; they
// feed the pot through their bets but can never win.
func EvaluateHandsAndPayout(
	hands [MaxPlayers]PackedHand,
	community [CommunityCards]uint8,
	bets [MaxPlayers]uint64,
	active [MaxPlayers]bool,
	identities [MaxPlayers]Identity,
) (Settlement, error) {
	var board [CommunityCards]poker.Card
	for i, c := range community {
		if c >= poker.DeckSize {
			return Settlement{}, fmt.Errorf("%w: community card %d is %d", ErrInvalidCard, i, c)
		}
		board[i] = poker.Card(c)
	}

	var ranks [MaxPlayers]poker.HandRank
	for seat := 0; seat < MaxPlayers; seat++ {
		if !active[seat] {
			continue
		}
		c0, c1 := hands[seat].Cards()
		if c0 >= poker.DeckSize || c1 >= poker.DeckSize {
			return Settlement{}, fmt.Errorf("%w: seat %d hole cards (%d, %d)", ErrInvalidCard, seat, c0, c1)
		}
		var seven [7]poker.Card
		seven[0] = poker.Card(c0)
		seven[1] = poker.Card(c1)
		copy(seven[2:], board[:])
		ranks[seat] = poker.Evaluate7(seven)
	}

	return SettlePots(bets[:], ranks[:], active[:], identities[:])
}
