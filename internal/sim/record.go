package sim

import (
	"fmt"

	"github.com/stanleykosi/arcium-aces/internal/phh"
	"github.com/stanleykosi/arcium-aces/internal/scenario"
	"github.com/stanleykosi/arcium-aces/poker"
)

// handRecord renders one settled hand as a hand history record. Scenario
// wagers are fixed before the deal, so the record synthesizes one betting
// round that reproduces them: a seat raises to its bet when it exceeds the
// running high, otherwise checks or calls, and folded seats fold once the
// round closes. Folded hole cards never left the confidential deal and stay
// unknown in the record.
func handRecord(table *scenario.Table, result *HandResult) *phh.Hand {
	n := len(table.Seats)
	hand := &phh.Hand{
		Variant:           "NT",
		Antes:             make([]uint64, n),
		BlindsOrStraddles: make([]uint64, n),
		StartingStacks:    make([]uint64, n),
		Players:           make([]string, n),
		Winnings:          make([]uint64, n),
		ID:                result.ID,
	}
	for i, seat := range table.Seats {
		hand.StartingStacks[i] = seat.Bet
		hand.Players[i] = seat.Name
		hand.Winnings[i] = result.Payouts[i]
	}

	for i, seat := range table.Seats {
		if seat.Folded {
			hand.Actions = append(hand.Actions, fmt.Sprintf("d dh p%d %s", i+1, phh.UnknownHole))
			continue
		}
		hand.Actions = append(hand.Actions, fmt.Sprintf("d dh p%d %s", i+1, holeCards(result, i)))
	}

	var high uint64
	for i, seat := range table.Seats {
		if seat.Bet > high {
			hand.Actions = append(hand.Actions, fmt.Sprintf("p%d cbr %d", i+1, seat.Bet))
			high = seat.Bet
		} else {
			hand.Actions = append(hand.Actions, fmt.Sprintf("p%d cc", i+1))
		}
	}
	for i, seat := range table.Seats {
		if seat.Folded {
			hand.Actions = append(hand.Actions, fmt.Sprintf("p%d f", i+1))
		}
	}

	flop := boardCards(result, 0, 3)
	turn := boardCards(result, 3, 4)
	river := boardCards(result, 4, 5)
	hand.Actions = append(hand.Actions, "d db "+flop, "d db "+turn, "d db "+river)

	for i, seat := range table.Seats {
		if seat.Folded {
			continue
		}
		hand.Actions = append(hand.Actions, fmt.Sprintf("p%d sm %s", i+1, holeCards(result, i)))
	}

	return hand
}

func holeCards(result *HandResult, seat int) string {
	c0, c1 := result.Hole[seat].Cards()
	return phh.Cards(poker.Card(c0), poker.Card(c1))
}

func boardCards(result *HandResult, from, to int) string {
	cards := make([]poker.Card, 0, to-from)
	for _, c := range result.Board[from:to] {
		cards = append(cards, poker.Card(c))
	}
	return phh.Cards(cards...)
}
