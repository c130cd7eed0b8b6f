package circuit

import (
	"errors"
	"fmt"
	"sort"

	"github.com/stanleykosi/arcium-aces/poker"
)

// ErrLengthMismatch is returned when the settlement input slices disagree on
// seat count.
var ErrLengthMismatch = errors.New("input length mismatch")

// Identity is an opaque per-seat token. Settlement copies it to the output
// untouched; it never influences ranking or pot math.
type Identity [32]byte

// WinnerInfo is one seat's settlement outcome. Non-winners carry amount 0.
type WinnerInfo struct {
	Identity Identity
	Amount   uint64
}

// Settlement is the outcome of pot distribution across all tiers.
type Settlement struct {
	// Payouts has one entry per seat in seat order.
	Payouts []WinnerInfo

	// Undistributed collects tier pots that had no eligible winner. It
	// stays 0 whenever levels derive from active bets, since the seat that
	// defines a level is eligible for it; a nonzero value means the inputs
	// violated that precondition.
	Undistributed uint64
}

// Distributed returns the total amount paid out across all seats.
func (s Settlement) Distributed() uint64 {
	var sum uint64
	for _, p := range s.Payouts {
		sum += p.Amount
	}
	return sum
}

// TotalPot returns everything collected into tiers: payouts plus any
// undistributed remainder.
func (s Settlement) TotalPot() uint64 {
	return s.Distributed() + s.Undistributed
}

// SettlePots partitions bets into main and side pots by all-in tiers and
// pays each tier to its best eligible hand.
//
// The distinct bet amounts among active seats, ascending, are the pot
// levels. The tier between consecutive levels collects (cur - prev) from
// every seat whose bet reached cur. Folded seats pay too; their chips are
// dead money. Only active seats that reached a level can win its tier; ties
// split equally with the integer remainder paid to the lowest winning seat
// index, so the distributed total always equals the tier pot exactly.
func SettlePots(bets []uint64, ranks []poker.HandRank, active []bool, identities []Identity) (Settlement, error) {
	n := len(bets)
	if len(ranks) != n || len(active) != n || len(identities) != n {
		return Settlement{}, fmt.Errorf("%w: bets=%d ranks=%d active=%d identities=%d",
			ErrLengthMismatch, n, len(ranks), len(active), len(identities))
	}

	settlement := Settlement{Payouts: make([]WinnerInfo, n)}
	for i := range settlement.Payouts {
		settlement.Payouts[i].Identity = identities[i]
	}

	prev := uint64(0)
	for _, cur := range potLevels(bets, active) {
		increment := cur - prev

		var pot uint64
		for i := range bets {
			if bets[i] >= cur {
				pot += increment
			}
		}

		// Best rank among the seats eligible to win this tier.
		var best poker.HandRank
		haveBest := false
		for i := range bets {
			if active[i] && bets[i] >= cur && (!haveBest || ranks[i].Compare(best) > 0) {
				best = ranks[i]
				haveBest = true
			}
		}

		var winners []int
		if haveBest {
			for i := range bets {
				if active[i] && bets[i] >= cur && ranks[i].Compare(best) == 0 {
					winners = append(winners, i)
				}
			}
		}

		if len(winners) == 0 {
			settlement.Undistributed += pot
		} else {
			share := pot / uint64(len(winners))
			for _, w := range winners {
				settlement.Payouts[w].Amount += share
			}
			settlement.Payouts[winners[0]].Amount += pot % uint64(len(winners))
		}

		prev = cur
	}

	return settlement, nil
}

// potLevels returns the distinct non-zero bet amounts among active seats,
// ascending. Each is the ceiling of one pot tier, with 0 the implicit floor.
func potLevels(bets []uint64, active []bool) []uint64 {
	seen := make(map[uint64]bool)
	var levels []uint64
	for i, bet := range bets {
		if active[i] && bet > 0 && !seen[bet] {
			seen[bet] = true
			levels = append(levels, bet)
		}
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })
	return levels
}
