package poker

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/stanleykosi/arcium-aces/internal/randutil"
)

// CardSet is a 52-bit set of cards keyed by card index
type CardSet uint64

// Add adds a card to the set
func (cs *CardSet) Add(c Card) {
	*cs |= 1 << uint(c)
}

// Contains reports whether the card is in the set
func (cs CardSet) Contains(c Card) bool {
	return cs&(1<<uint(c)) != 0
}

// NewCardSet creates a CardSet from a slice of cards
func NewCardSet(cards []Card) CardSet {
	var cs CardSet
	for _, c := range cards {
		cs.Add(c)
	}
	return cs
}

// EquityResult accumulates showdown outcomes for one hand across a
// simulation run. Ties counts showdowns the hand split with at least one
// other; Categories counts the hand category made on each sampled board.
type EquityResult struct {
	Hand       [2]Card
	Wins       int
	Ties       int
	Samples    int
	Categories [NumCategories]int
}

// WinRate returns the fraction of samples this hand won outright
func (r EquityResult) WinRate() float64 {
	if r.Samples == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Samples)
}

// TieRate returns the fraction of samples this hand tied
func (r EquityResult) TieRate() float64 {
	if r.Samples == 0 {
		return 0
	}
	return float64(r.Ties) / float64(r.Samples)
}

// MarginOfError95 returns the 95% confidence half-width of the win rate
// under the normal approximation to binomial sampling error.
func (r EquityResult) MarginOfError95() float64 {
	if r.Samples == 0 {
		return 0
	}
	p := r.WinRate()
	return 1.96 * math.Sqrt(p*(1-p)/float64(r.Samples))
}

// Simulation runs are sharded into a fixed number of independently seeded
// workers so a given seed produces the same totals on any machine.
const (
	equityShards     = 8
	sequentialCutoff = 500
)

// SimulateShowdowns estimates showdown equity for two or more known hands by
// dealing random board completions and evaluating every hand on each. The
// board may hold 0 to 5 known community cards. The rng drives all sampling,
// so runs with the same seed are reproducible.
func SimulateShowdowns(hands [][2]Card, board []Card, iterations int, rng *rand.Rand) ([]EquityResult, error) {
	if len(hands) < 2 {
		return nil, fmt.Errorf("need at least 2 hands, got %d", len(hands))
	}
	if len(board) > 5 {
		return nil, fmt.Errorf("board cannot have more than 5 cards, got %d", len(board))
	}
	if iterations < 1 {
		return nil, fmt.Errorf("iterations must be positive, got %d", iterations)
	}

	var used CardSet
	for _, c := range board {
		if !c.Valid() {
			return nil, fmt.Errorf("invalid board card %s", c)
		}
		if used.Contains(c) {
			return nil, fmt.Errorf("duplicate card %s", c)
		}
		used.Add(c)
	}
	for i, hand := range hands {
		for _, c := range hand {
			if !c.Valid() {
				return nil, fmt.Errorf("hand %d: invalid card %s", i+1, c)
			}
			if used.Contains(c) {
				return nil, fmt.Errorf("hand %d: duplicate card %s", i+1, c)
			}
			used.Add(c)
		}
	}

	available := make([]Card, 0, DeckSize)
	for _, c := range AllCards() {
		if !used.Contains(c) {
			available = append(available, c)
		}
	}
	if needed := 5 - len(board); len(available) < needed {
		return nil, fmt.Errorf("not enough undealt cards to complete the board")
	}

	var tallies []EquityResult
	if iterations < sequentialCutoff {
		tallies = runShowdownShard(hands, board, available, iterations, rng)
	} else {
		var err error
		tallies, err = simulateParallel(hands, board, available, iterations, rng)
		if err != nil {
			return nil, err
		}
	}

	results := make([]EquityResult, len(hands))
	for i := range results {
		results[i] = tallies[i]
		results[i].Hand = hands[i]
	}
	return results, nil
}

func simulateParallel(hands [][2]Card, board, available []Card, iterations int, rng *rand.Rand) ([]EquityResult, error) {
	perShard := iterations / equityShards
	remainder := iterations % equityShards

	// Shard seeds come off the caller's rng in a fixed order before any
	// worker starts, keeping the run reproducible regardless of scheduling.
	seeds := make([]int64, equityShards)
	for i := range seeds {
		seeds[i] = rng.Int64()
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.NumCPU())
	shardTallies := make([][]EquityResult, equityShards)

	for w := 0; w < equityShards; w++ {
		shardIterations := perShard
		if w < remainder {
			shardIterations++
		}
		if shardIterations == 0 {
			continue
		}
		seed := seeds[w]
		g.Go(func() error {
			shardRng := randutil.New(seed)
			shardTallies[w] = runShowdownShard(hands, board, available, shardIterations, shardRng)
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return nil
			}
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	totals := make([]EquityResult, len(hands))
	for _, shard := range shardTallies {
		for i, t := range shard {
			totals[i].Wins += t.Wins
			totals[i].Ties += t.Ties
			totals[i].Samples += t.Samples
			for c, n := range t.Categories {
				totals[i].Categories[c] += n
			}
		}
	}
	return totals, nil
}

func runShowdownShard(hands [][2]Card, board, available []Card, iterations int, rng *rand.Rand) []EquityResult {
	tallies := make([]EquityResult, len(hands))
	ranks := make([]HandRank, len(hands))
	scratch := make([]Card, len(available))
	needed := 5 - len(board)

	var fullBoard [5]Card
	copy(fullBoard[:], board)

	for iter := 0; iter < iterations; iter++ {
		// Partial Fisher-Yates: only the first `needed` slots get shuffled.
		copy(scratch, available)
		for i := 0; i < needed; i++ {
			j := i + rng.IntN(len(scratch)-i)
			scratch[i], scratch[j] = scratch[j], scratch[i]
			fullBoard[len(board)+i] = scratch[i]
		}

		for i, hand := range hands {
			var seven [7]Card
			seven[0], seven[1] = hand[0], hand[1]
			copy(seven[2:], fullBoard[:])
			ranks[i] = Evaluate7(seven)
			tallies[i].Categories[ranks[i].Category]++
			tallies[i].Samples++
		}

		best := ranks[0]
		for _, r := range ranks[1:] {
			if r.Compare(best) > 0 {
				best = r
			}
		}
		winners := 0
		for _, r := range ranks {
			if r.Compare(best) == 0 {
				winners++
			}
		}
		for i, r := range ranks {
			if r.Compare(best) == 0 {
				if winners == 1 {
					tallies[i].Wins++
				} else {
					tallies[i].Ties++
				}
			}
		}
	}
	return tallies
}
