// Package sim replays full hands through the confidential pipeline and
// audits the outputs: commitments must open, no card may surface twice and
// every chip must land where the pot math says it lands.
package sim

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/stanleykosi/arcium-aces/circuit"
	"github.com/stanleykosi/arcium-aces/internal/handid"
	"github.com/stanleykosi/arcium-aces/internal/phh"
	"github.com/stanleykosi/arcium-aces/internal/randutil"
	"github.com/stanleykosi/arcium-aces/internal/scenario"
	"github.com/stanleykosi/arcium-aces/poker"
)

// Recorder consumes settled hands as hand history records. Run delivers
// hands sequentially in seed order, so implementations need not be safe for
// concurrent use by a single Runner.
type Recorder interface {
	Record(*phh.Hand) error
}

// Config holds one table run.
type Config struct {
	Table scenario.Table

	// Seed is the master seed; every hand seed derives from it, so equal
	// seeds replay equal runs.
	Seed int64

	// Workers caps concurrent hands. Defaults to NumCPU.
	Workers int

	// Recorder, when set, receives every settled hand.
	Recorder Recorder

	Logger *log.Logger
}

// Runner plays the configured table.
type Runner struct {
	config Config
}

// New returns a Runner with config defaults applied.
func New(config Config) *Runner {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Runner{config: config}
}

// HandResult is one settled and audited hand.
type HandResult struct {
	ID    string
	Seed  int64
	Board [circuit.CommunityCards]uint8
	Pot   uint64

	// Hole holds every seat's dealt hand, the dummy hand for inactive
	// seats.
	Hole [circuit.MaxPlayers]circuit.PackedHand

	// Payouts is each seat's settled amount in seat order.
	Payouts [circuit.MaxPlayers]uint64

	// Winners lists the seats that received chips, main pot or side pot.
	Winners []int

	// BestRank is the strongest hand shown down.
	BestRank poker.HandRank
}

// Stats aggregates settled hands for one table run.
type Stats struct {
	Hands        int
	HandsWithPot int
	SplitPots    int
	TotalPot     uint64
	SeatWins     [circuit.MaxPlayers]int
	BestRanks    [poker.NumCategories]int
}

func (s *Stats) add(r *HandResult) {
	s.Hands++
	s.TotalPot += r.Pot
	if r.Pot > 0 {
		s.HandsWithPot++
	}
	if len(r.Winners) > 1 {
		s.SplitPots++
	}
	for _, seat := range r.Winners {
		s.SeatWins[seat]++
	}
	s.BestRanks[r.BestRank.Category]++
}

// Validate cross-checks the aggregate invariants after a run.
func (s *Stats) Validate() error {
	if s.Hands == 0 {
		return fmt.Errorf("no hands were played")
	}
	paid := 0
	for _, wins := range s.SeatWins {
		paid += wins
	}
	if paid < s.HandsWithPot {
		return fmt.Errorf("%d hands carried a pot but only %d payouts happened", s.HandsWithPot, paid)
	}
	ranked := 0
	for _, n := range s.BestRanks {
		ranked += n
	}
	if ranked != s.Hands {
		return fmt.Errorf("ranked %d hands of %d", ranked, s.Hands)
	}
	if s.BestRanks[poker.NoHand] != 0 {
		return fmt.Errorf("%d hands settled without a ranked winner", s.BestRanks[poker.NoHand])
	}
	return nil
}

// Run plays every hand for the configured table and merges the audited
// results. Hand seeds are all drawn before any hand starts, so runs are
// reproducible no matter how the goroutines interleave.
func (r *Runner) Run(ctx context.Context) (*Stats, error) {
	table := r.config.Table
	if err := table.Validate(); err != nil {
		return nil, err
	}

	rng := randutil.New(r.config.Seed)
	seeds := make([]int64, table.Hands)
	for i := range seeds {
		seeds[i] = rng.Int64()
	}

	results := make([]HandResult, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.Workers)
	for i := range seeds {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			result, err := r.playHand(seeds[i])
			if err != nil {
				return fmt.Errorf("hand %d (seed %d): %w", i, seeds[i], err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &Stats{}
	for i := range results {
		stats.add(&results[i])
		if r.config.Recorder != nil {
			if err := r.config.Recorder.Record(handRecord(&table, &results[i])); err != nil {
				return nil, fmt.Errorf("record hand %s: %w", results[i].ID, err)
			}
		}
		r.config.Logger.Debug("hand settled",
			"id", results[i].ID,
			"seed", results[i].Seed,
			"pot", results[i].Pot,
			"winners", results[i].Winners,
			"best", results[i].BestRank.String())
	}
	if err := stats.Validate(); err != nil {
		return nil, err
	}
	return stats, nil
}

// playHand runs deal, the three reveals and showdown for one seed, auditing
// every stage.
func (r *Runner) playHand(seed int64) (HandResult, error) {
	table := &r.config.Table
	active := table.Active()
	bets := table.Bets()
	identities := table.Identities()

	dealer := circuit.NewDealer(circuit.WithShuffler(circuit.NewSeededShuffler(seed)))
	deal, err := dealer.ShuffleAndDeal(active)
	if err != nil {
		return HandResult{}, err
	}
	if !circuit.VerifyCommitment(deal.Commitment, deal.CommitmentKey, deal.Deck) {
		return HandResult{}, fmt.Errorf("commitment does not open")
	}

	cursor := deal.CardsDealt
	flop, deck, err := circuit.RevealCommunityCards(deal.Deck, cursor, 3)
	if err != nil {
		return HandResult{}, err
	}
	turn, deck, err := circuit.RevealCommunityCards(deck, cursor+4, 1)
	if err != nil {
		return HandResult{}, err
	}
	river, _, err := circuit.RevealCommunityCards(deck, cursor+6, 1)
	if err != nil {
		return HandResult{}, err
	}
	board := [circuit.CommunityCards]uint8{flop[0], flop[1], flop[2], turn[0], river[0]}

	if err := auditBoard(deal, board, active); err != nil {
		return HandResult{}, err
	}

	settlement, err := circuit.EvaluateHandsAndPayout(deal.Hands, board, bets, active, identities)
	if err != nil {
		return HandResult{}, err
	}
	if err := auditSettlement(settlement, bets, active); err != nil {
		return HandResult{}, err
	}

	id, err := handid.Generate()
	if err != nil {
		return HandResult{}, err
	}

	result := HandResult{
		ID:    id,
		Seed:  seed,
		Board: board,
		Pot:   settlement.TotalPot(),
		Hole:  deal.Hands,
	}
	for seat, p := range settlement.Payouts {
		result.Payouts[seat] = p.Amount
		if p.Amount > 0 {
			result.Winners = append(result.Winners, seat)
		}
	}
	for seat := 0; seat < circuit.MaxPlayers; seat++ {
		if !active[seat] {
			continue
		}
		c0, c1 := deal.Hands[seat].Cards()
		var seven [7]poker.Card
		seven[0], seven[1] = poker.Card(c0), poker.Card(c1)
		for i, c := range board {
			seven[2+i] = poker.Card(c)
		}
		if rank := poker.Evaluate7(seven); rank.Compare(result.BestRank) > 0 {
			result.BestRank = rank
		}
	}

	return result, nil
}

// auditBoard re-derives the public outputs: five real board cards, no
// duplicates and no overlap with any dealt hole card.
func auditBoard(deal *circuit.Deal, board [circuit.CommunityCards]uint8, active [circuit.MaxPlayers]bool) error {
	var seen [poker.DeckSize]bool
	for seat := 0; seat < circuit.MaxPlayers; seat++ {
		if !active[seat] {
			continue
		}
		c0, c1 := deal.Hands[seat].Cards()
		for _, c := range []uint8{c0, c1} {
			if c >= poker.DeckSize {
				return fmt.Errorf("seat %d dealt %d, which is not a card", seat, c)
			}
			if seen[c] {
				return fmt.Errorf("card %d dealt twice", c)
			}
			seen[c] = true
		}
	}
	for i, c := range board {
		if c >= poker.DeckSize {
			return fmt.Errorf("board slot %d holds %d, which is not a card", i, c)
		}
		if seen[c] {
			return fmt.Errorf("card %d surfaced twice", c)
		}
		seen[c] = true
	}
	return nil
}

// auditSettlement checks chip conservation: the distributed total must equal
// the independently derived pot, nothing may remain undistributed and only
// live seats may be paid.
func auditSettlement(settlement circuit.Settlement, bets [circuit.MaxPlayers]uint64, active [circuit.MaxPlayers]bool) error {
	if settlement.Undistributed != 0 {
		return fmt.Errorf("%d chips left undistributed", settlement.Undistributed)
	}
	if got, want := settlement.Distributed(), collectedPot(bets, active); got != want {
		return fmt.Errorf("distributed %d chips, pot holds %d", got, want)
	}
	for seat, p := range settlement.Payouts {
		if p.Amount > 0 && !active[seat] {
			return fmt.Errorf("folded seat %d was paid %d", seat, p.Amount)
		}
	}
	return nil
}

// collectedPot derives the pot total without iterating tiers: each seat
// contributes its bet truncated down to the highest live bet level it
// reached. The tier sums telescope to exactly this.
func collectedPot(bets [circuit.MaxPlayers]uint64, active [circuit.MaxPlayers]bool) uint64 {
	var total uint64
	for i := range bets {
		var contribution uint64
		for j := range bets {
			if active[j] && bets[j] <= bets[i] && bets[j] > contribution {
				contribution = bets[j]
			}
		}
		total += contribution
	}
	return total
}

// RunScenario plays every table in the config and returns stats keyed by
// table name. base carries the run-wide settings; its Table is ignored and
// its Seed is the fallback for tables without their own.
func RunScenario(ctx context.Context, config *scenario.Config, base Config) (map[string]*Stats, error) {
	results := make(map[string]*Stats, len(config.Tables))
	for i := range config.Tables {
		run := base
		run.Table = config.Tables[i]
		if run.Table.Seed != 0 {
			run.Seed = run.Table.Seed
		}
		stats, err := New(run).Run(ctx)
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", run.Table.Name, err)
		}
		results[run.Table.Name] = stats
	}
	return results, nil
}
