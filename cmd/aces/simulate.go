package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/stanleykosi/arcium-aces/internal/phh"
	"github.com/stanleykosi/arcium-aces/internal/scenario"
	"github.com/stanleykosi/arcium-aces/internal/sim"
	"github.com/stanleykosi/arcium-aces/poker"
)

// SimulateCmd replays fully audited hands against a scenario file: every
// deal must reopen its commitment, no card may surface twice and every
// settlement must conserve chips.
type SimulateCmd struct {
	Scenario string `arg:"" type:"existingfile" help:"Scenario file (HCL)"`
	Table    string `help:"Run only this table"`
	Seed     *int64 `help:"Master seed (defaults to the current time)"`
	Workers  int    `help:"Concurrent hands per table (defaults to all CPUs)"`
	Record   string `help:"Write hand history records to this .phhs file"`
	Debug    bool   `help:"Enable debug logging"`
}

func (c *SimulateCmd) Run() error {
	logger := setupLogger(c.Debug)

	config, err := scenario.Load(c.Scenario)
	if err != nil {
		return err
	}
	if c.Table != "" {
		table := config.GetTable(c.Table)
		if table == nil {
			return fmt.Errorf("no table %q in scenario", c.Table)
		}
		config = &scenario.Config{Tables: []scenario.Table{*table}}
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}

	base := sim.Config{Seed: seed, Workers: c.Workers, Logger: logger}
	var writer *phh.Writer
	if c.Record != "" {
		if writer, err = phh.NewWriter(c.Record); err != nil {
			return err
		}
		base.Recorder = writer
	}

	logger.Info("starting run", "tables", len(config.Tables), "seed", seed)
	started := time.Now()
	results, err := sim.RunScenario(context.Background(), config, base)
	if err != nil {
		return err
	}
	elapsed := time.Since(started)

	total := 0
	for i := range config.Tables {
		table := &config.Tables[i]
		printTableStats(table, results[table.Name])
		total += results[table.Name].Hands
	}

	fmt.Printf("%d hands in %v", total, elapsed.Truncate(time.Millisecond))
	if secs := elapsed.Seconds(); secs > 0 {
		fmt.Printf(" (%.0f hands/sec)", float64(total)/secs)
	}
	fmt.Println()

	if writer != nil {
		if err := writer.Flush(); err != nil {
			return err
		}
		logger.Info("wrote hand history", "path", c.Record, "hands", writer.Len())
	}
	return nil
}

func printTableStats(table *scenario.Table, stats *sim.Stats) {
	fmt.Println(headerStyle.Render(table.Name))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%d\n", labelStyle.Render("hands"), stats.Hands)
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("chips settled"),
		amountStyle.Render(fmt.Sprintf("%d", stats.TotalPot)))
	fmt.Fprintf(w, "%s\t%d\n", labelStyle.Render("split pots"), stats.SplitPots)
	for i, seat := range table.Seats {
		wins := stats.SeatWins[i]
		fmt.Fprintf(w, "%s\t%d (%.1f%%)\n",
			labelStyle.Render(seat.Name+" wins"),
			wins, float64(wins)/float64(stats.Hands)*100)
	}
	w.Flush()
	fmt.Println()

	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for cat := poker.NumCategories - 1; cat >= 0; cat-- {
		n := stats.BestRanks[cat]
		if n == 0 {
			continue
		}
		fmt.Fprintf(w, "%s\t%.1f%%\n",
			mutedStyle.Render(poker.Category(cat).String()),
			float64(n)/float64(stats.Hands)*100)
	}
	w.Flush()
	fmt.Println()
}
