package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/stanleykosi/arcium-aces/circuit"
	"github.com/stanleykosi/arcium-aces/internal/scenario"
	"github.com/stanleykosi/arcium-aces/poker"
)

// ShowdownCmd settles one scenario table: ranks every live hand against the
// board and pays out main and side pots.
type ShowdownCmd struct {
	Scenario string `arg:"" type:"existingfile" help:"Scenario file (HCL)"`
	Table    string `help:"Table to settle (defaults to the scenario's only table)"`
	Board    string `help:"Override the table's board, e.g. '2c 7d Jh Js 9c'"`
	Debug    bool   `help:"Enable debug logging"`
}

func (c *ShowdownCmd) Run() error {
	logger := setupLogger(c.Debug)

	config, err := scenario.Load(c.Scenario)
	if err != nil {
		return err
	}
	table, err := pickTable(config, c.Table)
	if err != nil {
		return err
	}
	if c.Board != "" {
		table.Board = c.Board
	}

	hands, board, err := table.Showdown()
	if err != nil {
		return err
	}

	bets := table.Bets()
	active := table.Active()
	settlement, err := circuit.EvaluateHandsAndPayout(hands, board, bets, active, table.Identities())
	if err != nil {
		return err
	}
	logger.Debug("settled", "table", table.Name, "pot", settlement.TotalPot())

	boardCards := make([]poker.Card, len(board))
	for i, b := range board {
		boardCards[i] = poker.Card(b)
	}
	fmt.Println(headerStyle.Render("board"))
	fmt.Printf("%s\n\n", cardStyle.Render(poker.FormatCards(boardCards)))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("seat"),
		headerStyle.Render("cards"),
		headerStyle.Render("hand"),
		headerStyle.Render("bet"),
		headerStyle.Render("payout"))
	for i, seat := range table.Seats {
		if !active[i] {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
				labelStyle.Render(seat.Name),
				mutedStyle.Render("folded"),
				mutedStyle.Render("-"),
				seat.Bet, 0)
			continue
		}
		c0, c1 := hands[i].Cards()
		fmt.Fprintf(w, "%s\t%s %s\t%s\t%d\t%s\n",
			labelStyle.Render(seat.Name),
			cardStyle.Render(formatSlot(c0)),
			cardStyle.Render(formatSlot(c1)),
			rankFor(hands[i], board),
			seat.Bet,
			amountStyle.Render(fmt.Sprintf("%d", settlement.Payouts[i].Amount)))
	}
	w.Flush()

	fmt.Printf("\n%s  %s\n", labelStyle.Render("pot"),
		amountStyle.Render(fmt.Sprintf("%d", settlement.TotalPot())))
	if settlement.Undistributed != 0 {
		fmt.Printf("%s  %d\n", mutedStyle.Render("undistributed"), settlement.Undistributed)
	}
	return nil
}

func rankFor(hand circuit.PackedHand, board [circuit.CommunityCards]uint8) poker.HandRank {
	c0, c1 := hand.Cards()
	var seven [7]poker.Card
	seven[0], seven[1] = poker.Card(c0), poker.Card(c1)
	for i, b := range board {
		seven[2+i] = poker.Card(b)
	}
	return poker.Evaluate7(seven)
}

func pickTable(config *scenario.Config, name string) (*scenario.Table, error) {
	if name == "" {
		if len(config.Tables) == 1 {
			return &config.Tables[0], nil
		}
		return nil, fmt.Errorf("scenario holds %d tables, pick one with --table", len(config.Tables))
	}
	table := config.GetTable(name)
	if table == nil {
		return nil, fmt.Errorf("no table %q in scenario", name)
	}
	return table, nil
}
