package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/stanleykosi/arcium-aces/internal/randutil"
	"github.com/stanleykosi/arcium-aces/poker"
)

type CLI struct {
	Hands         []string `arg:"" required:"" help:"Hole cards per player, e.g. 'AcKd' 'QhJs'"`
	Board         string   `short:"b" help:"Known community cards, e.g. 'Td7s8h'"`
	Possibilities bool     `short:"p" help:"Show per-hand category probabilities"`
	Iterations    int      `short:"i" default:"100000" help:"Number of showdown samples"`
	Seed          *int64   `help:"Random seed for reproducible runs"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("aces-odds"),
		kong.Description("Monte Carlo showdown equity for known hands"),
	)

	seed := time.Now().UnixNano()
	if cli.Seed != nil {
		seed = *cli.Seed
	}
	rng := randutil.New(seed)

	hands, err := parseHands(cli.Hands)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing hands: %v\n", err)
		ctx.Exit(1)
	}

	var board []poker.Card
	if cli.Board != "" {
		if board, err = poker.ParseCards(cli.Board); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing board: %v\n", err)
			ctx.Exit(1)
		}
	}

	started := time.Now()
	results, err := poker.SimulateShowdowns(hands, board, cli.Iterations, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}

	displayResults(results, board, cli.Possibilities, cli.Iterations, time.Since(started))
}

func parseHands(args []string) ([][2]poker.Card, error) {
	hands := make([][2]poker.Card, 0, len(args))
	for i, arg := range args {
		cards, err := poker.ParseCards(arg)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		if len(cards) != 2 {
			return nil, fmt.Errorf("hand %d: must contain exactly 2 cards, got %d", i+1, len(cards))
		}
		hands = append(hands, [2]poker.Card{cards[0], cards[1]})
	}
	return hands, nil
}

func displayResults(results []poker.EquityResult, board []poker.Card, showPossibilities bool, iterations int, duration time.Duration) {
	if len(board) > 0 {
		fmt.Printf("%s\n", headerStyle.Render("board"))
		fmt.Printf("%s\n\n", poker.FormatCards(board))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("class"),
		headerStyle.Render("win"),
		headerStyle.Render("tie"),
		headerStyle.Render("margin"))

	for _, r := range results {
		class := poker.CategorizeHoleCards(r.Hand[0], r.Hand[1])
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			handStyle.Render(poker.FormatCards(r.Hand[:])),
			categoryStyle.Render(string(class)),
			winStyle.Render(fmt.Sprintf("%.1f%%", r.WinRate()*100)),
			tieStyle.Render(fmt.Sprintf("%.1f%%", r.TieRate()*100)),
			percentStyle.Render(fmt.Sprintf("±%.1f%%", r.MarginOfError95()*100)))
	}
	w.Flush()

	if showPossibilities {
		fmt.Printf("\n")
		displayPossibilities(results)
	}

	fmt.Printf("\n%d iterations in %v\n", iterations, duration.Truncate(time.Millisecond))
}

func displayPossibilities(results []poker.EquityResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s", categoryStyle.Render("hand"))
	for _, r := range results {
		fmt.Fprintf(w, "\t%s", handStyle.Render(poker.FormatCards(r.Hand[:])))
	}
	fmt.Fprintf(w, "\n")

	// Strongest category first; NoHand never occurs on a full board.
	for cat := poker.NumCategories - 1; cat >= 1; cat-- {
		made := false
		for _, r := range results {
			if r.Categories[cat] > 0 {
				made = true
				break
			}
		}
		if !made {
			continue
		}

		fmt.Fprintf(w, "%s", categoryStyle.Render(poker.Category(cat).String()))
		for _, r := range results {
			if n := r.Categories[cat]; n > 0 {
				pct := float64(n) / float64(r.Samples) * 100
				fmt.Fprintf(w, "\t%s", percentStyle.Render(fmt.Sprintf("%.1f%%", pct)))
			} else {
				fmt.Fprintf(w, "\t%s", percentStyle.Render("."))
			}
		}
		fmt.Fprintf(w, "\n")
	}
	w.Flush()
}
