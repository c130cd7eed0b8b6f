package main

import (
	"fmt"
	"strings"

	"github.com/stanleykosi/arcium-aces/circuit"
)

// RevealCmd burns the card at the cursor and reveals the cards after it.
// Run it three times per hand: at the deal cursor for the flop, 4 past it
// for the turn, 6 past it for the river.
type RevealCmd struct {
	Deck   string `arg:"" help:"Packed deck, three colon-separated hex words"`
	Cursor uint8  `required:"" help:"Burn position"`
	Count  uint8  `default:"3" help:"Cards to reveal after the burn, 1 to 3"`
}

func (c *RevealCmd) Run() error {
	deck, err := circuit.ParsePackedDeck(c.Deck)
	if err != nil {
		return err
	}

	revealed, rest, err := circuit.RevealCommunityCards(deck, c.Cursor, c.Count)
	if err != nil {
		return err
	}

	cards := make([]string, 0, circuit.MaxReveal)
	for i := uint8(0); i < c.Count && i < circuit.MaxReveal; i++ {
		cards = append(cards, cardStyle.Render(formatSlot(revealed[i])))
	}
	fmt.Printf("%s  %s\n", labelStyle.Render("revealed"), strings.Join(cards, " "))
	fmt.Printf("%s  %s\n", labelStyle.Render("deck"), rest)
	return nil
}
