package main

import (
	"fmt"

	"github.com/stanleykosi/arcium-aces/circuit"
)

// VerifyCmd opens a deck commitment with its escrowed key. A mismatch means
// the published deck is not the one committed to at deal time.
type VerifyCmd struct {
	Deck       string `arg:"" help:"Packed deck, three colon-separated hex words"`
	Commitment string `required:"" help:"Commitment digest (hex)"`
	Key        string `required:"" help:"Escrowed commitment key (hex)"`
}

func (c *VerifyCmd) Run() error {
	deck, err := circuit.ParsePackedDeck(c.Deck)
	if err != nil {
		return err
	}
	commitment, err := parseDigest(c.Commitment)
	if err != nil {
		return fmt.Errorf("commitment: %w", err)
	}
	key, err := parseDigest(c.Key)
	if err != nil {
		return fmt.Errorf("key: %w", err)
	}

	if !circuit.VerifyCommitment(commitment, key, deck) {
		return fmt.Errorf("commitment does not open for this deck and key")
	}
	fmt.Println(amountStyle.Render("commitment opens"))
	return nil
}
