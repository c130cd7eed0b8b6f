// Package phh renders settled hands in the poker hand history format, a
// TOML dialect understood by common replay tooling. A .phhs file carries
// many hands, each under a numbered section.
package phh

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/stanleykosi/arcium-aces/poker"
)

// UnknownHole stands in for hole cards that never left the confidential
// deal, the format's notation for cards nobody saw.
const UnknownHole = "????"

// Hand is one recorded hand. Fields emit in declaration order, which is the
// order replay tools expect.
type Hand struct {
	Variant           string   `toml:"variant"`
	Antes             []uint64 `toml:"antes"`
	BlindsOrStraddles []uint64 `toml:"blinds_or_straddles"`
	MinBet            uint64   `toml:"min_bet"`
	StartingStacks    []uint64 `toml:"starting_stacks"`
	Actions           []string `toml:"actions"`
	Players           []string `toml:"players,omitempty"`
	Winnings          []uint64 `toml:"winnings,omitempty"`
	ID                string   `toml:"hand,omitempty"`
}

// Cards concatenates cards in hand history notation, e.g. "AhKd".
func Cards(cards ...poker.Card) string {
	var sb strings.Builder
	for _, c := range cards {
		sb.WriteString(c.String())
	}
	return sb.String()
}

// Encode writes one hand as TOML.
func Encode(w io.Writer, hand *Hand) error {
	if hand == nil {
		return fmt.Errorf("phh: nil hand")
	}
	return toml.NewEncoder(w).Encode(hand)
}
