// Package scenario loads table descriptions from HCL files for the showdown
// tooling and the simulator.
package scenario

import (
	"crypto/sha256"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/stanleykosi/arcium-aces/circuit"
	"github.com/stanleykosi/arcium-aces/poker"
)

// Config is the root of a scenario file: one or more named tables.
type Config struct {
	Tables []Table `hcl:"table,block"`
}

// Table describes one table to deal: who is seated, what they wagered and
// whether they folded before showdown.
type Table struct {
	Name string `hcl:"name,label"`

	// Seed drives the deterministic shuffler. 0 means draw a fresh seed
	// at run time.
	Seed int64 `hcl:"seed,optional"`

	// Hands is how many hands to run on this table. Defaults to 1.
	Hands int `hcl:"hands,optional"`

	// Board is the five community cards, e.g. "2c 7d Jh Js 9c". Only
	// showdown settlement reads it; the simulator deals its own boards.
	Board string `hcl:"board,optional"`

	Seats []Seat `hcl:"seat,block"`
}

// Seat is one seated player. The label is the player name; the seat's
// settlement identity derives from it.
type Seat struct {
	Name   string `hcl:"name,label"`
	Bet    uint64 `hcl:"bet,optional"`
	Folded bool   `hcl:"folded,optional"`

	// Cards is the seat's two hole cards, e.g. "AhKd". Like Board it only
	// feeds showdown settlement.
	Cards string `hcl:"cards,optional"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %s", path, diags.Error())
	}
	return decode(file)
}

// Parse decodes scenario source held in memory. filename only labels
// diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %s", filename, diags.Error())
	}
	return decode(file)
}

func decode(file *hcl.File) (*Config, error) {
	var config Config
	if diags := gohcl.DecodeBody(file.Body, nil, &config); diags.HasErrors() {
		return nil, fmt.Errorf("decode scenario: %s", diags.Error())
	}

	for i := range config.Tables {
		if config.Tables[i].Hands == 0 {
			config.Tables[i].Hands = 1
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the whole config.
func (c *Config) Validate() error {
	if len(c.Tables) == 0 {
		return fmt.Errorf("at least one table must be configured")
	}
	names := make(map[string]bool)
	for i := range c.Tables {
		t := &c.Tables[i]
		if names[t.Name] {
			return fmt.Errorf("duplicate table %q", t.Name)
		}
		names[t.Name] = true
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks seat count, liveness and name uniqueness for one table.
func (t *Table) Validate() error {
	if len(t.Seats) < 2 || len(t.Seats) > circuit.MaxPlayers {
		return fmt.Errorf("table %s: need 2 to %d seats, got %d", t.Name, circuit.MaxPlayers, len(t.Seats))
	}
	if t.Hands < 1 {
		return fmt.Errorf("table %s: hands must be positive, got %d", t.Name, t.Hands)
	}

	live := 0
	seen := make(map[string]bool)
	for _, seat := range t.Seats {
		if seat.Name == "" {
			return fmt.Errorf("table %s: seat names must not be empty", t.Name)
		}
		if seen[seat.Name] {
			return fmt.Errorf("table %s: duplicate seat %q", t.Name, seat.Name)
		}
		seen[seat.Name] = true
		if !seat.Folded {
			live++
		}
	}
	if live < 2 {
		return fmt.Errorf("table %s: need at least 2 live seats, got %d", t.Name, live)
	}
	return nil
}

// Active returns the per-seat liveness mask, padded to the full table width.
func (t *Table) Active() [circuit.MaxPlayers]bool {
	var active [circuit.MaxPlayers]bool
	for i, seat := range t.Seats {
		active[i] = !seat.Folded
	}
	return active
}

// Bets returns the per-seat wagers, padded to the full table width.
func (t *Table) Bets() [circuit.MaxPlayers]uint64 {
	var bets [circuit.MaxPlayers]uint64
	for i, seat := range t.Seats {
		bets[i] = seat.Bet
	}
	return bets
}

// Identities returns each seat's settlement identity, the SHA-256 of its
// player name. Unoccupied seats keep the zero identity.
func (t *Table) Identities() [circuit.MaxPlayers]circuit.Identity {
	var ids [circuit.MaxPlayers]circuit.Identity
	for i, seat := range t.Seats {
		ids[i] = circuit.Identity(sha256.Sum256([]byte(seat.Name)))
	}
	return ids
}

// Showdown assembles the packed settlement inputs from the configured
// cards. Every live seat needs exactly two hole cards and the table needs a
// five-card board; no card may appear twice anywhere on the table. Folded
// seats keep the dummy hand whether or not their cards are listed.
//
// Card fields are not part of Validate because only showdown settlement
// consumes them; the simulator runs the same tables without any.
func (t *Table) Showdown() ([circuit.MaxPlayers]circuit.PackedHand, [circuit.CommunityCards]uint8, error) {
	var hands [circuit.MaxPlayers]circuit.PackedHand
	var board [circuit.CommunityCards]uint8
	for i := range hands {
		hands[i] = circuit.DummyHand
	}

	if t.Board == "" {
		return hands, board, fmt.Errorf("table %s: no board configured", t.Name)
	}
	boardCards, err := poker.ParseCards(t.Board)
	if err != nil {
		return hands, board, fmt.Errorf("table %s: board: %w", t.Name, err)
	}
	if len(boardCards) != circuit.CommunityCards {
		return hands, board, fmt.Errorf("table %s: board needs %d cards, got %d",
			t.Name, circuit.CommunityCards, len(boardCards))
	}

	owners := make(map[poker.Card]string, poker.DeckSize)
	claim := func(c poker.Card, owner string) error {
		if prev, ok := owners[c]; ok {
			return fmt.Errorf("table %s: card %s appears in both %s and %s", t.Name, c, prev, owner)
		}
		owners[c] = owner
		return nil
	}

	for i, c := range boardCards {
		if err := claim(c, "the board"); err != nil {
			return hands, board, err
		}
		board[i] = uint8(c)
	}

	for i, seat := range t.Seats {
		if seat.Cards == "" {
			if !seat.Folded {
				return hands, board, fmt.Errorf("table %s: seat %s has no cards for showdown", t.Name, seat.Name)
			}
			continue
		}
		cards, err := poker.ParseCards(seat.Cards)
		if err != nil {
			return hands, board, fmt.Errorf("table %s: seat %s: %w", t.Name, seat.Name, err)
		}
		if len(cards) != circuit.HoleCards {
			return hands, board, fmt.Errorf("table %s: seat %s: need %d hole cards, got %d",
				t.Name, seat.Name, circuit.HoleCards, len(cards))
		}
		for _, c := range cards {
			if err := claim(c, "seat "+seat.Name); err != nil {
				return hands, board, err
			}
		}
		if !seat.Folded {
			hands[i] = circuit.PackHand(uint8(cards[0]), uint8(cards[1]))
		}
	}

	return hands, board, nil
}

// GetTable returns the named table, or nil when absent.
func (c *Config) GetTable(name string) *Table {
	for i := range c.Tables {
		if c.Tables[i].Name == name {
			return &c.Tables[i]
		}
	}
	return nil
}
