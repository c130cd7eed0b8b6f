package sim

import (
	"reflect"
	"testing"

	"github.com/stanleykosi/arcium-aces/circuit"
	"github.com/stanleykosi/arcium-aces/internal/scenario"
	"github.com/stanleykosi/arcium-aces/poker"
)

func packCards(s string) circuit.PackedHand {
	cards := poker.MustParseCards(s)
	return circuit.PackHand(uint8(cards[0]), uint8(cards[1]))
}

func TestHandRecord(t *testing.T) {
	t.Parallel()

	table := scenario.Table{
		Name: "record",
		Seats: []scenario.Seat{
			{Name: "alice", Bet: 100},
			{Name: "bob", Bet: 40, Folded: true},
			{Name: "carol", Bet: 150},
		},
	}

	var board [circuit.CommunityCards]uint8
	for i, c := range poker.MustParseCards("2c 7d Jh Js 9c") {
		board[i] = uint8(c)
	}
	result := HandResult{
		ID:    "hand-0001",
		Board: board,
		Pot:   250,
		Hole: [circuit.MaxPlayers]circuit.PackedHand{
			packCards("AhKd"),
			circuit.DummyHand,
			packCards("JcQd"),
			circuit.DummyHand,
			circuit.DummyHand,
			circuit.DummyHand,
		},
		Payouts: [circuit.MaxPlayers]uint64{0, 0, 250},
	}

	hand := handRecord(&table, &result)

	if hand.Variant != "NT" {
		t.Errorf("Variant = %q, want NT", hand.Variant)
	}
	if hand.ID != "hand-0001" {
		t.Errorf("ID = %q, want hand-0001", hand.ID)
	}
	if want := []uint64{100, 40, 150}; !reflect.DeepEqual(hand.StartingStacks, want) {
		t.Errorf("StartingStacks = %v, want %v", hand.StartingStacks, want)
	}
	if want := []string{"alice", "bob", "carol"}; !reflect.DeepEqual(hand.Players, want) {
		t.Errorf("Players = %v, want %v", hand.Players, want)
	}
	if want := []uint64{0, 0, 250}; !reflect.DeepEqual(hand.Winnings, want) {
		t.Errorf("Winnings = %v, want %v", hand.Winnings, want)
	}
	if want := []uint64{0, 0, 0}; !reflect.DeepEqual(hand.Antes, want) {
		t.Errorf("Antes = %v, want %v", hand.Antes, want)
	}

	wantActions := []string{
		"d dh p1 AhKd",
		"d dh p2 ????",
		"d dh p3 JcQd",
		"p1 cbr 100",
		"p2 cc",
		"p3 cbr 150",
		"p2 f",
		"d db 2c7dJh",
		"d db Js",
		"d db 9c",
		"p1 sm AhKd",
		"p3 sm JcQd",
	}
	if !reflect.DeepEqual(hand.Actions, wantActions) {
		t.Errorf("Actions mismatch.\nGot:  %q\nWant: %q", hand.Actions, wantActions)
	}
}

func TestHandRecordEqualBets(t *testing.T) {
	t.Parallel()

	table := scenario.Table{
		Name: "flat",
		Seats: []scenario.Seat{
			{Name: "a", Bet: 50},
			{Name: "b", Bet: 50},
		},
	}
	result := HandResult{
		ID:      "hand-0002",
		Hole:    [circuit.MaxPlayers]circuit.PackedHand{packCards("2c3c"), packCards("4d5d")},
		Payouts: [circuit.MaxPlayers]uint64{100, 0},
	}
	var board [circuit.CommunityCards]uint8
	for i, c := range poker.MustParseCards("6h 7h 8s 9s Ts") {
		board[i] = uint8(c)
	}
	result.Board = board

	hand := handRecord(&table, &result)

	// First seat opens to the flat amount, second calls, nobody folds.
	want := []string{
		"d dh p1 2c3c",
		"d dh p2 4d5d",
		"p1 cbr 50",
		"p2 cc",
		"d db 6h7h8s",
		"d db 9s",
		"d db Ts",
		"p1 sm 2c3c",
		"p2 sm 4d5d",
	}
	if !reflect.DeepEqual(hand.Actions, want) {
		t.Errorf("Actions mismatch.\nGot:  %q\nWant: %q", hand.Actions, want)
	}
}
