package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/stanleykosi/arcium-aces/circuit"
	"github.com/stanleykosi/arcium-aces/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	cardStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	amountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func setupLogger(debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{Level: level})
}

// formatSlot renders a raw deck slot value: consumed slots as "--", dummy
// hole cards as "xx".
func formatSlot(c uint8) string {
	switch {
	case c == circuit.NoCard:
		return "--"
	case c == circuit.DummyCard:
		return "xx"
	case c < poker.DeckSize:
		return poker.Card(c).String()
	default:
		return fmt.Sprintf("?%d", c)
	}
}

// parseDigest decodes a 32-byte hex string, as printed by 'aces deal'.
func parseDigest(s string) ([circuit.CommitmentSize]byte, error) {
	var out [circuit.CommitmentSize]byte
	b, err := hex.DecodeString(s)
	if err != nil {
		return out, fmt.Errorf("invalid hex %q: %w", s, err)
	}
	if len(b) != circuit.CommitmentSize {
		return out, fmt.Errorf("expected %d bytes, got %d", circuit.CommitmentSize, len(b))
	}
	copy(out[:], b)
	return out, nil
}
