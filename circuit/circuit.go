// Package circuit implements the confidential-computation procedures of the
// poker platform: shuffle-and-deal with a verifiable commitment, staged
// community-card reveals, and showdown evaluation with exact pot settlement,
// plus the packed deck codec they all share.
//
// Every procedure is purely computational. The only I/O is through injected
// entropy sources, there is no shared state, and invocations for different
// hands are safe to run concurrently. Conditions that would need a branch on
// card values degrade to guarded no-ops; only public-input precondition
// violations surface as errors.
package circuit

const (
	// MaxPlayers is the table seat capacity.
	MaxPlayers = 6

	// HoleCards is the number of cards dealt to each active seat.
	HoleCards = 2

	// CommunityCards is the number of board cards over a full hand.
	CommunityCards = 5

	// MaxReveal is the largest single reveal, the flop. Reveal output is
	// always this wide so the requested count never shapes the work done.
	MaxReveal = 3

	// NoCard marks a consumed, burned or absent card slot. It is the top
	// 6-bit value and can never collide with a real card or DummyCard.
	NoCard = 63

	// DummyCard fills the hole-card slots of inactive seats.
	DummyCard = 52
)
