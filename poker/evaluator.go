package poker

import "math/bits"

// wheelMask has the bits for A-2-3-4-5, the only straight where the ace
// plays low.
const wheelMask uint16 = 1<<uint(Ace) | 1<<uint(Two) | 1<<uint(Three) | 1<<uint(Four) | 1<<uint(Five)

// Evaluate7 returns the rank of the best 5-card hand found in the given
// 7 cards. The caller guarantees the cards are valid and pairwise distinct.
//
// The evaluation works on per-suit rank bitmasks rather than card
// combinations: quads, trips and pairs fall out of mask intersections, and
// straights out of shifted ANDs, so no 5-of-7 enumeration is needed.
func Evaluate7(cards [7]Card) HandRank {
	var suitMasks [NumSuits]uint16
	for _, c := range cards {
		suitMasks[c.Suit()] |= 1 << uint(c.Rank())
	}
	rankMask := suitMasks[0] | suitMasks[1] | suitMasks[2] | suitMasks[3]

	// A rank appears in exactly the suits whose masks have its bit set, so
	// the multiplicity of a rank is the number of suit masks containing it.
	s0, s1, s2, s3 := suitMasks[0], suitMasks[1], suitMasks[2], suitMasks[3]
	quadsMask := s0 & s1 & s2 & s3
	tripsOrBetter := (s0 & s1 & s2) | (s0 & s1 & s3) | (s0 & s2 & s3) | (s1 & s2 & s3)
	tripsMask := tripsOrBetter &^ quadsMask
	pairsOrBetter := (s0 & s1) | (s0 & s2) | (s0 & s3) | (s1 & s2) | (s1 & s3) | (s2 & s3)
	pairsMask := pairsOrBetter &^ tripsOrBetter

	// With 7 cards at most one suit can hold five or more.
	flushSuit := -1
	for s := 0; s < NumSuits; s++ {
		if bits.OnesCount16(suitMasks[s]) >= 5 {
			flushSuit = s
			break
		}
	}

	// A flush plus a straight on the full rank mask does not imply a straight
	// flush, so the straight scan must rerun on the flush suit alone.
	if flushSuit >= 0 {
		if high, ok := straightHigh(suitMasks[flushSuit]); ok {
			return StraightFlushRank(high)
		}
	}

	if quadsMask != 0 {
		quad := highestRank(quadsMask)
		kicker := highestRank(rankMask &^ rankBit(quad))
		return FourOfAKindRank(quad, kicker)
	}

	if tripsMask != 0 {
		trips := highestRank(tripsMask)
		// Two sets of trips in 7 cards play as a full house with the lower
		// trips supplying the pair.
		pairCandidates := pairsMask | (tripsMask &^ rankBit(trips))
		if pairCandidates != 0 {
			return FullHouseRank(trips, highestRank(pairCandidates))
		}
	}

	if flushSuit >= 0 {
		return FlushRank(topFiveRanks(suitMasks[flushSuit]))
	}

	if high, ok := straightHigh(rankMask); ok {
		return StraightRank(high)
	}

	if tripsMask != 0 {
		trips := highestRank(tripsMask)
		kickers := rankMask &^ rankBit(trips)
		k0 := highestRank(kickers)
		k1 := highestRank(kickers &^ rankBit(k0))
		return ThreeOfAKindRank(trips, [2]Rank{k0, k1})
	}

	switch bits.OnesCount16(pairsMask) {
	case 0:
		return HighCardRank(topFiveRanks(rankMask))
	case 1:
		pair := highestRank(pairsMask)
		kickers := rankMask &^ rankBit(pair)
		k0 := highestRank(kickers)
		k1 := highestRank(kickers &^ rankBit(k0))
		k2 := highestRank(kickers &^ rankBit(k0) &^ rankBit(k1))
		return OnePairRank(pair, [3]Rank{k0, k1, k2})
	default:
		// Three pairs are possible in 7 cards; the third pair's rank still
		// competes as a kicker.
		hi := highestRank(pairsMask)
		lo := highestRank(pairsMask &^ rankBit(hi))
		kicker := highestRank(rankMask &^ rankBit(hi) &^ rankBit(lo))
		return TwoPairRank(hi, lo, kicker)
	}
}

// straightHigh returns the high card of the best straight in the rank mask.
// The shifted AND keeps a bit only where five consecutive ranks are all
// present, so the highest surviving bit marks the best run. The wheel is
// checked last: it is the weakest straight and must not shadow a higher one.
func straightHigh(mask uint16) (Rank, bool) {
	runs := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if runs != 0 {
		return highestRank(runs) + 4, true
	}
	if mask&wheelMask == wheelMask {
		return Five, true
	}
	return 0, false
}

func rankBit(r Rank) uint16 {
	return 1 << uint(r)
}

// highestRank returns the highest set rank in a non-empty mask
func highestRank(mask uint16) Rank {
	return Rank(bits.Len16(mask) - 1)
}

// topFiveRanks returns the five highest set ranks, strongest first. The mask
// must have at least five bits set.
func topFiveRanks(mask uint16) [5]Rank {
	var out [5]Rank
	for i := 0; i < 5; i++ {
		r := highestRank(mask)
		out[i] = r
		mask &^= rankBit(r)
	}
	return out
}
