package circuit

import (
	"fmt"
	"strconv"
)

// Uint128 is a 128-bit unsigned integer: Lo carries bits 0-63, Hi bits
// 64-127. The packed deck encoding needs 126-bit chunks and Go has no native
// 128-bit type.
type Uint128 struct {
	Lo, Hi uint64
}

// field6 returns the 6-bit field starting at the given bit offset.
func (u Uint128) field6(off uint) uint8 {
	switch {
	case off+slotBits <= 64:
		return uint8(u.Lo >> off & slotMask)
	case off >= 64:
		return uint8(u.Hi >> (off - 64) & slotMask)
	default:
		// The field straddles the word boundary.
		return uint8((u.Lo>>off | u.Hi<<(64-off)) & slotMask)
	}
}

// withField6 returns a copy with the 6-bit field at the offset replaced.
func (u Uint128) withField6(off uint, v uint8) Uint128 {
	val := uint64(v) & slotMask
	switch {
	case off+slotBits <= 64:
		u.Lo = u.Lo&^(slotMask<<off) | val<<off
	case off >= 64:
		o := off - 64
		u.Hi = u.Hi&^(slotMask<<o) | val<<o
	default:
		loBits := 64 - off
		u.Lo = u.Lo&^(slotMask<<off) | val<<off
		u.Hi = u.Hi&^(slotMask>>loBits) | val>>loBits
	}
	return u
}

// Hex renders the value as 32 lowercase hex digits, most significant first.
func (u Uint128) Hex() string {
	return fmt.Sprintf("%016x%016x", u.Hi, u.Lo)
}

// ParseUint128 parses the 32-hex-digit form produced by Hex.
func ParseUint128(s string) (Uint128, error) {
	if len(s) != 32 {
		return Uint128{}, fmt.Errorf("uint128 must be 32 hex digits, got %d", len(s))
	}
	hi, err := strconv.ParseUint(s[:16], 16, 64)
	if err != nil {
		return Uint128{}, fmt.Errorf("uint128 high word: %w", err)
	}
	lo, err := strconv.ParseUint(s[16:], 16, 64)
	if err != nil {
		return Uint128{}, fmt.Errorf("uint128 low word: %w", err)
	}
	return Uint128{Lo: lo, Hi: hi}, nil
}
