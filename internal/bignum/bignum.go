// Package bignum implements the sign-magnitude arbitrary-precision integer
// engine that backs varint and decimal handling in the cql codec. It is the
// Go counterpart of cc_bignum.c/.h from the original C client: a base-256,
// little-endian magnitude plus a sign flag, with just the operations the
// codec needs (no general arithmetic).
package bignum

import "github.com/juju/errors"

// Int is a sign-magnitude arbitrary-precision integer. The magnitude is
// stored little-endian (least significant byte first), is never empty, and
// may carry high-order zero bytes; zero is all 0x00 bytes with IsNegative
// false.
type Int struct {
	magnitude  []byte
	isNegative bool
}

// FromTwosComplement builds an Int from a big-endian two's-complement byte
// string, the form cell bytes arrive in on the wire.
func FromTwosComplement(b []byte) *Int {
	n := &Int{}
	if len(b) == 0 {
		n.magnitude = []byte{0}
		return n
	}

	mag := make([]byte, len(b))
	for i, v := range b {
		mag[len(b)-1-i] = v
	}

	if mag[len(mag)-1]&0x80 != 0 {
		for i := range mag {
			mag[i] = ^mag[i]
		}
		n.magnitude = mag
		n.isNegative = true
		n.AddSmall(1)
	} else {
		n.magnitude = mag
	}
	return n
}

// FromDecimalString builds an Int from a base-10 string with an optional
// leading '+' or '-'.
func FromDecimalString(s string) (*Int, error) {
	if len(s) == 0 {
		return nil, errors.Trace(ErrMalformedDecimal)
	}

	n := &Int{magnitude: []byte{0}}
	pos := 0
	switch s[0] {
	case '-':
		n.isNegative = true
		pos++
	case '+':
		pos++
	}
	if pos == len(s) {
		return nil, errors.Trace(ErrMalformedDecimal)
	}

	for ; pos < len(s); pos++ {
		c := s[pos]
		if c < '0' || c > '9' {
			return nil, errors.Annotatef(ErrMalformedDecimal, "unexpected character %q", c)
		}
		n.MulSmall(10)
		n.AddSmall(c - '0')
	}
	if n.IsZero() {
		n.isNegative = false
	}
	return n, nil
}

// MulSmall multiplies the magnitude in place by a byte-sized factor.
func (n *Int) MulSmall(mul uint8) {
	var carry uint32
	for i := range n.magnitude {
		carry += uint32(n.magnitude[i]) * uint32(mul)
		n.magnitude[i] = byte(carry % 256)
		carry >>= 8
	}
	if carry != 0 {
		n.magnitude = append(n.magnitude, byte(carry))
	}
}

// AddSmall adds a byte-sized value to the magnitude in place.
func (n *Int) AddSmall(add uint8) {
	carry := add
	if carry == 0 {
		return
	}
	for i := range n.magnitude {
		if n.magnitude[i] <= 255-carry {
			n.magnitude[i] += carry
			return
		}
		n.magnitude[i] += carry
		carry = 1
	}
	n.magnitude = append(n.magnitude, carry)
}

// DivSmall divides the magnitude in place by a byte-sized divisor, most
// significant byte first, and returns the remainder. Matches
// cc_bignum_divide_8bit: not correct for negative values, but the only
// caller (String) only ever walks magnitudes, so that never matters.
func (n *Int) DivSmall(div uint8) uint8 {
	out := make([]byte, len(n.magnitude))
	var rem uint32
	for i := len(n.magnitude) - 1; i >= 0; i-- {
		rem = (rem << 8) | uint32(n.magnitude[i])
		out[i] = byte(rem / uint32(div))
		rem -= uint32(out[i]) * uint32(div)
	}
	n.magnitude = out
	return uint8(rem)
}

// IsZero reports whether the magnitude is all-zero.
func (n *Int) IsZero() bool {
	for _, b := range n.magnitude {
		if b != 0 {
			return false
		}
	}
	return true
}

// IsNegative reports the sign flag.
func (n *Int) IsNegative() bool {
	return n.isNegative
}

// Clone returns an independent copy.
func (n *Int) Clone() *Int {
	mag := make([]byte, len(n.magnitude))
	copy(mag, n.magnitude)
	return &Int{magnitude: mag, isNegative: n.isNegative}
}

// String renders the decimal representation, with a leading '-' when
// negative. Zero is always "0" regardless of the sign flag.
func (n *Int) String() string {
	if n.IsZero() {
		return "0"
	}

	cur := n.Clone()
	digits := make([]byte, 0, len(n.magnitude)*3+1)
	for !cur.IsZero() {
		rem := cur.DivSmall(10)
		digits = append(digits, '0'+rem)
	}
	if n.isNegative {
		digits = append(digits, '-')
	}

	out := make([]byte, len(digits))
	for i, b := range digits {
		out[len(digits)-1-i] = b
	}
	return string(out)
}

// TwosComplementBytes returns the shortest big-endian two's-complement
// encoding of the value: the minimal byte string whose sign bit (and the
// bit after it) are not redundant.
func (n *Int) TwosComplementBytes() []byte {
	mag := make([]byte, len(n.magnitude), len(n.magnitude)+1)
	copy(mag, n.magnitude)

	var sentinel byte
	if n.isNegative {
		for i := range mag {
			mag[i] = ^mag[i]
		}
		c := &Int{magnitude: mag}
		c.AddSmall(1)
		mag = c.magnitude
		sentinel = 0xff
	}
	mag = append(mag, sentinel)

	needed := len(mag)
	for needed > 1 {
		top := mag[needed-1]
		next := mag[needed-2]
		if top == sentinel && (top&0x80) == (next&0x80) {
			needed--
			continue
		}
		break
	}

	be := make([]byte, needed)
	for i := 0; i < needed; i++ {
		be[i] = mag[needed-1-i]
	}
	return be
}
