// Package morton implements Z-order (Morton) keys over a 2D integer grid of
// at most 2^16 x 2^16 cells.
//
// An Index couples a 32-bit interleaved code with a resolution:
//
//	raw: [ y15 x15 y14 x14 ... y1 x1 y0 x0 ]
//	res: number of low bit-pairs masked off the code
//
// so an Index addresses the square quad of side 2^res that contains the
// point raw was encoded from. The quad covers the contiguous key range
//
//	[ raw &^ mask, raw | mask ]   where mask = 1<<(2*res) - 1
package morton

import (
	"fmt"
)

const (
	MaxRes = 16 // 16 bit-pairs fill the 32-bit code

	xMask uint32 = 0x55555555 // 0b_0101..01 - x bits live in even positions
	yMask uint32 = 0xAAAAAAAA // 0b_1010..10 - y bits live in odd positions
)

// Index is a Morton code with a resolution. The zero value addresses the
// single cell at the origin.
type Index struct {
	raw uint32
	res uint8
}

// New encodes the point (x, y) at the given resolution.
func New(x, y uint32, res uint8) Index {
	return Index{raw: Encode(x, y), res: clampRes(res)}
}

// FromRaw wraps an already interleaved code.
func FromRaw(raw uint32, res uint8) Index {
	return Index{raw: raw, res: clampRes(res)}
}

// Encode interleaves the low 16 bits of x into the even bit positions and
// the low 16 bits of y into the odd ones.
func Encode(x, y uint32) uint32 {
	return dilate(x) | dilate(y)<<1
}

// Decode is the inverse of Encode.
func Decode(raw uint32) (x, y uint32) {
	return contract(raw), contract(raw >> 1)
}

func dilate(x uint32) uint32 {
	x &= 0x0000ffff                  // x = ---- ---- ---- ---- fedc ba98 7654 3210
	x = (x ^ (x << 8)) & 0x00ff00ff // x = ---- ---- fedc ba98 ---- ---- 7654 3210
	x = (x ^ (x << 4)) & 0x0f0f0f0f // x = ---- fedc ---- ba98 ---- 7654 ---- 3210
	x = (x ^ (x << 2)) & 0x33333333 // x = --fe --dc --ba --98 --76 --54 --32 --10
	x = (x ^ (x << 1)) & 0x55555555 // x = -f-e -d-c -b-a -9-8 -7-6 -5-4 -3-2 -1-0

	return x
}

func contract(x uint32) uint32 {
	x &= 0x55555555                  // x = -f-e -d-c -b-a -9-8 -7-6 -5-4 -3-2 -1-0
	x = (x ^ (x >> 1)) & 0x33333333 // x = --fe --dc --ba --98 --76 --54 --32 --10
	x = (x ^ (x >> 2)) & 0x0f0f0f0f // x = ---- fedc ---- ba98 ---- 7654 ---- 3210
	x = (x ^ (x >> 4)) & 0x00ff00ff // x = ---- ---- fedc ba98 ---- ---- 7654 3210
	x = (x ^ (x >> 8)) & 0x0000ffff // x = ---- ---- ---- ---- fedc ba98 7654 3210

	return x
}

func clampRes(res uint8) uint8 {
	if res > MaxRes {
		return MaxRes
	}

	return res
}

// rangeMask returns the mask of the low 2*res bits. Computed in 64 bits so
// that res == 16 yields all ones.
func rangeMask(res uint8) uint32 {
	return uint32(uint64(1)<<(2*uint(res)) - 1)
}

func (i Index) Raw() uint32 { return i.raw }
func (i Index) Res() uint8  { return i.res }

// Coords decodes the point the index was built from.
func (i Index) Coords() (x, y uint32) {
	return Decode(i.raw)
}

// Side is the side length of the addressed quad.
func (i Index) Side() uint32 {
	return uint32(1) << i.res
}

// WithRes returns a copy of the index at another resolution.
func (i Index) WithRes(res uint8) Index {
	return Index{raw: i.raw, res: clampRes(res)}
}

// Compare orders indices by their raw code as unsigned integers.
func (i Index) Compare(o Index) int {
	switch {
	case i.raw < o.raw:
		return -1
	case i.raw > o.raw:
		return 1
	}

	return 0
}

func (i Index) MinRange() uint32 {
	return i.raw &^ rangeMask(i.res)
}

func (i Index) MaxRange() uint32 {
	return i.raw | rangeMask(i.res)
}

// Contains reports whether the range of o lies within the range of i.
func (i Index) Contains(o Index) bool {
	return i.MinRange() <= o.MinRange() && o.MaxRange() <= i.MaxRange()
}

// Overlaps reports whether the two ranges share at least one code.
func (i Index) Overlaps(o Index) bool {
	return !(i.MaxRange() < o.MinRange() || i.MinRange() > o.MaxRange())
}

func (i Index) IsDivisible() bool {
	return i.res > 0
}

// SplitSize returns the largest resolution at which i and o still fall into
// different quads. Identical codes yield 0.
func (i Index) SplitSize(o Index) uint8 {
	n := bitLen(i.raw ^ o.raw)
	if n == 0 {
		return 0
	}

	return uint8((n - 1) / 2)
}

// MaxFitRes returns the smallest resolution whose quad side covers the gap
// between two keys lo and hi. A quad inserted between two resident ranges
// starts from this size and shrinks until it overlaps neither of them.
func MaxFitRes(lo, hi uint32) uint8 {
	if hi <= lo {
		return 0
	}

	return clampRes(uint8((bitLen(hi-lo) + 1) / 2))
}

// Quadrant returns the 2-bit digit selecting this quad inside its parent:
//
//	0b00 - x low,  y low
//	0b01 - x high, y low
//	0b10 - x low,  y high
//	0b11 - x high, y high
func (i Index) Quadrant() uint8 {
	if i.res >= MaxRes {
		return 0
	}

	return uint8(i.raw>>(2*uint(i.res))) & 0b11
}

// Parent returns the quad one resolution level up, anchored at its minimum.
func (i Index) Parent() Index {
	p := Index{raw: i.raw, res: clampRes(i.res + 1)}
	p.raw = p.MinRange()

	return p
}

// IsCoQuadrant reports whether i and o are distinct siblings of one parent.
func (i Index) IsCoQuadrant(o Index) bool {
	return i.res == o.res &&
		i.res < MaxRes &&
		i.Parent().raw == o.Parent().raw &&
		i.Quadrant() != o.Quadrant()
}

// CoQuadrants returns the three siblings of i anchored at their minimum.
func (i Index) CoQuadrants() [3]Index {
	var (
		sibs  [3]Index
		shift = 2 * uint(i.res)
		base  = i.Parent().raw
		own   = i.Quadrant()
		n     int
	)

	for q := uint8(0); q < 4; q++ {
		if q == own {
			continue
		}

		sibs[n] = Index{raw: base | uint32(q)<<shift, res: i.res}
		n++
	}

	return sibs
}

func (i Index) String() string {
	x, y := i.Coords()

	return fmt.Sprintf("<morton|%d,%d|r:%d|%#08x>", x, y, i.res, i.raw)
}
