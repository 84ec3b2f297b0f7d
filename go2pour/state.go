package go2pour

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Container is one position of a State.
//
// Capacity is fixed for a container's lifetime and does not participate in equality:
// containers are identified by position, so two containers match if their Occupied and Color match.
type Container struct {
	Capacity int
	Occupied int
	Color    ColorCode
}

// ContainerKey is the part of a Container that participates in equality and multiset matching.
type ContainerKey struct {
	Occupied int
	Color    ColorCode
}

func (c Container) Key() ContainerKey {
	return ContainerKey{
		Occupied: c.Occupied,
		Color:    c.Color,
	}
}

// Matches returns true if c and other hold the same quantity of the same color.
func (c Container) Matches(other Container) bool {
	return c.Occupied == other.Occupied && c.Color == other.Color
}

func (c Container) IsEmpty() bool {
	return c.Occupied == 0
}

func (c Container) IsFull() bool {
	return c.Occupied == c.Capacity
}

// FreeSpace is the volume that can still be poured into c.
func (c Container) FreeSpace() int {
	return c.Capacity - c.Occupied
}

// IsValid returns true if 0 <= Occupied <= Capacity and c has a color exactly when it is not empty.
func (c Container) IsValid() bool {
	if c.Occupied < 0 || c.Occupied > c.Capacity {
		return false
	}
	return (c.Occupied == 0) == (c.Color == ColorNone)
}

// State is an ordered sequence of containers.  Its length is fixed for a given puzzle.
type State []Container

// Clone returns a deep copy of S.
func (S State) Clone() State {
	return append(State(nil), S...)
}

// Equal returns true if S and other are element-wise equal (capacity ignored).
func (S State) Equal(other State) bool {
	if len(S) != len(other) {
		return false
	}
	for i, ci := range S {
		if !ci.Matches(other[i]) {
			return false
		}
	}
	return true
}

// AppendEncoding appends the canonic binary encoding of S to the given buffer.
//
// The encoding is a varint series of (index, occupied, color) for each container, so equal
// states (capacity ignored) always produce equal encodings.
func (S State) AppendEncoding(prefix []byte) []byte {
	for i, ci := range S {
		prefix = binary.AppendUvarint(prefix, uint64(i))
		prefix = binary.AppendVarint(prefix, int64(ci.Occupied))
		prefix = binary.AppendVarint(prefix, int64(ci.Color))
	}
	return prefix
}

// Hash returns the content hash of S.
func (S State) Hash() uint64 {
	var scrap [128]byte
	return xxhash.Sum64(S.AppendEncoding(scrap[:0]))
}

// TotalOccupied is the sum of Occupied over all containers.
func (S State) TotalOccupied() int {
	total := 0
	for _, ci := range S {
		total += ci.Occupied
	}
	return total
}

// UsableQty is the sum of Occupied over containers whose color is not ColorUndefined.
func (S State) UsableQty() int {
	usable := 0
	for _, ci := range S {
		if ci.Color != ColorUndefined {
			usable += ci.Occupied
		}
	}
	return usable
}

// Colors returns the distinct colors present in S, in order of first appearance.
func (S State) Colors() []ColorCode {
	colors := make([]ColorCode, 0, len(S))
	for _, ci := range S {
		if !containsColor(colors, ci.Color) {
			colors = append(colors, ci.Color)
		}
	}
	return colors
}

// HasColor returns true if any container of S holds the given color.
func (S State) HasColor(color ColorCode) bool {
	for _, ci := range S {
		if ci.Color == color {
			return true
		}
	}
	return false
}

// Tally counts the containers of S by (occupied, color).
func (S State) Tally() map[ContainerKey]int {
	tally := make(map[ContainerKey]int, len(S))
	for _, ci := range S {
		tally[ci.Key()]++
	}
	return tally
}

func containsColor(colors []ColorCode, color ColorCode) bool {
	for _, ci := range colors {
		if ci == color {
			return true
		}
	}
	return false
}
