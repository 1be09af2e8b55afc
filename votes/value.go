// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package votes

import "strconv"

// Value is a vote on a single image.
type Value int

const (
	None Value = 0
	Up   Value = 1
	Down Value = -1
)

// Valid reports whether v can be cast. None is a state, not a vote.
func (v Value) Valid() bool {
	return v == Up || v == Down
}

func (v Value) String() string {
	switch v {
	case None:
		return "none"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "Value(" + strconv.Itoa(int(v)) + ")"
}

// VoteMap maps image id to its vote. A key is only present while its vote
// is Up or Down.
type VoteMap map[string]Value

// Clone returns a copy the caller may mutate.
func (m VoteMap) Clone() VoteMap {
	out := make(VoteMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
