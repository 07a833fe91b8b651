package roman

import "fmt"

// action is the contribution a letter makes to the running sum.
type action uint8

const (
	reject action = iota
	add
	subtract
)

// slot indexes symbols by ascending value, matching the order of symbols.
// boundary stands for the position before the first letter and after the last.
type slot uint8

const (
	sI slot = iota
	sV
	sX
	sL
	sC
	sD
	sM
	boundary
)

func (s Symbol) slot() slot {
	switch s {
	case I:
		return sI
	case V:
		return sV
	case X:
		return sX
	case L:
		return sL
	case C:
		return sC
	case D:
		return sD
	default:
		return sM
	}
}

func (s slot) String() string {
	if s == boundary {
		return "end"
	}
	return symbols[s].String()
}

// slotSet is a bitmask over slots, boundary included.
type slotSet uint8

func setOf(slots ...slot) slotSet {
	var set slotSet
	for _, s := range slots {
		set |= 1 << s
	}
	return set
}

func (set slotSet) has(s slot) bool {
	return set&(1<<s) != 0
}

// adjacency lists where a symbol may appear relative to its neighbours.
type adjacency struct {
	// subtractFrom holds the next symbols this one subtracts from.
	subtractFrom slotSet
	// noSubtractAfter holds previous symbols that rule out subtracting.
	noSubtractAfter slotSet
	// addBefore holds the next symbols (or boundary) allowed when adding.
	addBefore slotSet
	// after holds the allowed previous symbols (or boundary); empty means any.
	after slotSet
	// notBetween rejects the symbol when both neighbours are in the set.
	notBetween slotSet
}

// grammar is indexed by slot.
var grammar = [boundary]adjacency{
	sI: {
		subtractFrom:    setOf(sV, sX),
		noSubtractAfter: setOf(sI, sV),
		addBefore:       setOf(sI, boundary),
	},
	sV: {
		addBefore: setOf(sI, boundary),
	},
	sX: {
		subtractFrom:    setOf(sL, sC),
		noSubtractAfter: setOf(sX),
		addBefore:       setOf(sX, sV, sI, boundary),
	},
	sL: {
		addBefore: setOf(sX, sV, sI, boundary),
	},
	sC: {
		subtractFrom:    setOf(sD, sM),
		noSubtractAfter: setOf(sC),
		addBefore:       setOf(sC, sL, sX, sV, sI, boundary),
	},
	sD: {
		addBefore: setOf(sC, sL, sX, sV, sI, boundary),
	},
	sM: {
		after:      setOf(boundary, sM, sC),
		notBetween: setOf(sC),
		addBefore:  setOf(sM, sD, sC, sL, sX, sV, sI, boundary),
	},
}

// classify decides how the symbol in slot cur contributes given its
// neighbours. The reason is set only for reject.
func classify(cur, prev, next slot) (action, string) {
	a := grammar[cur]
	if a.after != 0 && !a.after.has(prev) {
		return reject, fmt.Sprintf("%s may not follow %s", cur, prev)
	}
	if a.notBetween.has(prev) && a.notBetween.has(next) {
		return reject, fmt.Sprintf("%s may not sit between %s and %s", cur, prev, next)
	}
	if a.subtractFrom.has(next) {
		if a.noSubtractAfter.has(prev) {
			return reject, fmt.Sprintf("%s may not subtract from %s after %s", cur, next, prev)
		}
		return subtract, ""
	}
	if a.addBefore.has(next) {
		return add, ""
	}
	return reject, fmt.Sprintf("%s may not precede %s", cur, next)
}
