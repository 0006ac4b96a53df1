package session

import (
	"fmt"
	"sync"

	"github.com/Elekcktra/cars-analyzer/internal/generator"
	"github.com/Elekcktra/cars-analyzer/internal/report"
)

// Key addresses one practice unit: a category and its slot within the
// session.
type Key struct {
	Category string
	Slot     int
}

func (k Key) String() string {
	return fmt.Sprintf("%s#%d", k.Category, k.Slot)
}

// SelectionKeys returns one key per ranked entry, using the rank index as
// the slot.
func SelectionKeys(entries []report.Entry) []Key {
	keys := make([]Key, len(entries))
	for i, e := range entries {
		keys[i] = Key{Category: e.Category, Slot: i}
	}
	return keys
}

// UnitState is the lifecycle stage of a unit.
type UnitState int

const (
	StateUninitialized UnitState = iota // content never generated
	StatePending                        // content generation in flight
	StateHidden                         // content ready, answers hidden
	StateRevealed                       // content ready, answers shown
)

func (s UnitState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StatePending:
		return "pending"
	case StateHidden:
		return "hidden"
	case StateRevealed:
		return "revealed"
	default:
		return fmt.Sprintf("UnitState(%d)", int(s))
	}
}

// unit is the mutable state behind a Key.
//
// op serializes operations that call the generator so a suspended request
// never races another mutation of the same unit. mu guards the fields so
// reads stay available while op is held.
type unit struct {
	op sync.Mutex

	mu         sync.RWMutex
	content    string
	hasContent bool
	pending    bool
	revealed   bool
	transcript []generator.Turn
}

func (u *unit) state() UnitState {
	u.mu.RLock()
	defer u.mu.RUnlock()
	switch {
	case u.hasContent && u.revealed:
		return StateRevealed
	case u.hasContent:
		return StateHidden
	case u.pending:
		return StatePending
	default:
		return StateUninitialized
	}
}

func (u *unit) cached() (string, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.content, u.hasContent
}

func (u *unit) appendTurn(t generator.Turn) {
	u.mu.Lock()
	u.transcript = append(u.transcript, t)
	u.mu.Unlock()
}

func (u *unit) transcriptCopy() []generator.Turn {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return append([]generator.Turn(nil), u.transcript...)
}
