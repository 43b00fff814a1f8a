package game

import (
	"fmt"
	"sort"
)

// Phase represents the betting street. Phases only move forward within a
// hand.
type Phase int

const (
	Preflop Phase = iota
	Flop
	Turn
	River
	Showdown
)

func (p Phase) String() string {
	return [...]string{"preflop", "flop", "turn", "river", "showdown"}[p]
}

func parsePhase(s string) (Phase, error) {
	for p := Preflop; p <= Showdown; p++ {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown phase %q", s)
}

// noSeat is the actionSeat sentinel meaning no actionable seat remains.
const noSeat = -1

// Seating describes one seat at table-creation time.
type Seating struct {
	Seat   int
	Stack  int
	UserID string
}

// GameState is the authoritative state for one table. The object persists
// across hands; StartHand resets the per-hand fields.
type GameState struct {
	Players map[int]*PlayerState

	Board      []Card
	Phase      Phase
	Pot        int
	CurrentBet int

	DealerSeat     int
	SmallBlindSeat int
	BigBlindSeat   int
	ActionSeat     int

	LastRaiseSeat   int
	LastRaiseAmount int

	HandIndex int

	SmallBlind int
	BigBlind   int
}

// NewGameState seats the given players at a fresh table. Seats must be
// unique and stacks positive: a chipless seat would be dealt in and could
// reach showdown without ever investing.
func NewGameState(smallBlind, bigBlind int, seats []Seating) (*GameState, error) {
	if len(seats) < 2 {
		return nil, fmt.Errorf("need at least 2 seated players, got %d", len(seats))
	}
	players := make(map[int]*PlayerState, len(seats))
	for _, s := range seats {
		if _, dup := players[s.Seat]; dup {
			return nil, fmt.Errorf("duplicate seat %d", s.Seat)
		}
		if s.Stack <= 0 {
			return nil, fmt.Errorf("seat %d needs a positive stack, got %d", s.Seat, s.Stack)
		}
		players[s.Seat] = &PlayerState{Seat: s.Seat, Stack: s.Stack, UserID: s.UserID}
	}
	return &GameState{
		Players:       players,
		Phase:         Preflop,
		ActionSeat:    noSeat,
		DealerSeat:    noSeat,
		LastRaiseSeat: noSeat,
		SmallBlind:    smallBlind,
		BigBlind:      bigBlind,
	}, nil
}

// seats returns the seated seat numbers in ascending order. Sorted seat
// numbers define the rotation order.
func (g *GameState) seats() []int {
	out := make([]int, 0, len(g.Players))
	for seat := range g.Players {
		out = append(out, seat)
	}
	sort.Ints(out)
	return out
}

// player looks up a seat that the engine itself referenced. A miss is a
// defect in call sequencing, not a rule violation.
func (g *GameState) player(seat int) *PlayerState {
	p, ok := g.Players[seat]
	if !ok {
		panic(fmt.Sprintf("game: no player at seat %d", seat))
	}
	return p
}

// nextSeat returns the next seated seat clockwise from the given seat,
// wrapping around the table.
func (g *GameState) nextSeat(from int) int {
	seats := g.seats()
	for _, seat := range seats {
		if seat > from {
			return seat
		}
	}
	return seats[0]
}

// nextLiveSeat returns the first non-folded, non-all-in seat strictly after
// the given seat in rotation order, or noSeat if none exists.
func (g *GameState) nextLiveSeat(from int) int {
	seats := g.seats()
	cur := from
	for range seats {
		cur = g.nextSeat(cur)
		if g.player(cur).live() {
			return cur
		}
	}
	return noSeat
}

// nonFoldedCount returns the number of players still contesting the hand.
func (g *GameState) nonFoldedCount() int {
	n := 0
	for _, p := range g.Players {
		if !p.Folded {
			n++
		}
	}
	return n
}

// liveCount returns the number of players who can still bet this street.
func (g *GameState) liveCount() int {
	n := 0
	for _, p := range g.Players {
		if p.live() {
			n++
		}
	}
	return n
}

// soleNonFoldedSeat returns the only remaining non-folded seat. Calling it
// with more than one contender is a defect.
func (g *GameState) soleNonFoldedSeat() int {
	seat := noSeat
	for _, p := range g.Players {
		if !p.Folded {
			if seat != noSeat {
				panic("game: multiple non-folded players remain")
			}
			seat = p.Seat
		}
	}
	if seat == noSeat {
		panic("game: no non-folded player remains")
	}
	return seat
}

// totalChips returns all chips on the table, pot included. Chips move from
// stacks into the pot as actions land (Bet only mirrors the street wager for
// call math), so sum(stack)+pot is constant for the lifetime of the table.
func (g *GameState) totalChips() int {
	total := g.Pot
	for _, p := range g.Players {
		total += p.Stack
	}
	return total
}
