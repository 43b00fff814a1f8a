package game

import "sort"

// Winner is one seat's share of the pot at hand end.
type Winner struct {
	Seat            int    `json:"seat"`
	Amount          int    `json:"amount"`
	HandDescription string `json:"handDescription"`

	// BestHand is the exact 5 cards that made the hand; empty for a
	// fold-to-one win where no showdown happened.
	BestHand []string `json:"bestHand,omitempty"`
}

// computeShowdownWinners evaluates every non-folded player's best hand,
// annotates the player states and splits the pot among the top scores. It
// does not move any chips.
func (g *GameState) computeShowdownWinners() []Winner {
	type contender struct {
		seat  int
		value HandValue
	}

	var contenders []contender
	bestScore := 0
	for _, seat := range g.seats() {
		p := g.player(seat)
		if p.Folded {
			continue
		}
		value, err := EvaluateHand(append(append([]Card{}, p.HoleCards...), g.Board...))
		if err != nil {
			panic("game: showdown with unevaluable hand: " + err.Error())
		}
		p.HandScore = value.Score
		p.HandDescription = value.Category.String()
		contenders = append(contenders, contender{seat: seat, value: value})
		if value.Score > bestScore {
			bestScore = value.Score
		}
	}

	var top []contender
	for _, c := range contenders {
		if c.value.Score == bestScore {
			top = append(top, c)
		}
	}

	// Split evenly; odd chips go to tied winners in clockwise order from
	// the first seat after the dealer (the room's odd-chip rule).
	share := g.Pot / len(top)
	remainder := g.Pot % len(top)
	sort.Slice(top, func(i, j int) bool {
		return g.clockwiseFromDealer(top[i].seat) < g.clockwiseFromDealer(top[j].seat)
	})

	winners := make([]Winner, len(top))
	for i, c := range top {
		amount := share
		if i < remainder {
			amount++
		}
		winners[i] = Winner{
			Seat:            c.seat,
			Amount:          amount,
			HandDescription: c.value.Category.String(),
			BestHand:        CardTokens(c.value.BestHand),
		}
	}
	return winners
}

// clockwiseFromDealer orders seats by distance clockwise from the first
// seat after the dealer button.
func (g *GameState) clockwiseFromDealer(seat int) int {
	seats := g.seats()
	start := 0
	for i, s := range seats {
		if s > g.DealerSeat {
			start = i
			break
		}
	}
	for i := range seats {
		if seats[(start+i)%len(seats)] == seat {
			return i
		}
	}
	panic("game: seat not seated")
}
