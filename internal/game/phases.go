package game

// advancePhases drives the street state machine after a successful,
// non-terminal action. It deals streets and resets per-street fields until a
// betting round is genuinely open again, running the board out back-to-back
// when nobody can bet (the all-in auto-run rule), and reports whether the
// hand reached showdown. It never moves chips.
func (g *GameState) advancePhases(dealer *Dealer) (ended bool, reason EndReason) {
	for {
		if !g.roundOver() {
			return false, ""
		}
		if g.Phase == River {
			g.Phase = Showdown
			g.ActionSeat = noSeat
			return true, EndReasonShowdown
		}
		g.dealNextStreet(dealer)
	}
}

// roundOver reports whether the current betting round can no longer
// continue: the completion rules hold, or no actionable seat remains.
func (g *GameState) roundOver() bool {
	return g.bettingRoundComplete() || g.ActionSeat == noSeat || g.liveCount() == 0
}

// dealNextStreet moves to the next street, deals its community cards and
// resets the per-street betting fields. First to act on the new street is
// the first live seat clockwise from the dealer.
func (g *GameState) dealNextStreet(dealer *Dealer) {
	switch g.Phase {
	case Preflop:
		g.Phase = Flop
		g.Board = append(g.Board, dealer.Deal(3)...)
	case Flop:
		g.Phase = Turn
		g.Board = append(g.Board, dealer.Deal(1)...)
	case Turn:
		g.Phase = River
		g.Board = append(g.Board, dealer.Deal(1)...)
	default:
		panic("game: cannot deal street in phase " + g.Phase.String())
	}

	g.CurrentBet = 0
	g.LastRaiseSeat = noSeat
	g.LastRaiseAmount = 0
	for _, p := range g.Players {
		if p.live() {
			p.Bet = 0
			p.ActedThisStreet = false
		}
	}
	g.ActionSeat = g.nextLiveSeat(g.DealerSeat)

	// Heads-up with an all-in player: no further betting is permitted, the
	// remaining board runs out back-to-back before the pot is awarded.
	if g.autoRunOut() {
		g.ActionSeat = noSeat
	}
}

// autoRunOut reports whether betting is finished for the rest of the hand:
// two or fewer players contest the pot and at least one of them is all-in.
func (g *GameState) autoRunOut() bool {
	contenders := g.nonFoldedCount()
	return contenders <= 2 && contenders > g.liveCount()
}
