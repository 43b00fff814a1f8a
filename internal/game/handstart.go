package game

// rotatePositions assigns dealer, small blind and big blind seats for the
// next hand. The first hand ever uses the lowest seat as dealer; after that
// the button moves to the next seated seat clockwise. Heads-up uses the
// standard convention: the dealer posts the small blind.
func (g *GameState) rotatePositions() {
	if g.HandIndex == 0 {
		g.DealerSeat = g.seats()[0]
	} else {
		g.DealerSeat = g.nextSeat(g.DealerSeat)
	}

	if len(g.Players) == 2 {
		g.SmallBlindSeat = g.DealerSeat
		g.BigBlindSeat = g.nextSeat(g.DealerSeat)
	} else {
		g.SmallBlindSeat = g.nextSeat(g.DealerSeat)
		g.BigBlindSeat = g.nextSeat(g.SmallBlindSeat)
	}
}

// startHand bootstraps a new hand: fresh shuffled deck, per-hand resets,
// position rotation, hole cards, blinds and the first action seat. A
// non-zero seed forces a deterministic shuffle for replay.
func (g *GameState) startHand(dealer *Dealer, seed int64) {
	if seed != 0 {
		dealer.ShuffleSeeded(seed)
	} else {
		dealer.Shuffle()
	}

	g.Board = nil
	g.Phase = Preflop
	g.Pot = 0
	g.CurrentBet = 0
	g.LastRaiseSeat = noSeat
	g.LastRaiseAmount = g.BigBlind

	g.rotatePositions()

	for _, p := range g.Players {
		p.resetForNewHand()
	}

	// Round one to every seat, then round two; never two at once to a seat.
	seats := g.seats()
	for round := 0; round < 2; round++ {
		for _, seat := range seats {
			p := g.player(seat)
			p.HoleCards = append(p.HoleCards, dealer.Deal(1)...)
		}
	}

	g.Pot += postBlind(g.player(g.SmallBlindSeat), g.SmallBlind)
	bbPaid := postBlind(g.player(g.BigBlindSeat), g.BigBlind)
	g.Pot += bbPaid
	// A short-stacked big blind lowers the price of entry.
	g.CurrentBet = bbPaid

	g.ActionSeat = g.nextLiveSeat(g.BigBlindSeat)
	g.HandIndex++
}
