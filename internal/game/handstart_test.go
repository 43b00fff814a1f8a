package game

import "testing"

func TestFirstHandUsesLowestSeatAsDealer(t *testing.T) {
	g := testState(t, 3, 1000)
	g.startHand(NewDealer(), 0)

	if g.DealerSeat != 1 {
		t.Errorf("first hand dealer = %d, want lowest seat 1", g.DealerSeat)
	}
	if g.SmallBlindSeat != 2 || g.BigBlindSeat != 3 {
		t.Errorf("blinds = %d/%d, want 2/3", g.SmallBlindSeat, g.BigBlindSeat)
	}
	if g.ActionSeat != 1 {
		t.Errorf("under the gun = %d, want 1 (next after big blind)", g.ActionSeat)
	}
	if g.HandIndex != 1 {
		t.Errorf("hand index = %d, want 1", g.HandIndex)
	}
}

func TestDealerRotatesEachHand(t *testing.T) {
	g := testState(t, 3, 1000)
	dealer := NewDealer()

	seen := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		g.startHand(dealer, 0)
		seen = append(seen, g.DealerSeat)
		// Positions must follow the button.
		if g.SmallBlindSeat != g.nextSeat(g.DealerSeat) {
			t.Errorf("hand %d: small blind %d does not follow dealer %d", i+1, g.SmallBlindSeat, g.DealerSeat)
		}
		if g.BigBlindSeat != g.nextSeat(g.SmallBlindSeat) {
			t.Errorf("hand %d: big blind %d does not follow small blind %d", i+1, g.BigBlindSeat, g.SmallBlindSeat)
		}
	}

	if seen[0] == seen[1] || seen[1] == seen[2] || seen[0] == seen[2] {
		t.Errorf("dealer did not rotate: %v", seen)
	}
}

func TestHeadsUpDealerPostsSmallBlind(t *testing.T) {
	g := testState(t, 2, 1000)
	g.startHand(NewDealer(), 0)

	if g.SmallBlindSeat != g.DealerSeat {
		t.Errorf("heads-up small blind %d should be the dealer %d", g.SmallBlindSeat, g.DealerSeat)
	}
	if g.BigBlindSeat == g.DealerSeat {
		t.Error("heads-up big blind must be the non-dealer seat")
	}
	// Dealer acts first preflop in heads-up.
	if g.ActionSeat != g.DealerSeat {
		t.Errorf("heads-up first to act = %d, want dealer %d", g.ActionSeat, g.DealerSeat)
	}
}

func TestStartHandPostsBlindsAndDeals(t *testing.T) {
	g := testState(t, 3, 1000)
	g.startHand(NewDealer(), 0)

	if g.Pot != 15 {
		t.Errorf("pot = %d, want blinds total 15", g.Pot)
	}
	if g.CurrentBet != 10 {
		t.Errorf("current bet = %d, want big blind 10", g.CurrentBet)
	}
	if g.LastRaiseAmount != 10 {
		t.Errorf("last raise amount = %d, want big blind 10", g.LastRaiseAmount)
	}

	sb := g.player(g.SmallBlindSeat)
	bb := g.player(g.BigBlindSeat)
	if sb.Stack != 995 || sb.Bet != 5 || sb.TotalInvested != 5 {
		t.Errorf("small blind state %d/%d/%d, want 995/5/5", sb.Stack, sb.Bet, sb.TotalInvested)
	}
	if bb.Stack != 990 || bb.Bet != 10 {
		t.Errorf("big blind state %d/%d, want 990/10", bb.Stack, bb.Bet)
	}

	for seat, p := range g.Players {
		if len(p.HoleCards) != 2 {
			t.Errorf("seat %d has %d hole cards, want 2", seat, len(p.HoleCards))
		}
	}
	if g.Phase != Preflop || len(g.Board) != 0 {
		t.Errorf("phase/board = %s/%d cards, want preflop/0", g.Phase, len(g.Board))
	}
}

func TestShortStackedBigBlindLowersCurrentBet(t *testing.T) {
	g, err := NewGameState(5, 10, []Seating{
		{Seat: 1, Stack: 1000},
		{Seat: 2, Stack: 1000},
		{Seat: 3, Stack: 4}, // will be big blind on the first hand
	})
	if err != nil {
		t.Fatal(err)
	}
	g.startHand(NewDealer(), 0)

	if g.CurrentBet != 4 {
		t.Errorf("current bet = %d, want the 4 actually paid", g.CurrentBet)
	}
	bb := g.player(3)
	if !bb.AllIn || bb.Stack != 0 {
		t.Errorf("short big blind should be all-in with empty stack, got allIn=%v stack=%d", bb.AllIn, bb.Stack)
	}
}

func TestStartHandResetsPerHandFields(t *testing.T) {
	g := testState(t, 3, 1000)
	dealer := NewDealer()
	g.startHand(dealer, 0)

	p := g.player(1)
	p.Folded = true
	p.HandDescription = "Flush"
	g.Pot = 500
	g.Board = []Card{NewCard(Ace, Spades)}

	g.startHand(dealer, 0)
	if p.Folded || p.HandDescription != "" {
		t.Error("per-hand player fields were not reset")
	}
	if len(g.Board) != 0 {
		t.Error("board was not reset")
	}
}

func TestSeededDealIsReproducible(t *testing.T) {
	a := testState(t, 3, 1000)
	b := testState(t, 3, 1000)
	a.startHand(NewDealer(), 99)
	b.startHand(NewDealer(), 99)

	for seat := range a.Players {
		ca := CardTokens(a.player(seat).HoleCards)
		cb := CardTokens(b.player(seat).HoleCards)
		if ca[0] != cb[0] || ca[1] != cb[1] {
			t.Fatalf("seat %d dealt %v vs %v with the same seed", seat, ca, cb)
		}
	}
}
