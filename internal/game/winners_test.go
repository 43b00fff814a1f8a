package game

import "testing"

// showdownState builds a 3-player state frozen at showdown with the given
// board and hole cards, pot already accumulated.
func showdownState(t *testing.T, pot int, board []string, holes map[int][]string) *GameState {
	t.Helper()
	g := testState(t, 3, 1000)
	g.DealerSeat = 1
	g.Phase = Showdown
	g.Pot = pot

	var err error
	g.Board, err = ParseCards(board)
	if err != nil {
		t.Fatal(err)
	}
	for seat, tokens := range holes {
		g.player(seat).HoleCards, err = ParseCards(tokens)
		if err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestSingleWinnerTakesFullPot(t *testing.T) {
	g := showdownState(t, 300,
		[]string{"2H", "7D", "9C", "JS", "QD"},
		map[int][]string{
			1: {"AS", "AH"}, // pair of aces
			2: {"KS", "3C"},
			3: {"8S", "4C"},
		})

	winners := g.computeShowdownWinners()
	if len(winners) != 1 {
		t.Fatalf("expected 1 winner, got %d", len(winners))
	}
	if winners[0].Seat != 1 || winners[0].Amount != 300 {
		t.Errorf("winner = seat %d amount %d, want seat 1 amount 300", winners[0].Seat, winners[0].Amount)
	}
	if winners[0].HandDescription != "One Pair" {
		t.Errorf("hand description = %q, want One Pair", winners[0].HandDescription)
	}
	if len(winners[0].BestHand) != 5 {
		t.Errorf("best hand has %d cards, want 5", len(winners[0].BestHand))
	}
}

func TestFoldedPlayersExcludedFromShowdown(t *testing.T) {
	g := showdownState(t, 300,
		[]string{"2H", "7D", "9C", "JS", "QD"},
		map[int][]string{
			1: {"AS", "AH"},
			2: {"KS", "KC"},
			3: {"8S", "4C"},
		})
	g.player(1).Folded = true

	winners := g.computeShowdownWinners()
	if len(winners) != 1 || winners[0].Seat != 2 {
		t.Fatalf("expected seat 2 to win with seat 1 folded, got %+v", winners)
	}
}

func TestThreeWayTieSplitsPotExactly(t *testing.T) {
	// The board plays for everyone: all three split.
	g := showdownState(t, 300,
		[]string{"AS", "KS", "QS", "JS", "TS"},
		map[int][]string{
			1: {"2H", "3D"},
			2: {"2C", "3C"},
			3: {"4H", "5D"},
		})

	winners := g.computeShowdownWinners()
	if len(winners) != 3 {
		t.Fatalf("expected a 3-way split, got %d winners", len(winners))
	}
	total := 0
	for _, w := range winners {
		if w.Amount != 100 {
			t.Errorf("seat %d won %d, want 100", w.Seat, w.Amount)
		}
		total += w.Amount
	}
	if total != 300 {
		t.Errorf("winners received %d, want the full pot 300", total)
	}
}

func TestOddChipsGoClockwiseFromDealer(t *testing.T) {
	g := showdownState(t, 301,
		[]string{"AS", "KS", "QS", "JS", "TS"},
		map[int][]string{
			1: {"2H", "3D"},
			2: {"2C", "3C"},
			3: {"4H", "5D"},
		})

	winners := g.computeShowdownWinners()
	amounts := make(map[int]int)
	total := 0
	for _, w := range winners {
		amounts[w.Seat] = w.Amount
		total += w.Amount
	}
	if total != 301 {
		t.Fatalf("winners received %d, want 301", total)
	}
	// Dealer is seat 1: the odd chip goes to seat 2, the first seat
	// clockwise from the button.
	if amounts[2] != 101 || amounts[3] != 100 || amounts[1] != 100 {
		t.Errorf("split = %v, want odd chip on seat 2", amounts)
	}
}

func TestShowdownAnnotatesPlayers(t *testing.T) {
	g := showdownState(t, 300,
		[]string{"2H", "7D", "9C", "JS", "QD"},
		map[int][]string{
			1: {"AS", "AH"},
			2: {"KS", "3C"},
			3: {"8S", "4C"},
		})

	g.computeShowdownWinners()
	for _, seat := range []int{1, 2, 3} {
		p := g.player(seat)
		if p.HandDescription == "" || p.HandScore == 0 {
			t.Errorf("seat %d missing showdown annotations", seat)
		}
	}
}
