package game

import "testing"

func TestNewGameStateRejectsBadSeating(t *testing.T) {
	cases := []struct {
		name  string
		seats []Seating
	}{
		{"one seat", []Seating{
			{Seat: 1, Stack: 100},
		}},
		{"duplicate seats", []Seating{
			{Seat: 1, Stack: 100},
			{Seat: 1, Stack: 100},
		}},
		{"zero stack", []Seating{
			{Seat: 1, Stack: 100},
			{Seat: 2, Stack: 0},
		}},
		{"negative stack", []Seating{
			{Seat: 1, Stack: 100},
			{Seat: 2, Stack: -50},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewGameState(5, 10, tc.seats); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestNewGameStateSeatsPlayers(t *testing.T) {
	g, err := NewGameState(5, 10, []Seating{
		{Seat: 3, Stack: 500, UserID: "u-3"},
		{Seat: 1, Stack: 1000},
	})
	if err != nil {
		t.Fatal(err)
	}

	seats := g.seats()
	if len(seats) != 2 || seats[0] != 1 || seats[1] != 3 {
		t.Errorf("seats = %v, want ascending [1 3]", seats)
	}
	if g.player(3).UserID != "u-3" || g.player(3).Stack != 500 {
		t.Errorf("seat 3 not seated as given: %+v", g.player(3))
	}
	if g.ActionSeat != noSeat || g.DealerSeat != noSeat {
		t.Error("fresh table should have no action or dealer seat")
	}
}
