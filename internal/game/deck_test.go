package game

import "testing"

func TestShuffleProducesFullDeck(t *testing.T) {
	d := NewDealer()
	d.Shuffle()

	seen := make(map[Card]bool)
	for _, c := range d.Deal(52) {
		if seen[c] {
			t.Fatalf("duplicate card %s in shuffled deck", c)
		}
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Fatalf("expected 52 unique cards, got %d", len(seen))
	}
}

func TestShuffleSeededIsDeterministic(t *testing.T) {
	a := NewDealer()
	b := NewDealer()
	a.ShuffleSeeded(42)
	b.ShuffleSeeded(42)

	cardsA := a.Deal(52)
	cardsB := b.Deal(52)
	for i := range cardsA {
		if cardsA[i] != cardsB[i] {
			t.Fatalf("seeded shuffles diverge at card %d: %s vs %s", i, cardsA[i], cardsB[i])
		}
	}
}

func TestDealPastEndPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("dealing past the end of the deck should panic")
		}
	}()

	d := NewDealer()
	d.Shuffle()
	d.Deal(52)
	d.Deal(1)
}

func TestRemaining(t *testing.T) {
	d := NewDealer()
	d.Shuffle()
	d.Deal(7)
	if got := d.Remaining(); got != 45 {
		t.Errorf("Remaining() = %d, want 45", got)
	}
}
