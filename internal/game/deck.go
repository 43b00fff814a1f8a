package game

import (
	rand "math/rand/v2"

	"github.com/feltworks/holdem/internal/randutil"
)

// Dealer owns a 52-card deck and a dealing cursor. Each table owns exactly
// one Dealer; the random source is never shared between tables.
type Dealer struct {
	cards []Card
	next  int
	rng   *rand.Rand
}

// NewDealer creates a dealer with a freshly built, unshuffled deck and a
// non-deterministic random source.
func NewDealer() *Dealer {
	return &Dealer{
		cards: buildDeck(),
		rng:   randutil.NewNondeterministic(),
	}
}

func buildDeck() []Card {
	cards := make([]Card, 0, 52)
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Shuffle rebuilds the deck, resets the cursor and runs a Fisher-Yates
// shuffle with the dealer's current random source.
func (d *Dealer) Shuffle() {
	d.cards = buildDeck()
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// ShuffleSeeded shuffles deterministically from the given seed, then re-arms
// the dealer with a non-deterministic source so the seed only affects this
// one shuffle. Used for replay and testing.
func (d *Dealer) ShuffleSeeded(seed int64) {
	d.rng = randutil.New(seed)
	d.Shuffle()
	d.rng = randutil.NewNondeterministic()
}

// Deal consumes n cards from the deck. Dealing past the end of the deck is a
// programming defect (normal play needs at most 25 cards) and panics.
func (d *Dealer) Deal(n int) []Card {
	if d.next+n > len(d.cards) {
		panic("game: deck exhausted")
	}
	cards := d.cards[d.next : d.next+n]
	d.next += n
	return cards
}

// Remaining returns the number of undealt cards.
func (d *Dealer) Remaining() int {
	return len(d.cards) - d.next
}

// remainingCards returns the undealt portion of the deck, used for
// full-state persistence so a recovered hand deals the same board.
func (d *Dealer) remainingCards() []Card {
	out := make([]Card, d.Remaining())
	copy(out, d.cards[d.next:])
	return out
}

// restoreDealer rebuilds a dealer whose deck holds exactly the given
// undealt cards, in order.
func restoreDealer(cards []Card) *Dealer {
	d := &Dealer{
		cards: make([]Card, len(cards)),
		rng:   randutil.NewNondeterministic(),
	}
	copy(d.cards, cards)
	return d
}
