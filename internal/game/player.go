package game

// PlayerState holds one seated player's chips and per-hand flags. It is
// created once at seating time and reset, not recreated, at the start of
// every hand.
type PlayerState struct {
	Seat   int
	UserID string

	Stack int // chips not currently wagered, never negative
	Bet   int // chips wagered on the current street only

	// TotalInvested is the player's wager across the whole hand, reset only
	// at hand start. Showdown settlement reads it.
	TotalInvested int

	Folded          bool
	AllIn           bool
	ActedThisStreet bool

	HoleCards []Card

	// Showdown annotations, populated by the winner calculator.
	HandScore       int
	HandDescription string
}

// resetForNewHand clears per-hand state while preserving seat and stack.
func (p *PlayerState) resetForNewHand() {
	p.Bet = 0
	p.TotalInvested = 0
	p.Folded = false
	p.AllIn = false
	p.ActedThisStreet = false
	p.HoleCards = nil
	p.HandScore = 0
	p.HandDescription = ""
}

// live reports whether the player can still take a betting action this
// street: seated in the hand, not folded, not all-in.
func (p *PlayerState) live() bool {
	return !p.Folded && !p.AllIn
}
