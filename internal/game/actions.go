package game

import "fmt"

// Action represents a player action
type Action int

const (
	Fold Action = iota
	Check
	Call
	Bet
	Raise
	AllIn
)

func (a Action) String() string {
	return [...]string{"fold", "check", "call", "bet", "raise", "allin"}[a]
}

// ParseAction maps a wire action name to an Action. Unknown names are a
// boundary-level rule error, never a panic.
func ParseAction(name string) (Action, error) {
	switch name {
	case "fold":
		return Fold, nil
	case "check":
		return Check, nil
	case "call":
		return Call, nil
	case "bet":
		return Bet, nil
	case "raise":
		return Raise, nil
	case "allin":
		return AllIn, nil
	default:
		return 0, fmt.Errorf("unrecognized action %q", name)
	}
}

// EndReason says why a hand terminated.
type EndReason string

const (
	EndReasonFold     EndReason = "fold"
	EndReasonShowdown EndReason = "showdown"
)

// actionOutcome is the processor's report for one accepted action.
type actionOutcome struct {
	HandEnded  bool
	Reason     EndReason
	WinnerSeat int // sole remaining seat on fold-to-one
}

// processAction validates and applies one player action: turn and legality
// checks, chip mutation via the betting engine, table-level pot and
// current-bet bookkeeping, fold-to-one detection and action-seat rotation.
// A RuleError return means nothing was mutated.
func (g *GameState) processAction(seat int, action Action, amount int) (actionOutcome, *RuleError) {
	p, ok := g.Players[seat]
	if !ok {
		return actionOutcome{}, ruleErrorf("no player at seat %d", seat)
	}
	if p.Folded {
		return actionOutcome{}, ruleErrorf("seat %d has already folded", seat)
	}
	if p.AllIn {
		return actionOutcome{}, ruleErrorf("seat %d is all-in and cannot act", seat)
	}
	if seat != g.ActionSeat {
		return actionOutcome{}, ruleErrorf("not seat %d's turn, action is on seat %d", seat, g.ActionSeat)
	}
	if !actionAllowed(action, legalActions(p, g.CurrentBet, g.LastRaiseAmount, g.Players)) {
		return actionOutcome{}, ruleErrorf("action %s is not legal for seat %d right now", action, seat)
	}

	res, rerr := executeAction(p, action, amount, g.CurrentBet, g.LastRaiseAmount, g.Players)
	if rerr != nil {
		return actionOutcome{}, rerr
	}

	g.Pot += res.ChipsUsed
	if res.NewBet > g.CurrentBet {
		// Only true bets and raises reopen minimum-raise math; a shove
		// above the current bet raises the price without resetting it.
		if action == Bet || action == Raise {
			g.LastRaiseAmount = res.NewBet - g.CurrentBet
			g.LastRaiseSeat = seat
		}
		g.CurrentBet = res.NewBet
	}

	if action == Fold && g.nonFoldedCount() == 1 {
		winner := g.soleNonFoldedSeat()
		g.ActionSeat = noSeat
		return actionOutcome{HandEnded: true, Reason: EndReasonFold, WinnerSeat: winner}, nil
	}

	g.ActionSeat = g.nextLiveSeat(seat)
	return actionOutcome{}, nil
}

func actionAllowed(action Action, legal []Action) bool {
	for _, a := range legal {
		if a == action {
			return true
		}
	}
	return false
}

// LegalActions exposes the current legal action set for a seat, for hosts
// that prompt players. Unknown seats get an empty set.
func (g *GameState) LegalActions(seat int) []Action {
	p, ok := g.Players[seat]
	if !ok || seat != g.ActionSeat {
		return nil
	}
	return legalActions(p, g.CurrentBet, g.LastRaiseAmount, g.Players)
}
