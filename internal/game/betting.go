package game

import "fmt"

// RuleError is a rejected player action: an expected, frequent outcome that
// must never mutate state. It is distinct from programming-invariant
// violations, which panic.
type RuleError struct {
	Message string
}

func (e *RuleError) Error() string { return e.Message }

func ruleErrorf(format string, args ...any) *RuleError {
	return &RuleError{Message: fmt.Sprintf(format, args...)}
}

// moveResult reports what a successful chip mutation did. The action
// processor uses it to update the table-level pot and current bet.
type moveResult struct {
	ChipsUsed int // chips moved from the player's stack
	NewBet    int // the player's street bet after the action
}

// effectiveStack computes the largest wager the player can make that every
// live opponent could still match: min(own stack, min over non-folded
// opponents of their stack plus street bet). Capping bet sizing this way is
// a deliberate simplification that keeps the engine free of multi-way side
// pots; only an explicit ALLIN can exceed it.
func effectiveStack(p *PlayerState, players map[int]*PlayerState) int {
	eff := p.Stack
	for _, opp := range players {
		if opp.Seat == p.Seat || opp.Folded {
			continue
		}
		if matchable := opp.Stack + opp.Bet; matchable < eff {
			eff = matchable
		}
	}
	return eff
}

// executeAction applies one action to a single player's chip fields. It
// never touches the table-level pot or current bet. Validation happens
// before any mutation, so a returned RuleError leaves the player untouched.
func executeAction(p *PlayerState, action Action, amount, currentBet, lastRaiseAmount int, players map[int]*PlayerState) (moveResult, *RuleError) {
	callAmount := currentBet - p.Bet
	eff := effectiveStack(p, players)

	switch action {
	case Fold:
		p.Folded = true
		p.ActedThisStreet = true
		return moveResult{ChipsUsed: 0, NewBet: p.Bet}, nil

	case Check:
		if callAmount > 0 {
			return moveResult{}, ruleErrorf("cannot check, %d to call", callAmount)
		}
		p.ActedThisStreet = true
		return moveResult{ChipsUsed: 0, NewBet: p.Bet}, nil

	case Call:
		if callAmount <= 0 {
			// Nothing to call; stand pat but still mark acted.
			p.ActedThisStreet = true
			return moveResult{ChipsUsed: 0, NewBet: p.Bet}, nil
		}
		chips := min(callAmount, eff)
		commit(p, chips)
		return moveResult{ChipsUsed: chips, NewBet: p.Bet}, nil

	case Bet:
		if currentBet != 0 {
			return moveResult{}, ruleErrorf("cannot bet, current bet is %d; raise instead", currentBet)
		}
		if amount <= 0 {
			return moveResult{}, ruleErrorf("bet must be positive")
		}
		if amount > eff {
			return moveResult{}, ruleErrorf("bet %d exceeds effective stack %d", amount, eff)
		}
		commit(p, amount)
		return moveResult{ChipsUsed: amount, NewBet: p.Bet}, nil

	case Raise:
		if currentBet == 0 {
			return moveResult{}, ruleErrorf("cannot raise, no bet to raise; bet instead")
		}
		minRaiseTo := currentBet + lastRaiseAmount
		if amount < minRaiseTo {
			return moveResult{}, ruleErrorf("raise to %d below minimum %d", amount, minRaiseTo)
		}
		chips := amount - p.Bet
		if chips > eff {
			return moveResult{}, ruleErrorf("raise to %d needs %d chips, exceeds effective stack %d", amount, chips, eff)
		}
		commit(p, chips)
		return moveResult{ChipsUsed: chips, NewBet: p.Bet}, nil

	case AllIn:
		if p.Stack <= 0 {
			return moveResult{}, ruleErrorf("no chips to go all-in with")
		}
		// A genuine shove: always the full stack, never capped to the
		// effective stack.
		chips := p.Stack
		commit(p, chips)
		return moveResult{ChipsUsed: chips, NewBet: p.Bet}, nil

	default:
		return moveResult{}, ruleErrorf("unrecognized action")
	}
}

// commit moves chips from the player's stack into the pot, mirroring the
// amount on the street bet and the hand total.
func commit(p *PlayerState, chips int) {
	p.Stack -= chips
	p.Bet += chips
	p.TotalInvested += chips
	p.ActedThisStreet = true
	if p.Stack == 0 {
		p.AllIn = true
	}
}

// legalActions returns the actions the player may currently take. Folded and
// all-in players always get an empty set. RAISE additionally requires a live
// opponent able to respond and enough effective stack for a minimum raise.
func legalActions(p *PlayerState, currentBet, lastRaiseAmount int, players map[int]*PlayerState) []Action {
	if !p.live() {
		return nil
	}

	callAmount := currentBet - p.Bet
	eff := effectiveStack(p, players)

	var actions []Action
	if callAmount > 0 {
		actions = append(actions, Fold, Call)
	} else {
		actions = append(actions, Check)
	}

	if currentBet == 0 && eff > 0 {
		actions = append(actions, Bet)
	}

	if currentBet > 0 && hasRespondingOpponent(p, players) {
		if minRaiseChips := currentBet + lastRaiseAmount - p.Bet; minRaiseChips <= eff {
			actions = append(actions, Raise)
		}
	}

	if p.Stack > 0 {
		actions = append(actions, AllIn)
	}
	return actions
}

// hasRespondingOpponent reports whether at least one other non-folded,
// non-all-in player could respond to an aggressive action.
func hasRespondingOpponent(p *PlayerState, players map[int]*PlayerState) bool {
	for _, opp := range players {
		if opp.Seat != p.Seat && opp.live() {
			return true
		}
	}
	return false
}

// bettingRoundComplete reports whether the current betting round is settled:
// one contender left, nobody left who can act, or every live player has
// acted and matched the current bet. A bet above currentBet still counts as
// matched: a small blind over-posts whenever a short big blind lowers
// currentBet below the small-blind amount.
func (g *GameState) bettingRoundComplete() bool {
	if g.nonFoldedCount() <= 1 {
		return true
	}
	if g.liveCount() == 0 {
		return true
	}
	for _, p := range g.Players {
		if !p.live() {
			continue
		}
		if !p.ActedThisStreet {
			return false
		}
		if p.Bet < g.CurrentBet {
			return false
		}
	}
	return true
}

// postBlind forces a blind payment, clamped to the poster's stack. Blinds
// bypass legality checks but use the same chip-mutation path as bets; the
// poster has not yet acted this street.
func postBlind(p *PlayerState, amount int) int {
	chips := min(amount, p.Stack)
	commit(p, chips)
	p.ActedThisStreet = false
	return chips
}
