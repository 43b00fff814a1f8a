package game

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// PersistedState is the full durable image of one table, everything needed
// to resume mid-hand: the wire snapshot plus the internals the snapshot
// deliberately omits (undealt deck, raise bookkeeping, stakes).
type PersistedState struct {
	Snapshot Snapshot `json:"snapshot"`

	SmallBlind      int      `json:"smallBlind"`
	BigBlind        int      `json:"bigBlind"`
	LastRaiseSeat   int      `json:"lastRaiseSeat"`
	LastRaiseAmount int      `json:"lastRaiseAmount"`
	Deck            []string `json:"deck"`
	HandInProgress  bool     `json:"handInProgress"`
	Version         int      `json:"version"`
}

// PersistedState captures the table for durable storage.
func (s *Service) PersistedState() PersistedState {
	return PersistedState{
		Snapshot:        s.Snapshot(),
		SmallBlind:      s.state.SmallBlind,
		BigBlind:        s.state.BigBlind,
		LastRaiseSeat:   s.state.LastRaiseSeat,
		LastRaiseAmount: s.state.LastRaiseAmount,
		Deck:            CardTokens(s.dealer.remainingCards()),
		HandInProgress:  s.handBootstrapped,
		Version:         s.Version,
	}
}

// Restore rebuilds a Service from a persisted image. Recovery is defined as
// loading the latest stored state and resuming; there is no action-log
// replay.
func Restore(logger *log.Logger, ps PersistedState) (*Service, error) {
	snap := ps.Snapshot

	phase, err := parsePhase(snap.Phase)
	if err != nil {
		return nil, fmt.Errorf("restoring game %s: %w", snap.GameID, err)
	}
	board, err := ParseCards(snap.Board)
	if err != nil {
		return nil, fmt.Errorf("restoring game %s board: %w", snap.GameID, err)
	}
	deck, err := ParseCards(ps.Deck)
	if err != nil {
		return nil, fmt.Errorf("restoring game %s deck: %w", snap.GameID, err)
	}

	players := make(map[int]*PlayerState, len(snap.Players))
	for _, v := range snap.Players {
		hole, err := ParseCards(v.HoleCards)
		if err != nil {
			return nil, fmt.Errorf("restoring game %s seat %d: %w", snap.GameID, v.Seat, err)
		}
		players[v.Seat] = &PlayerState{
			Seat:            v.Seat,
			UserID:          v.UserID,
			Stack:           v.Stack,
			Bet:             v.Bet,
			TotalInvested:   v.TotalInvested,
			Folded:          v.Folded,
			AllIn:           v.AllIn,
			ActedThisStreet: v.ActedThisStreet,
			HoleCards:       hole,
			HandDescription: v.HandDescription,
		}
	}

	state := &GameState{
		Players:         players,
		Board:           board,
		Phase:           phase,
		Pot:             snap.Pot,
		CurrentBet:      snap.CurrentBet,
		DealerSeat:      snap.DealerSeat,
		SmallBlindSeat:  snap.SmallBlindSeat,
		BigBlindSeat:    snap.BigBlindSeat,
		ActionSeat:      snap.ActionSeat,
		LastRaiseSeat:   ps.LastRaiseSeat,
		LastRaiseAmount: ps.LastRaiseAmount,
		HandIndex:       snap.HandIndex,
		SmallBlind:      ps.SmallBlind,
		BigBlind:        ps.BigBlind,
	}

	return &Service{
		ID:               snap.GameID,
		logger:           logger,
		state:            state,
		dealer:           restoreDealer(deck),
		handBootstrapped: ps.HandInProgress,
		lastResult:       snap.LastResult,
		Version:          ps.Version,
	}, nil
}
