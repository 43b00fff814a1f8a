package game

import (
	"github.com/charmbracelet/log"
)

// PlayerView is the per-seat projection shared with the UI layer.
type PlayerView struct {
	Seat            int      `json:"seat"`
	UserID          string   `json:"userId,omitempty"`
	Stack           int      `json:"stack"`
	Bet             int      `json:"bet"`
	TotalInvested   int      `json:"totalInvested"`
	Folded          bool     `json:"folded"`
	AllIn           bool     `json:"allIn"`
	ActedThisStreet bool     `json:"actedThisStreet"`
	HoleCards       []string `json:"holeCards,omitempty"`
	HandDescription string   `json:"handDescription,omitempty"`
}

// Snapshot is the serializable projection of the game state. It is the wire
// contract with any UI or transport layer and stays stable across internal
// refactors.
type Snapshot struct {
	GameID         string       `json:"gameId"`
	Phase          string       `json:"phase"`
	Board          []string     `json:"board"`
	Pot            int          `json:"pot"`
	CurrentBet     int          `json:"currentBet"`
	DealerSeat     int          `json:"dealerSeat"`
	SmallBlindSeat int          `json:"smallBlindSeat"`
	BigBlindSeat   int          `json:"bigBlindSeat"`
	ActionSeat     int          `json:"actionSeat"`
	HandIndex      int          `json:"handIndex"`
	Players        []PlayerView `json:"players"`
	LastResult     *HandSummary `json:"lastResult,omitempty"`
}

// HandSummary reports how a hand ended and who won what.
type HandSummary struct {
	Reason  string             `json:"reason"` // "fold" or "showdown"
	Pot     int                `json:"pot"`
	Board   []string           `json:"board"`
	Winners []Winner           `json:"winners"`
	Players map[int]PlayerView `json:"players"`
}

// ActionReply is the result of one ApplyAction call. Rejections carry a
// message and leave the state untouched.
type ActionReply struct {
	OK       bool         `json:"ok"`
	Message  string       `json:"message,omitempty"`
	Snapshot Snapshot     `json:"snapshot"`
	Summary  *HandSummary `json:"summary,omitempty"`
}

// Service owns one table's hand lifecycle: it composes the hand starter,
// action processor, phase engine and winner calculator, guards hand
// bootstrap against duplicate calls and produces UI-facing snapshots. Each
// table owns exactly one Service; callers must serialize access to it.
type Service struct {
	ID string

	logger *log.Logger
	state  *GameState
	dealer *Dealer

	handBootstrapped bool
	lastResult       *HandSummary

	// Version counts state-mutating calls, for snapshot persistence keys.
	Version int
}

// NewService seats the given players and returns a table service.
func NewService(logger *log.Logger, id string, smallBlind, bigBlind int, seats []Seating) (*Service, error) {
	state, err := NewGameState(smallBlind, bigBlind, seats)
	if err != nil {
		return nil, err
	}
	return &Service{
		ID:     id,
		logger: logger,
		state:  state,
		dealer: NewDealer(),
	}, nil
}

// StartHand bootstraps a new hand. Calling it again while a hand is in
// flight is a no-op returning the current snapshot; that happens when hosts
// double-deliver, so it is logged rather than treated as an error.
func (s *Service) StartHand() Snapshot {
	return s.StartHandSeeded(0)
}

// StartHandSeeded starts a hand with a forced deck seed for deterministic
// replay. A zero seed means shuffle randomly.
func (s *Service) StartHandSeeded(seed int64) Snapshot {
	if s.handBootstrapped {
		s.logger.Warn("start hand ignored, hand already in progress", "game", s.ID, "hand", s.state.HandIndex)
		return s.Snapshot()
	}
	s.state.startHand(s.dealer, seed)
	s.handBootstrapped = true
	s.Version++
	s.logger.Info("hand started",
		"game", s.ID,
		"hand", s.state.HandIndex,
		"dealer", s.state.DealerSeat,
		"sb", s.state.SmallBlindSeat,
		"bb", s.state.BigBlindSeat,
		"utg", s.state.ActionSeat)

	// Posting the blinds can itself end all betting (heads-up with both
	// blinds all-in). Nothing will call ApplyAction on a table with no
	// actionable seat, so the board must run out and settle here; the
	// snapshot carries the result.
	if ended, reason := s.state.advancePhases(s.dealer); ended {
		if reason != EndReasonShowdown {
			panic("game: phase engine ended hand with reason " + string(reason))
		}
		s.settleShowdown()
	}
	return s.Snapshot()
}

// ApplyAction parses and applies one player action, drives the phase engine
// and settles the hand when it ends.
func (s *Service) ApplyAction(seat int, actionName string, amount int) ActionReply {
	if !s.handBootstrapped {
		return s.reject("no hand in progress")
	}

	action, err := ParseAction(actionName)
	if err != nil {
		return s.reject(err.Error())
	}

	outcome, rerr := s.state.processAction(seat, action, amount)
	if rerr != nil {
		s.logger.Debug("action rejected", "game", s.ID, "seat", seat, "action", actionName, "reason", rerr.Message)
		return s.reject(rerr.Message)
	}
	s.Version++
	s.logger.Info("action applied",
		"game", s.ID,
		"seat", seat,
		"action", actionName,
		"amount", amount,
		"pot", s.state.Pot,
		"phase", s.state.Phase)

	if outcome.HandEnded {
		summary := s.settleFold(outcome.WinnerSeat)
		return ActionReply{OK: true, Snapshot: s.Snapshot(), Summary: summary}
	}

	if ended, reason := s.state.advancePhases(s.dealer); ended {
		if reason != EndReasonShowdown {
			panic("game: phase engine ended hand with reason " + string(reason))
		}
		summary := s.settleShowdown()
		return ActionReply{OK: true, Snapshot: s.Snapshot(), Summary: summary}
	}

	return ActionReply{OK: true, Snapshot: s.Snapshot()}
}

func (s *Service) reject(message string) ActionReply {
	return ActionReply{OK: false, Message: message, Snapshot: s.Snapshot()}
}

// settleFold pays the whole pot to the sole remaining player.
func (s *Service) settleFold(winnerSeat int) *HandSummary {
	pot := s.state.Pot
	winner := s.state.player(winnerSeat)
	winner.Stack += pot
	s.state.Pot = 0

	summary := s.buildSummary(string(EndReasonFold), pot, []Winner{{Seat: winnerSeat, Amount: pot}})
	s.finishHand(summary)
	return summary
}

// settleShowdown evaluates all non-folded hands and credits the winners.
func (s *Service) settleShowdown() *HandSummary {
	pot := s.state.Pot
	winners := s.state.computeShowdownWinners()
	for _, w := range winners {
		s.state.player(w.Seat).Stack += w.Amount
	}
	s.state.Pot = 0

	summary := s.buildSummary(string(EndReasonShowdown), pot, winners)
	s.finishHand(summary)
	return summary
}

func (s *Service) finishHand(summary *HandSummary) {
	s.handBootstrapped = false
	s.lastResult = summary
	s.Version++
	s.logger.Info("hand finished",
		"game", s.ID,
		"hand", s.state.HandIndex,
		"reason", summary.Reason,
		"pot", summary.Pot)
}

func (s *Service) buildSummary(reason string, pot int, winners []Winner) *HandSummary {
	players := make(map[int]PlayerView, len(s.state.Players))
	for seat, p := range s.state.Players {
		players[seat] = playerView(p)
	}
	return &HandSummary{
		Reason:  reason,
		Pot:     pot,
		Board:   CardTokens(s.state.Board),
		Winners: winners,
		Players: players,
	}
}

// Snapshot returns the current UI-facing projection.
func (s *Service) Snapshot() Snapshot {
	views := make([]PlayerView, 0, len(s.state.Players))
	for _, seat := range s.state.seats() {
		views = append(views, playerView(s.state.player(seat)))
	}
	return Snapshot{
		GameID:         s.ID,
		Phase:          s.state.Phase.String(),
		Board:          CardTokens(s.state.Board),
		Pot:            s.state.Pot,
		CurrentBet:     s.state.CurrentBet,
		DealerSeat:     s.state.DealerSeat,
		SmallBlindSeat: s.state.SmallBlindSeat,
		BigBlindSeat:   s.state.BigBlindSeat,
		ActionSeat:     s.state.ActionSeat,
		HandIndex:      s.state.HandIndex,
		Players:        views,
		LastResult:     s.lastResult,
	}
}

// LegalActions returns the action names currently legal for a seat, for
// hosts prompting a player.
func (s *Service) LegalActions(seat int) []string {
	if !s.handBootstrapped {
		return nil
	}
	actions := s.state.LegalActions(seat)
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.String()
	}
	return names
}

// HandInProgress reports whether a hand is currently being played.
func (s *Service) HandInProgress() bool {
	return s.handBootstrapped
}

func playerView(p *PlayerState) PlayerView {
	return PlayerView{
		Seat:            p.Seat,
		UserID:          p.UserID,
		Stack:           p.Stack,
		Bet:             p.Bet,
		TotalInvested:   p.TotalInvested,
		Folded:          p.Folded,
		AllIn:           p.AllIn,
		ActedThisStreet: p.ActedThisStreet,
		HoleCards:       CardTokens(p.HoleCards),
		HandDescription: p.HandDescription,
	}
}
