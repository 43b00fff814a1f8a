// Package game implements the authoritative rules engine for multi-seat
// Texas Hold'em: dealing, blind rotation, betting-round legality and
// settlement, street progression and 7-card hand evaluation with pot
// distribution.
//
// The main type is Service, which owns one table's hand lifecycle:
//
//	svc, err := game.NewService(logger, "table-1", 5, 10, []game.Seating{
//	    {Seat: 1, Stack: 1000},
//	    {Seat: 2, Stack: 1000},
//	    {Seat: 3, Stack: 1000},
//	})
//	snap := svc.StartHand()
//	reply := svc.ApplyAction(snap.ActionSeat, "call", 0)
//
// Rejected actions come back as ActionReply{OK: false} and never mutate
// state; programming defects (dealing from an exhausted deck, internal seat
// lookups that miss) panic.
//
// Bet, raise and call sizing is capped to the effective stack: the largest
// wager at least one live opponent could still match. This keeps the engine
// free of multi-way side-pot settlement; an explicit all-in is the one
// action that can exceed the cap and is knowingly settled without side pots.
//
// The engine is synchronous, pure computation. Each live table must be
// owned by exactly one goroutine at a time; different tables are fully
// independent.
package game
