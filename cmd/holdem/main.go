package main

import (
	"fmt"
	rand "math/rand/v2"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/feltworks/holdem/internal/config"
	"github.com/feltworks/holdem/internal/game"
	"github.com/feltworks/holdem/internal/gameid"
	"github.com/feltworks/holdem/internal/randutil"
	"github.com/feltworks/holdem/internal/store"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1D7D4F")).
			Padding(0, 1).
			Bold(true)

	boardStyle  = lipgloss.NewStyle().Bold(true)
	winnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

type CLI struct {
	Config   string      `short:"c" help:"Path to HCL config file" default:"holdem.hcl"`
	LogLevel string      `help:"Log level override (debug, info, warn, error)"`
	Play     PlayCmd     `cmd:"" help:"Self-play hands on the first configured table" default:"withargs"`
	Simulate SimulateCmd `cmd:"" help:"Run every configured table in parallel"`
}

type PlayCmd struct {
	Hands int   `short:"n" help:"Number of hands to play" default:"3"`
	Seed  int64 `help:"Deck seed for the first hand (0 = random)"`
}

type SimulateCmd struct {
	Hands int `short:"n" help:"Hands per table" default:"100"`
}

type runContext struct {
	cfg    *config.Config
	logger *log.Logger
	db     *store.Store
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("Texas Hold'em rules engine."))

	cfg, err := config.Load(cli.Config)
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	logger := log.New(os.Stderr)
	level := cfg.LogLevel
	if cli.LogLevel != "" {
		level = cli.LogLevel
	}
	if parsed, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(parsed)
	}

	db, err := store.Open(cfg.SnapshotDB)
	if err != nil {
		log.Fatal("Failed to open snapshot store", "error", err)
	}
	defer db.Close()

	err = ctx.Run(&runContext{cfg: cfg, logger: logger, db: db})
	ctx.FatalIfErrorf(err)
}

func (c *PlayCmd) Run(ctx *runContext) error {
	if len(ctx.cfg.Tables) == 0 {
		return fmt.Errorf("no tables configured")
	}
	table := ctx.cfg.Tables[0]
	svc, err := newTable(ctx, table)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf(" %s  %d/%d ", table.Name, table.SmallBlind, table.BigBlind)))
	fmt.Println()

	rng := randutil.NewNondeterministic()
	for i := 0; i < c.Hands; i++ {
		var snap game.Snapshot
		if i == 0 && c.Seed != 0 {
			snap = svc.StartHandSeeded(c.Seed)
		} else {
			snap = svc.StartHand()
		}

		summary, err := runHand(ctx, svc, snap, rng)
		if err != nil {
			return err
		}
		printSummary(snap.HandIndex, summary)
	}
	return nil
}

func (c *SimulateCmd) Run(ctx *runContext) error {
	var g errgroup.Group

	// One goroutine per table; each table is exclusively owned by its
	// runner, so the tables share nothing.
	for _, table := range ctx.cfg.Tables {
		g.Go(func() error {
			svc, err := newTable(ctx, table)
			if err != nil {
				return err
			}

			rng := randutil.NewNondeterministic()
			for i := 0; i < c.Hands; i++ {
				snap := svc.StartHand()
				if _, err := runHand(ctx, svc, snap, rng); err != nil {
					return fmt.Errorf("table %s: %w", table.Name, err)
				}
			}
			ctx.logger.Info("Table simulation complete", "table", table.Name, "hands", c.Hands)
			return nil
		})
	}
	return g.Wait()
}

func newTable(ctx *runContext, table config.TableConfig) (*game.Service, error) {
	seats := make([]game.Seating, len(table.Seats))
	for i, s := range table.Seats {
		seats[i] = game.Seating{Seat: s.Number, Stack: s.Stack, UserID: s.UserID}
	}
	svc, err := game.NewService(ctx.logger, gameid.Generate(), table.SmallBlind, table.BigBlind, seats)
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", table.Name, err)
	}
	return svc, nil
}

// runHand drives one hand to completion with a simple mixed policy,
// snapshotting the table after every accepted action.
func runHand(ctx *runContext, svc *game.Service, snap game.Snapshot, rng *rand.Rand) (*game.HandSummary, error) {
	if err := ctx.db.Save(svc.ID, svc.PersistedState()); err != nil {
		return nil, err
	}

	for {
		// Blinds alone can settle a hand (both posters all-in); the result
		// then arrives on the start snapshot rather than an action reply.
		if !svc.HandInProgress() {
			return snap.LastResult, nil
		}

		seat := snap.ActionSeat
		name, amount := chooseAction(svc, snap, seat, rng)

		reply := svc.ApplyAction(seat, name, amount)
		if !reply.OK {
			// The cheap policy occasionally sizes a bet or raise that the
			// engine rejects; one of the stand-pat actions always works.
			for _, fallback := range []string{"check", "call", "allin"} {
				if reply = svc.ApplyAction(seat, fallback, 0); reply.OK {
					break
				}
			}
			if !reply.OK {
				return nil, fmt.Errorf("seat %d stuck: %s", seat, reply.Message)
			}
		}

		if err := ctx.db.Save(svc.ID, svc.PersistedState()); err != nil {
			return nil, err
		}
		if reply.Summary != nil {
			return reply.Summary, nil
		}
		snap = reply.Snapshot
	}
}

// chooseAction is a calling station with an occasional aggressive streak.
func chooseAction(svc *game.Service, snap game.Snapshot, seat int, rng *rand.Rand) (string, int) {
	legal := svc.LegalActions(seat)

	has := func(name string) bool {
		for _, l := range legal {
			if l == name {
				return true
			}
		}
		return false
	}

	roll := rng.IntN(10)
	switch {
	case roll == 0 && has("raise"):
		return "raise", snap.CurrentBet * 2
	case roll == 0 && has("bet"):
		return "bet", snap.CurrentBet + 10
	case roll == 1 && has("fold"):
		return "fold", 0
	case has("check"):
		return "check", 0
	case has("call"):
		return "call", 0
	default:
		return "allin", 0
	}
}

func printSummary(handIndex int, summary *game.HandSummary) {
	fmt.Printf("hand %d  board %s  pot %d\n",
		handIndex,
		boardStyle.Render(fmt.Sprintf("%v", summary.Board)),
		summary.Pot)
	for _, w := range summary.Winners {
		line := fmt.Sprintf("  seat %d wins %d", w.Seat, w.Amount)
		if w.HandDescription != "" {
			line += fmt.Sprintf(" with %s %v", w.HandDescription, w.BestHand)
		}
		fmt.Println(winnerStyle.Render(line))
	}
	fmt.Println()
}
