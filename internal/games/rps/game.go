// Package rps implements a five-round rock-paper-scissors match against a
// seeded random computer.
package rps

import (
	"fmt"
	"time"

	"github.com/vovakirdan/arcade-cores/internal/config"
	"github.com/vovakirdan/arcade-cores/internal/core"
	"github.com/vovakirdan/arcade-cores/internal/games/round"
	"github.com/vovakirdan/arcade-cores/internal/ledger"
	"github.com/vovakirdan/arcade-cores/internal/phase"
	"github.com/vovakirdan/arcade-cores/internal/registry"
)

// Choice is a hand sign. Its value is the SelectCell index that picks it.
type Choice int

const (
	Rock Choice = iota
	Paper
	Scissors
)

func (c Choice) String() string {
	switch c {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return "?"
	}
}

// Beats reports whether c wins against o.
func (c Choice) Beats(o Choice) bool {
	return (c == Rock && o == Scissors) ||
		(c == Paper && o == Rock) ||
		(c == Scissors && o == Paper)
}

// Outcome is the result of one round from the player's side.
type Outcome int

const (
	Tie Outcome = iota
	Win
	Lose
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Lose:
		return "lose"
	default:
		return "tie"
	}
}

// Play scores one round.
func Play(player, computer Choice) Outcome {
	switch {
	case player == computer:
		return Tie
	case player.Beats(computer):
		return Win
	default:
		return Lose
	}
}

// Round is one played round.
type Round struct {
	Number   int
	Player   Choice
	Computer Choice
	Outcome  Outcome
}

// EventRound is the ledger kind for a played round.
const EventRound ledger.Kind = "round"

var configPath string

// SetConfigPath sets the custom config path used by the registry factory.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the match.
type Game struct {
	cfg     config.RPSConfig
	runtime core.RuntimeConfig
	rng     core.Rand
	round   *round.Round

	history  []Round
	player   int
	computer int
}

// New creates a match with the default configuration.
func New() *Game {
	return NewWithConfig(config.DefaultRPSConfig())
}

// NewWithConfig creates a match with the given configuration.
func NewWithConfig(cfg config.RPSConfig) *Game {
	g := &Game{cfg: cfg, rng: core.NewRand(0)}
	g.round = round.New(g.rebuild)
	g.rebuild()
	return g
}

func init() {
	registry.Register("rps", func() registry.Game {
		cfg, err := config.LoadRPS(configPath)
		if err != nil {
			cfg = config.DefaultRPSConfig()
		}
		return NewWithConfig(cfg)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "rps"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Rock Paper Scissors"
}

// Cadence returns the interval between updates.
func (g *Game) Cadence() time.Duration {
	return config.Millis(g.cfg.TickMilli)
}

// Reset reseeds the computer and returns to Menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = core.NewRand(runtime.Seed)
	g.round.Restart()
	g.rebuild()
}

// SetRand replaces the random source.
func (g *Game) SetRand(r core.Rand) {
	g.rng = r
}

func (g *Game) rebuild() {
	g.history = nil
	g.player = 0
	g.computer = 0
}

// Step applies lifecycle intents and plays a round when a sign is selected.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.round.Begin(in) {
		if i, ok := in.Cell(); ok {
			g.play(i)
		}
	}
	return g.round.End(g.State())
}

// play scores one round. Indexes outside 0..2 are ignored.
func (g *Game) play(i int) {
	if i < int(Rock) || i > int(Scissors) {
		return
	}
	r := Round{
		Number:   len(g.history) + 1,
		Player:   Choice(i),
		Computer: Choice(g.rng.Intn(3)),
	}
	r.Outcome = Play(r.Player, r.Computer)
	switch r.Outcome {
	case Win:
		g.player++
	case Lose:
		g.computer++
	}
	g.history = append(g.history, r)
	g.round.Record(EventRound, g.State(), fmt.Sprintf("%d: %s vs %s, %s", r.Number, r.Player, r.Computer, r.Outcome))

	if len(g.history) >= g.cfg.Rounds {
		g.round.Machine.Fire(phase.Terminal)
	}
}

// State returns the public summary. Score is rounds won by the player;
// Level is the next round number.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase: g.round.Phase(),
		Score: g.player,
		Level: len(g.history) + 1,
	}
}

// Scores returns rounds won by the player and by the computer.
func (g *Game) Scores() (player, computer int) {
	return g.player, g.computer
}

// History returns a copy of the played rounds.
func (g *Game) History() []Round {
	return append([]Round(nil), g.history...)
}

// Recent returns the latest ledger events.
func (g *Game) Recent(n int) []ledger.Event {
	return g.round.Ledger.Recent(n)
}

// Pending reports the deferred trigger. RPS never schedules one.
func (g *Game) Pending() (phase.Deferred, bool) {
	return g.round.Machine.Pending()
}

// Resolve fires a deferred trigger.
func (g *Game) Resolve(id uint64) bool {
	return g.round.Machine.Resolve(id)
}

// Render draws the score line, the choices and the round history.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < 30 || dst.Height() < g.cfg.Rounds+8 {
		dst.DrawText(0, 0, "Terminal too small")
		return
	}

	header := fmt.Sprintf("Round %d of %d", min(len(g.history)+1, g.cfg.Rounds), g.cfg.Rounds)
	if g.round.Phase() == phase.GameOver {
		header = "Game complete"
	}
	dst.DrawTextCentered(0, header)
	dst.DrawTextCentered(1, fmt.Sprintf("You %d  :  %d Computer", g.player, g.computer))
	dst.DrawTextCentered(3, "1 Rock   2 Paper   3 Scissors")

	for i, r := range g.history {
		c := core.ColorGray
		switch r.Outcome {
		case Win:
			c = core.ColorGreen
		case Lose:
			c = core.ColorRed
		}
		line := fmt.Sprintf("%d. %-8s vs %-8s %s", r.Number, r.Player, r.Computer, r.Outcome)
		dst.DrawTextColor((dst.Width()-len(line))/2, 5+i, line, c)
	}

	status := 6 + g.cfg.Rounds
	switch g.round.Phase() {
	case phase.Menu:
		dst.DrawTextCentered(status, "Press Enter to start")
	case phase.Paused:
		dst.DrawTextCentered(status, "PAUSED")
	case phase.GameOver:
		msg := "It's a tie game!"
		switch {
		case g.player > g.computer:
			msg = "You won the game!"
		case g.computer > g.player:
			msg = "Computer wins this time."
		}
		dst.DrawTextCentered(status, msg+" Press R")
	}
}

// Hash digests the scores and every played round.
func (g *Game) Hash() uint64 {
	d := core.NewDigest().
		Int(int64(g.round.Phase())).Int(int64(g.player)).Int(int64(g.computer))
	for _, r := range g.history {
		d.Int(int64(r.Player)).Int(int64(r.Computer)).Int(int64(r.Outcome))
	}
	return d.Sum()
}
