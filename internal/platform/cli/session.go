// Package cli plays connectn as a line-oriented terminal game: setup
// prompts, a text board and one command per turn.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/connectn/internal/ai"
	"github.com/vovakirdan/connectn/internal/board"
	"github.com/vovakirdan/connectn/internal/config"
	"github.com/vovakirdan/connectn/internal/game"
	"github.com/vovakirdan/connectn/internal/player"
	"github.com/vovakirdan/connectn/internal/storage"
)

const (
	turnText     = "%s's Turn!"
	winText      = "Congratulations, %s! You win!"
	gameOverText = "Congrat--. Oh, nobody won."
	quitText     = "Game abandoned."
	actionPrompt = "Enter action: "

	// maxRandomRetries bounds how often a policy may propose a full column.
	maxRandomRetries = 1000

	// maxPlayers bounds the player count asked for during setup.
	maxPlayers = 26
)

// Options configures a Session.
type Options struct {
	Config   config.Config
	Quick    bool  // Skip the setup prompts and use Config as is
	Color    bool  // Colour tokens and names
	Seed     int64 // AI random seed
	Recorder storage.Recorder
	Logger   *log.Logger
}

// Session runs one game over a reader and a writer.
type Session struct {
	opts   Options
	prompt *prompter
	out    io.Writer
	render *Renderer
	rng    *rand.Rand
	log    *log.Logger
}

// NewSession creates a session reading commands from in and printing to out.
func NewSession(in io.Reader, out io.Writer, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		opts:   opts,
		prompt: newPrompter(in, out),
		out:    out,
		render: NewRenderer(out, opts.Color, opts.Config.Display.Symbol()),
		rng:    rand.New(rand.NewSource(opts.Seed)),
		log:    logger,
	}
}

// Run sets up a game, plays it to the end and records the result.
// Cancelling ctx interrupts a pending prompt.
func (s *Session) Run(ctx context.Context) (storage.Result, error) {
	defer s.prompt.close()

	ctrl, err := s.Setup(ctx)
	if err != nil {
		return storage.Result{}, err
	}
	return s.Play(ctx, ctrl)
}

// Setup builds the board and players, either from the config or by asking.
func (s *Session) Setup(ctx context.Context) (*game.Controller, error) {
	cfg := s.opts.Config
	if !s.opts.Quick {
		var err error
		if cfg, err = s.ask(ctx, cfg); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("setup: %w", io.ErrUnexpectedEOF)
			}
			return nil, fmt.Errorf("setup: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b, err := cfg.NewBoard()
	if err != nil {
		return nil, err
	}
	players, err := cfg.BuildPlayers(player.NewSequence())
	if err != nil {
		return nil, err
	}
	ctrl, err := game.NewController(b, players)
	if err != nil {
		return nil, err
	}

	s.log.Info("game created",
		"width", b.Width(), "height", b.Height(),
		"connect", b.TokensToConnect(), "players", len(players))
	return ctrl, nil
}

// ask prompts for every setting, offering cfg's values as defaults.
func (s *Session) ask(ctx context.Context, cfg config.Config) (config.Config, error) {
	var err error
	bc := &cfg.Board

	bc.TokensToConnect, err = s.prompt.integer(ctx, intRange{
		label:   "Number of tokens to connect",
		def:     bc.TokensToConnect,
		min:     board.MinTokensToConnect,
		max:     board.MaxTokensToConnect,
		notInt:  "The number of tokens must be an integer.",
		tooLow:  fmt.Sprintf("The number of tokens cannot be less than the minimum (%d).", board.MinTokensToConnect),
		tooHigh: fmt.Sprintf("The number of tokens cannot be more than the maximum (%d).", board.MaxTokensToConnect),
	})
	if err != nil {
		return cfg, err
	}

	bc.Width, err = s.prompt.integer(ctx, intRange{
		label:  "Width of board",
		def:    max(bc.Width, bc.TokensToConnect),
		min:    bc.TokensToConnect,
		notInt: "The width must be an integer.",
		tooLow: fmt.Sprintf("The width must be at least the number of tokens to connect (%d).", bc.TokensToConnect),
	})
	if err != nil {
		return cfg, err
	}

	bc.Height, err = s.prompt.integer(ctx, intRange{
		label:  "Height of board",
		def:    max(bc.Height, bc.TokensToConnect),
		min:    bc.TokensToConnect,
		notInt: "The height must be an integer.",
		tooLow: fmt.Sprintf("The height must be at least the number of tokens to connect (%d).", bc.TokensToConnect),
	})
	if err != nil {
		return cfg, err
	}

	count, err := s.prompt.integer(ctx, intRange{
		label:   "Number of players",
		def:     min(max(len(cfg.Players), game.MinPlayers), maxPlayers),
		min:     game.MinPlayers,
		max:     maxPlayers,
		notInt:  "The number of players must be an integer.",
		tooLow:  fmt.Sprintf("There must be at least %d players.", game.MinPlayers),
		tooHigh: fmt.Sprintf("There cannot be more than %d players.", maxPlayers),
	})
	if err != nil {
		return cfg, err
	}

	players := make([]config.PlayerConfig, count)
	taken := make(map[string]bool, count)
	for i := range players {
		def := config.PlayerConfig{Name: fmt.Sprintf("Player %d", i+1), Kind: player.Human.String()}
		if i < len(cfg.Players) {
			if cfg.Players[i].Name != "" {
				def.Name = cfg.Players[i].Name
			}
			if cfg.Players[i].Kind != "" {
				def.Kind = cfg.Players[i].Kind
			}
		}
		if players[i], err = s.askPlayer(ctx, i+1, def, taken); err != nil {
			return cfg, err
		}
		taken[config.NameKey(players[i].Name)] = true
	}
	cfg.Players = players
	return cfg, nil
}

// askPlayer prompts for one player's name and kind. Names already in taken
// are refused.
func (s *Session) askPlayer(ctx context.Context, number int, def config.PlayerConfig, taken map[string]bool) (config.PlayerConfig, error) {
	var name string
	for {
		var err error
		name, err = s.prompt.text(ctx, fmt.Sprintf("Player %d's Name", number), def.Name)
		if err != nil {
			return def, err
		}
		if !taken[config.NameKey(name)] {
			break
		}
		fmt.Fprintf(s.out, "The name %q is already taken.\n", name)
	}

	for {
		reply, err := s.prompt.text(ctx, fmt.Sprintf("Player %d's Kind (%s)", number, player.KindNames()), def.Kind)
		if err != nil {
			return def, err
		}
		kind, err := player.ParseKind(reply)
		if err != nil {
			fmt.Fprintf(s.out, "Unknown kind %q. Choose one of %s.\n", reply, player.KindNames())
			continue
		}
		return config.PlayerConfig{Name: name, Kind: kind.String()}, nil
	}
}

// Play runs turns until the game is won, drawn or abandoned, then records
// the result. Running out of input abandons the game.
func (s *Session) Play(ctx context.Context, ctrl *game.Controller) (storage.Result, error) {
	roster := ai.NewRoster(ctrl.Players(), s.rng)
	b := ctrl.Board()

	showBoard := true
	for ctrl.IsRunning() {
		if err := ctx.Err(); err != nil {
			return s.finish(ctrl), err
		}
		if showBoard {
			fmt.Fprint(s.out, s.render.Board(b))
			showBoard = false
		}

		current := ctrl.CurrentPlayer()
		fmt.Fprintf(s.out, turnText+"\n", s.render.Name(current))

		var (
			out game.Outcome
			err error
		)
		if policy, ok := roster.For(current); ok {
			out, err = s.automatedTurn(ctrl, policy)
		} else {
			var quit bool
			out, quit, err = s.humanTurn(ctx, ctrl)
			if quit {
				fmt.Fprintln(s.out, quitText)
				return s.finish(ctrl), nil
			}
		}
		if err != nil {
			if ctx.Err() != nil {
				fmt.Fprintln(s.out, quitText)
			}
			return s.finish(ctrl), err
		}

		s.log.Debug("move", "player", out.Player.Name(), "col", out.Col, "row", out.Row)
		showBoard = true
	}

	fmt.Fprint(s.out, s.render.Board(b))
	if w, ok := ctrl.Winner(); ok {
		fmt.Fprintln(s.out, s.render.Bold(fmt.Sprintf(winText, w.Name())))
	} else {
		fmt.Fprintln(s.out, s.render.Bold(gameOverText))
	}
	return s.finish(ctrl), nil
}

// humanTurn reads commands until one of them places a token or quits.
func (s *Session) humanTurn(ctx context.Context, ctrl *game.Controller) (game.Outcome, bool, error) {
	for {
		reply, err := s.prompt.line(ctx, actionPrompt)
		if errors.Is(err, io.EOF) {
			return game.Outcome{}, true, nil
		}
		if err != nil {
			return game.Outcome{}, false, err
		}

		cmd, err := ParseCommand(reply)
		if err != nil {
			fmt.Fprintln(s.out, err)
			fmt.Fprintln(s.out, "Type H for help.")
			continue
		}

		switch cmd.Action {
		case ActionQuit:
			return game.Outcome{}, true, nil
		case ActionHelp:
			fmt.Fprintln(s.out, HorizontalRule)
			fmt.Fprintln(s.out, HelpText)
		case ActionDisplay:
			fmt.Fprint(s.out, s.render.Board(ctrl.Board()))
		case ActionDrop:
			out, err := ctrl.Apply(cmd.Column)
			if err != nil {
				fmt.Fprintln(s.out, moveError(err, ctrl.Board()))
				continue
			}
			return out, false, nil
		}
	}
}

// automatedTurn asks the policy for a column until the board accepts one.
func (s *Session) automatedTurn(ctrl *game.Controller, policy ai.Policy) (game.Outcome, error) {
	current := ctrl.CurrentPlayer()
	for attempt := 0; attempt < maxRandomRetries; attempt++ {
		col := policy.Decide(current, ctrl.Board())
		out, err := ctrl.Apply(col)
		if err == nil {
			fmt.Fprintf(s.out, "%s drops a token into column %d.\n", current.Name(), col)
			return out, nil
		}
		s.log.Debug("policy move rejected", "player", current.Name(), "col", col, "err", err)
	}
	return game.Outcome{}, fmt.Errorf("%s could not find an open column", current.Name())
}

// moveError turns a rejected move into a message for the player.
func moveError(err error, b *board.Board) string {
	switch {
	case errors.Is(err, board.ErrInvalidColumn):
		return fmt.Sprintf("There is no such column. Choose a column from 0 to %d.", b.Width()-1)
	case errors.Is(err, board.ErrFullColumn):
		return "That column is full. Choose another one."
	default:
		return err.Error()
	}
}

// finish records the game and returns its result.
func (s *Session) finish(ctrl *game.Controller) storage.Result {
	r := storage.FromController(ctrl)
	s.log.Info("game finished", "outcome", r.Outcome, "winner", r.Winner, "moves", r.Moves)

	if s.opts.Recorder != nil {
		if _, err := s.opts.Recorder.SaveResult(r); err != nil {
			s.log.Warn("could not record result", "err", err)
		}
	}
	return r
}
