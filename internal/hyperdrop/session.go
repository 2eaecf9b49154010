package hyperdrop

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Defaults taken by NewSession when an option is left zero.
const (
	DefaultRows         = 20
	DefaultCols         = 10
	DefaultDropInterval = 800 * time.Millisecond
	DefaultLinePoints   = 100
)

var (
	// ErrEmptyPlayerName is returned by Start when the name is blank.
	ErrEmptyPlayerName = errors.New("hyperdrop: player name is required")

	// ErrSessionStarted is returned by Start when the session has already left Idle.
	ErrSessionStarted = errors.New("hyperdrop: session already started")
)

// State is the lifecycle phase of a Session.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Command is a single mutation request for the falling piece. Timer-driven
// gravity and player input share this type so the landing sequence exists once.
type Command int

const (
	CommandGravity Command = iota
	CommandMoveLeft
	CommandMoveRight
	CommandSoftDrop
	CommandRotate
	CommandHardDrop
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandGravity:
		return "gravity"
	case CommandMoveLeft:
		return "move_left"
	case CommandMoveRight:
		return "move_right"
	case CommandSoftDrop:
		return "soft_drop"
	case CommandRotate:
		return "rotate"
	case CommandHardDrop:
		return "hard_drop"
	default:
		return "unknown"
	}
}

// StepResult describes what a single Step did.
type StepResult struct {
	Moved        bool // Piece position or shape changed
	Landed       bool // Piece was merged into the board
	LinesCleared int
	ScoreDelta   int
	GameOver     bool // The session entered StateGameOver during this step
}

// Options configures a Session. Zero values fall back to the defaults above.
type Options struct {
	Rows         int
	Cols         int
	DropInterval time.Duration
	LinePoints   int
	Seed         int64 // 0 picks a time-based seed

	Randomizer Randomizer // Overrides Seed when set
	Scores     ScoreSink
	Players    PlayerStore
	Logger     *log.Logger
	Clock      func() time.Time

	// OnGameOver is called once, after the record has been handed to Scores.
	OnGameOver func(rec ScoreRecord)
}

// Session owns all mutable state of one game. It is not safe for concurrent
// use; the platform delivers ticks and key presses from a single goroutine.
type Session struct {
	id     string
	opts   Options
	rng    Randomizer
	logger *log.Logger
	now    func() time.Time

	state    State
	player   string
	board    *Board
	piece    *Piece
	score    int
	lines    int
	lastDrop time.Time
}

// NewSession creates an Idle session. Call Start to begin play.
func NewSession(opts Options) *Session {
	if opts.Rows <= 0 {
		opts.Rows = DefaultRows
	}
	if opts.Cols <= 0 {
		opts.Cols = DefaultCols
	}
	if opts.DropInterval <= 0 {
		opts.DropInterval = DefaultDropInterval
	}
	if opts.LinePoints <= 0 {
		opts.LinePoints = DefaultLinePoints
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	rng := opts.Randomizer
	if rng == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = opts.Clock().UnixNano()
		}
		rng = NewUniformRandomizer(seed)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	id := uuid.NewString()
	return &Session{
		id:     id,
		opts:   opts,
		rng:    rng,
		logger: logger.With("session", id),
		now:    opts.Clock,
		board:  NewBoard(opts.Rows, opts.Cols),
	}
}

// Start validates the player name and moves the session from Idle to Running.
// An empty name is rejected without any state change.
func (s *Session) Start(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyPlayerName
	}
	if s.state != StateIdle {
		return ErrSessionStarted
	}

	if s.opts.Players != nil {
		if err := s.opts.Players.SetCurrentPlayer(name); err != nil {
			s.logger.Warn("could not remember player", "player", name, "error", err)
		}
	}

	s.player = name
	s.board = NewBoard(s.opts.Rows, s.opts.Cols)
	s.piece = s.spawn()
	s.score = 0
	s.lines = 0
	s.state = StateRunning
	s.lastDrop = s.now()

	s.logger.Info("game started", "player", name, "rows", s.opts.Rows, "cols", s.opts.Cols)
	return nil
}

// Tick applies gravity when more than the drop interval has passed since the
// last descent. It is meant to be called once per rendered frame.
func (s *Session) Tick(now time.Time) StepResult {
	if s.state != StateRunning || now.Sub(s.lastDrop) <= s.opts.DropInterval {
		return StepResult{}
	}
	return s.step(CommandGravity, now)
}

// Step applies one command immediately. Commands are ignored unless the
// session is Running.
func (s *Session) Step(cmd Command) StepResult {
	return s.step(cmd, s.now())
}

func (s *Session) step(cmd Command, now time.Time) StepResult {
	if s.state != StateRunning {
		return StepResult{}
	}

	switch cmd {
	case CommandMoveLeft:
		return StepResult{Moved: s.shift(-1)}
	case CommandMoveRight:
		return StepResult{Moved: s.shift(1)}
	case CommandRotate:
		return StepResult{Moved: s.rotate()}
	case CommandGravity, CommandSoftDrop:
		res := s.descend()
		s.lastDrop = now
		return res
	case CommandHardDrop:
		for !Collides(s.board, s.piece) {
			s.piece.Y++
		}
		s.piece.Y--
		res := s.land()
		res.Moved = true
		s.lastDrop = now
		return res
	}
	return StepResult{}
}

// shift moves the piece horizontally by dx, reverting on collision.
func (s *Session) shift(dx int) bool {
	s.piece.X += dx
	if Collides(s.board, s.piece) {
		s.piece.X -= dx
		return false
	}
	return true
}

// rotate turns the piece clockwise in place. No wall kicks are tried; a
// colliding rotation keeps the previous shape value.
func (s *Session) rotate() bool {
	prev := s.piece.Shape
	s.piece.Shape = Rotate(prev)
	if Collides(s.board, s.piece) {
		s.piece.Shape = prev
		return false
	}
	return true
}

// descend moves the piece down one row or lands it.
func (s *Session) descend() StepResult {
	s.piece.Y++
	if !Collides(s.board, s.piece) {
		return StepResult{Moved: true}
	}
	s.piece.Y--
	return s.land()
}

// land runs the landing sequence: merge, clear, score, spawn, game-over check.
func (s *Session) land() StepResult {
	Merge(s.board, s.piece)

	cleared := s.board.ClearLines()
	delta := cleared * s.opts.LinePoints
	s.score += delta
	s.lines += cleared
	if cleared > 0 {
		s.logger.Debug("lines cleared", "count", cleared, "score", s.score)
	}

	res := StepResult{Landed: true, LinesCleared: cleared, ScoreDelta: delta}

	s.piece = s.spawn()
	if Collides(s.board, s.piece) {
		s.finish("blocked spawn")
		res.GameOver = true
	}
	return res
}

func (s *Session) spawn() *Piece {
	return NewPiece(s.rng.Next(), s.opts.Cols)
}

// Abort ends a running session as if it had topped out. It reports whether
// the session was running.
func (s *Session) Abort() bool {
	if s.state != StateRunning {
		return false
	}
	s.finish("aborted")
	return true
}

// finish enters GameOver, persists the score and notifies the listener.
func (s *Session) finish(reason string) {
	s.state = StateGameOver
	s.piece = nil

	rec := ScoreRecord{PlayerName: s.player, Score: s.score, SessionID: s.id}
	s.logger.Info("game over", "player", s.player, "score", s.score, "lines", s.lines, "reason", reason)

	if s.opts.Scores != nil {
		if err := s.opts.Scores.AppendScore(rec); err != nil {
			s.logger.Error("could not save score", "player", s.player, "score", s.score, "error", err)
		}
	}
	if s.opts.OnGameOver != nil {
		s.opts.OnGameOver(rec)
	}
}

// ID returns the unique session identifier.
func (s *Session) ID() string { return s.id }

// State returns the current lifecycle phase.
func (s *Session) State() State { return s.state }

// Running reports whether the session accepts commands.
func (s *Session) Running() bool { return s.state == StateRunning }

// Player returns the name given to Start.
func (s *Session) Player() string { return s.player }

// Score returns the accumulated score.
func (s *Session) Score() int { return s.score }

// Lines returns the total number of rows cleared.
func (s *Session) Lines() int { return s.lines }

// Board returns the settled cells. Callers must not mutate it.
func (s *Session) Board() *Board { return s.board }

// Piece returns the falling piece, or nil outside StateRunning.
func (s *Session) Piece() *Piece { return s.piece }

// DropInterval returns the gravity threshold.
func (s *Session) DropInterval() time.Duration { return s.opts.DropInterval }
