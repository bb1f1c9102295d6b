package app

import (
	"context"
	"fmt"

	"flashlight-portfolio/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionRepository abstracts where mounted games live (in-memory, Redis-marked, etc).
type SessionRepository interface {
	Add(game *Game)
	Get(id string) (*Game, bool)
	Remove(id string)
}

// QuestionRepository loads question banks (from cache/backing store).
type QuestionRepository interface {
	GetBank(ctx context.Context, bankID string) (domain.QuestionBank, error)
}

// ServiceConfig selects the bank and engine timings for new games.
type ServiceConfig struct {
	BankID string
	Game   GameConfig
}

// ServiceOption customizes a GameService.
type ServiceOption func(*GameService)

// WithScheduler replaces the timer implementation used by new games.
func WithScheduler(s Scheduler) ServiceOption {
	return func(svc *GameService) { svc.sched = s }
}

// WithRandom replaces the per-game random source factory.
func WithRandom(newRandom func() Random) ServiceOption {
	return func(svc *GameService) { svc.newRandom = newRandom }
}

// WithIDGenerator replaces uuid-based game ids.
func WithIDGenerator(newID func() string) ServiceOption {
	return func(svc *GameService) { svc.newID = newID }
}

// GameService contains the flashlight quiz use cases.
type GameService struct {
	sessions SessionRepository
	banks    QuestionRepository
	cfg      ServiceConfig
	log      *zap.Logger

	sched     Scheduler
	newRandom func() Random
	newID     func() string
}

func NewGameService(sessions SessionRepository, banks QuestionRepository, cfg ServiceConfig, log *zap.Logger, opts ...ServiceOption) *GameService {
	if log == nil {
		log = zap.NewNop()
	}
	svc := &GameService{
		sessions:  sessions,
		banks:     banks,
		cfg:       cfg,
		log:       log,
		sched:     RealScheduler{},
		newRandom: NewRandom,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Mount creates a not-started game for a newly connected player.
func (s *GameService) Mount(ctx context.Context) (*Game, error) {
	bank, err := s.banks.GetBank(ctx, s.cfg.BankID)
	if err != nil {
		return nil, err
	}
	if err := bank.Validate(); err != nil {
		return nil, fmt.Errorf("bank %q: %w", s.cfg.BankID, err)
	}

	game := NewGame(s.newID(), bank, s.cfg.Game, s.sched, s.newRandom())
	s.sessions.Add(game)

	s.log.Info("game mounted",
		zap.String("game_id", game.ID()),
		zap.String("bank", bank.ID),
		zap.Int("questions", len(bank.Questions)),
	)
	return game, nil
}

// Start begins (or restarts) a mounted game.
func (s *GameService) Start(_ context.Context, gameID string, vp domain.Viewport) (domain.GameSnapshot, error) {
	game, ok := s.sessions.Get(gameID)
	if !ok {
		return domain.GameSnapshot{}, domain.ErrGameNotFound
	}
	snap, err := game.Start(vp)
	if err != nil {
		return domain.GameSnapshot{}, err
	}
	s.log.Info("game started", zap.String("game_id", gameID))
	return snap, nil
}

// Submit forwards an answer to the game engine.
func (s *GameService) Submit(_ context.Context, gameID, option string) (domain.AnswerResult, error) {
	game, ok := s.sessions.Get(gameID)
	if !ok {
		return domain.AnswerResult{}, domain.ErrGameNotFound
	}
	res, err := game.Submit(option)
	if err != nil {
		return res, err
	}
	if res.Outcome != domain.OutcomeCorrect {
		s.log.Info("answer resolved",
			zap.String("game_id", gameID),
			zap.String("outcome", string(res.Outcome)),
		)
	}
	return res, nil
}

// Snapshot returns the current state of a mounted game.
func (s *GameService) Snapshot(_ context.Context, gameID string) (domain.GameSnapshot, error) {
	game, ok := s.sessions.Get(gameID)
	if !ok {
		return domain.GameSnapshot{}, domain.ErrGameNotFound
	}
	return game.Snapshot(), nil
}

// Subscribe returns a channel that receives game events.
// The caller must invoke the returned cancel function to avoid leaks.
func (s *GameService) Subscribe(_ context.Context, gameID string) (<-chan domain.GameEvent, func(), error) {
	game, ok := s.sessions.Get(gameID)
	if !ok {
		return nil, nil, domain.ErrGameNotFound
	}
	return game.Subscribe()
}

// Unmount stops the game's timers and forgets the session.
func (s *GameService) Unmount(_ context.Context, gameID string) {
	game, ok := s.sessions.Get(gameID)
	if !ok {
		return
	}
	game.Close()
	s.sessions.Remove(gameID)
	s.log.Info("game unmounted", zap.String("game_id", gameID))
}
