package domain

import "strings"

// OptionsPerQuestion is the fixed number of answer choices shown per question.
const OptionsPerQuestion = 4

// Question is an immutable multiple-choice prompt. Correct equals exactly one of Options.
type Question struct {
	Prompt  string   `json:"prompt" yaml:"prompt"`
	Correct string   `json:"correct" yaml:"correct"`
	Options []string `json:"options" yaml:"options"`
}

// Validate reports ErrInvalidBank when the question cannot be played.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Prompt) == "" || len(q.Options) != OptionsPerQuestion {
		return ErrInvalidBank
	}
	matches := 0
	for _, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return ErrInvalidBank
		}
		if opt == q.Correct {
			matches++
		}
	}
	if matches != 1 {
		return ErrInvalidBank
	}
	return nil
}

// QuestionBank is the fixed, ordered question sequence played by a game.
type QuestionBank struct {
	ID        string     `json:"id" yaml:"id"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Validate checks every question in the bank.
func (b QuestionBank) Validate() error {
	if len(b.Questions) == 0 {
		return ErrInvalidBank
	}
	for _, q := range b.Questions {
		if err := q.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy so callers cannot mutate shared bank data.
func (b QuestionBank) Clone() QuestionBank {
	out := QuestionBank{ID: b.ID, Questions: make([]Question, len(b.Questions))}
	for i, q := range b.Questions {
		out.Questions[i] = Question{
			Prompt:  q.Prompt,
			Correct: q.Correct,
			Options: append([]string(nil), q.Options...),
		}
	}
	return out
}

// Phase is the lifecycle state of a game.
type Phase string

const (
	PhaseNotStarted    Phase = "not_started"
	PhasePlaying       Phase = "playing"
	PhaseTimedOut      Phase = "timed_out"
	PhaseAnsweredWrong Phase = "answered_wrong"
	PhaseCompleted     Phase = "completed"
)

// EndReason explains why a game left the playing phase.
type EndReason string

const (
	EndNone        EndReason = ""
	EndCleared     EndReason = "cleared"
	EndTimedOut    EndReason = "timed_out"
	EndWrongAnswer EndReason = "wrong_answer"
)

// Position is a screen coordinate in CSS pixels.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Viewport is the visible area the answer buttons are scattered across.
type Viewport struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// DefaultViewport is used when the client does not report its size.
var DefaultViewport = Viewport{Width: 1280, Height: 720}

// Normalize replaces non-positive dimensions with DefaultViewport.
func (v Viewport) Normalize() Viewport {
	if v.Width <= 0 || v.Height <= 0 {
		return DefaultViewport
	}
	return v
}

// GameSnapshot is a read-only view of a game, safe to serialize to clients.
type GameSnapshot struct {
	ID             string     `json:"id"`
	Phase          Phase      `json:"phase"`
	QuestionIndex  int        `json:"questionIndex"`
	QuestionNumber int        `json:"questionNumber,omitempty"`
	TotalQuestions int        `json:"totalQuestions"`
	Prompt         string     `json:"prompt,omitempty"`
	Options        []string   `json:"options,omitempty"`
	Positions      []Position `json:"positions,omitempty"`
	Score          int        `json:"score"`
	TimeRemaining  int        `json:"timeRemaining"`
	OverlayVisible bool       `json:"overlayVisible"`
	GameOver       bool       `json:"gameOver"`
	EndReason      EndReason  `json:"endReason,omitempty"`
}

// Cue is a client-side effect triggered by the engine.
type Cue string

const (
	CueBackgroundLoop Cue = "background_loop"
	CueFailure        Cue = "failure"
)

// EventKind distinguishes state pushes from one-shot cues.
type EventKind string

const (
	EventState EventKind = "state"
	EventCue   EventKind = "cue"
)

// GameEvent is delivered to game subscribers.
type GameEvent struct {
	Kind  EventKind    `json:"kind"`
	Cue   Cue          `json:"cue,omitempty"`
	State GameSnapshot `json:"state"`
}

// AnswerOutcome summarizes what a submitted answer did.
type AnswerOutcome string

const (
	OutcomeCorrect AnswerOutcome = "correct"
	OutcomeWrong   AnswerOutcome = "wrong"
	OutcomeIgnored AnswerOutcome = "ignored"
)

// AnswerResult is returned to the player who submitted an answer.
type AnswerResult struct {
	Option  string        `json:"option"`
	Outcome AnswerOutcome `json:"outcome"`
	Score   int           `json:"score"`
}
