// Package interview implements the session state machine that drives a
// single timed interview: stage transitions, per-question countdowns,
// answer collection, and finalization into a candidate record.
//
// A Session is mutated exclusively through its methods, each of which is
// all-or-nothing: on error the session is left exactly as it was. The
// caller owns serialization; in the TUI every mutation happens on the
// Bubble Tea update loop, so ticks and submissions can never interleave.
package interview

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vettalabs/vetta/internal/bank"
	"github.com/vettalabs/vetta/internal/scoring"
	"github.com/vettalabs/vetta/internal/summary"
)

// ForcedAnswerText is the sentinel recorded when the countdown reaches
// zero and the answer is submitted on the candidate's behalf.
const ForcedAnswerText = "No answer provided (time expired)"

// Scorer evaluates one answer. The production scorer is the local
// heuristic engine; tests substitute fixed evaluations.
type Scorer interface {
	Evaluate(q bank.Question, answer string, timeUsedSecs int) scoring.Evaluation
}

// ScorerFunc adapts a plain function to the Scorer interface.
type ScorerFunc func(q bank.Question, answer string, timeUsedSecs int) scoring.Evaluation

func (f ScorerFunc) Evaluate(q bank.Question, answer string, timeUsedSecs int) scoring.Evaluation {
	return f(q, answer, timeUsedSecs)
}

// Session is the single live interview session. Create one with New,
// drive it through the transition methods, and discard it (or StartNew)
// when done. The zero value is not usable.
type Session struct {
	ID          string
	Stage       Stage
	Info        CandidateInfo
	Questions   []bank.Question
	Current     int // index of the question being answered
	Answers     []Answer
	Evaluations []scoring.Evaluation
	Countdown   int // seconds remaining for the current question
	Active      bool
	Paused      bool
	StartedAt   time.Time
	EndedAt     time.Time

	scorer Scorer
	now    func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithScorer overrides the scoring engine.
func WithScorer(s Scorer) Option {
	return func(sess *Session) { sess.scorer = s }
}

// WithClock overrides the wall clock, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(sess *Session) { sess.now = now }
}

// New creates a fresh session in the upload stage with a new session ID.
func New(opts ...Option) *Session {
	s := &Session{
		scorer: ScorerFunc(scoring.Evaluate),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.StartNew()
	return s
}

// StartNew resets the session to its initial state under a fresh session
// ID, discarding any in-flight interview without persisting it. Valid
// from any stage.
func (s *Session) StartNew() {
	s.ID = uuid.New().String()
	s.Stage = StageUpload
	s.Info = CandidateInfo{}
	s.Questions = nil
	s.Current = 0
	s.Answers = nil
	s.Evaluations = nil
	s.Countdown = 0
	s.Active = false
	s.Paused = false
	s.StartedAt = s.now()
	s.EndedAt = time.Time{}
}

// Reset is an alias for StartNew, used when abandoning a session.
func (s *Session) Reset() {
	s.StartNew()
}

// SubmitResume merges the parsed resume fields into the candidate info
// and advances to the info-collection stage. Parsed fields are
// best-effort: blanks never overwrite previously collected values.
func (s *Session) SubmitResume(parsed CandidateInfo) error {
	if s.Stage != StageUpload {
		return fmt.Errorf("%w: submit resume in stage %s", ErrInvalidTransition, s.Stage)
	}
	s.Info = s.Info.merge(parsed)
	s.Stage = StageInfoCollection
	return nil
}

// SubmitCandidateInfo merges manually entered fields into the candidate
// info. Once Info.Complete() the caller is expected to sample questions
// and call BeginInterview; the machine never fetches questions itself.
func (s *Session) SubmitCandidateInfo(fields CandidateInfo) error {
	if s.Stage != StageInfoCollection {
		return fmt.Errorf("%w: submit info in stage %s", ErrInvalidTransition, s.Stage)
	}
	s.Info = s.Info.merge(fields)
	return nil
}

// BeginInterview starts the timed interview with the given question set.
// The countdown is set to the first question's tier budget.
func (s *Session) BeginInterview(questions []bank.Question) error {
	if s.Stage != StageInfoCollection {
		return fmt.Errorf("%w: begin interview in stage %s", ErrInvalidTransition, s.Stage)
	}
	if len(questions) == 0 {
		return ErrEmptyQuestionSet
	}
	s.Questions = questions
	s.Stage = StageInterview
	s.Current = 0
	s.Active = true
	s.Paused = false
	s.Countdown = bank.TimeLimit(questions[0].Tier)
	return nil
}

// Tick consumes one second of the current question's budget, flooring at
// zero. Ticks arriving while the session is not actively interviewing
// (wrong stage, paused, finalized) are no-ops; the tick source does not
// need to know the session's state.
//
// Reaching zero does not itself submit the answer: the orchestration
// checks Expired and calls ForceSubmit.
func (s *Session) Tick() {
	if s.Stage != StageInterview || !s.Active || s.Paused {
		return
	}
	if s.Countdown > 0 {
		s.Countdown--
	}
}

// Expired reports whether the current question's time budget is spent.
func (s *Session) Expired() bool {
	return s.Stage == StageInterview && s.Active && s.Countdown <= 0
}

// CurrentQuestion returns the question being answered, or false when the
// session is not in the interview stage.
func (s *Session) CurrentQuestion() (bank.Question, bool) {
	if s.Stage != StageInterview || s.Current >= len(s.Questions) {
		return bank.Question{}, false
	}
	return s.Questions[s.Current], true
}

// SubmitAnswer scores and records the answer to the current question,
// then either advances to the next question (resetting the countdown to
// its tier budget) or finalizes the session.
func (s *Session) SubmitAnswer(text string) (*Outcome, error) {
	if s.Stage != StageInterview || !s.Active {
		return nil, fmt.Errorf("%w: submit answer in stage %s", ErrInvalidTransition, s.Stage)
	}
	// Guards against double submission of the same question: exactly
	// one answer may exist per answered question.
	if len(s.Answers) != s.Current {
		return nil, fmt.Errorf("%w: answer already recorded for question %d", ErrInvalidTransition, s.Current)
	}

	q := s.Questions[s.Current]
	timeUsed := bank.TimeLimit(q.Tier) - s.Countdown
	ev := s.scorer.Evaluate(q, text, timeUsed)

	s.Answers = append(s.Answers, Answer{
		QuestionIndex: s.Current,
		Text:          text,
		TimeUsedSecs:  timeUsed,
		SubmittedAt:   s.now(),
	})
	s.Evaluations = append(s.Evaluations, ev)

	if s.Current < len(s.Questions)-1 {
		s.Current++
		s.Countdown = bank.TimeLimit(s.Questions[s.Current].Tier)
		return &Outcome{Evaluation: ev}, nil
	}

	return s.finalize(ev)
}

// ForceSubmit records the timeout sentinel as the answer to the current
// question. Invoked by the orchestration when the countdown hits zero.
func (s *Session) ForceSubmit() (*Outcome, error) {
	return s.SubmitAnswer(ForcedAnswerText)
}

// Pause suspends the interview. Tick becomes a no-op until Resume, so
// the countdown cannot drift while paused.
func (s *Session) Pause() error {
	if s.Stage != StageInterview || !s.Active {
		return fmt.Errorf("%w: pause in stage %s", ErrInvalidTransition, s.Stage)
	}
	s.Paused = true
	s.Active = false
	return nil
}

// Resume reverses Pause without changing the stage or countdown.
func (s *Session) Resume() error {
	if s.Stage != StageInterview || !s.Paused {
		return fmt.Errorf("%w: resume in stage %s", ErrInvalidTransition, s.Stage)
	}
	s.Paused = false
	s.Active = true
	return nil
}

// finalize transitions to completed, runs the summary engine, and builds
// the candidate record for the external store. Completed is terminal:
// the only way out is StartNew with a fresh session ID.
func (s *Session) finalize(last scoring.Evaluation) (*Outcome, error) {
	s.Stage = StageCompleted
	s.Active = false
	s.Paused = false
	s.EndedAt = s.now()

	report, err := summary.Summarize(s.Questions, s.Evaluations)
	if err != nil {
		// Unreachable in practice: finalize only runs after at least
		// one evaluation was appended.
		return nil, err
	}

	return &Outcome{
		Evaluation: last,
		Completed:  true,
		Record:     s.buildRecord(report),
	}, nil
}

func (s *Session) buildRecord(report *summary.Report) *CandidateRecord {
	return &CandidateRecord{
		SessionID:   s.ID,
		Name:        s.Info.Name,
		Email:       s.Info.Email,
		Phone:       s.Info.Phone,
		ResumeText:  s.Info.ResumeText,
		Questions:   s.Questions,
		Answers:     s.Answers,
		Evaluations: s.Evaluations,
		FinalScore:  report.Score,
		Percentage:  report.Percentage,
		SummaryText: report.Narrative,
		Status:      StatusCompleted,
		StartedAt:   s.StartedAt,
		EndedAt:     s.EndedAt,
		RecordedAt:  s.now(),
	}
}
