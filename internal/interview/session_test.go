package interview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vettalabs/vetta/internal/bank"
	"github.com/vettalabs/vetta/internal/scoring"
)

// fixedScorer returns the same evaluation for every answer.
func fixedScorer(score float64) Scorer {
	return ScorerFunc(func(_ bank.Question, _ string, _ int) scoring.Evaluation {
		return scoring.Evaluation{Score: score, Feedback: "fixed"}
	})
}

func easyQuestion(id int) bank.Question {
	return bank.Question{ID: id, Text: "q", Tier: bank.TierEasy, ReferenceAnswer: "ref", Category: "t"}
}

func mediumQuestion(id int) bank.Question {
	return bank.Question{ID: id, Text: "q", Tier: bank.TierMedium, ReferenceAnswer: "ref", Category: "t"}
}

// readySession advances a fresh session to the info-collection stage
// with complete candidate info.
func readySession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	s := New(opts...)
	require.NoError(t, s.SubmitResume(CandidateInfo{ResumeText: "resume text"}))
	require.NoError(t, s.SubmitCandidateInfo(CandidateInfo{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
		Phone: "555-123-4567",
	}))
	require.True(t, s.Info.Complete())
	return s
}

func TestNewSessionInitialState(t *testing.T) {
	s := New()

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, StageUpload, s.Stage)
	assert.Empty(t, s.Questions)
	assert.Empty(t, s.Answers)
	assert.Zero(t, s.Countdown)
	assert.False(t, s.Active)
	assert.False(t, s.Paused)
	assert.False(t, s.StartedAt.IsZero())
}

func TestStartNewAssignsFreshSessionID(t *testing.T) {
	s := readySession(t)
	require.NoError(t, s.BeginInterview([]bank.Question{easyQuestion(1)}))

	oldID := s.ID
	s.StartNew()

	assert.NotEqual(t, oldID, s.ID)
	assert.Equal(t, StageUpload, s.Stage)
	assert.Empty(t, s.Questions)
	assert.Equal(t, CandidateInfo{}, s.Info)
}

func TestStageTransitionsAreGated(t *testing.T) {
	s := New()

	// Info collection and interview are unreachable from upload.
	assert.ErrorIs(t, s.SubmitCandidateInfo(CandidateInfo{Name: "x"}), ErrInvalidTransition)
	assert.ErrorIs(t, s.BeginInterview([]bank.Question{easyQuestion(1)}), ErrInvalidTransition)
	_, err := s.SubmitAnswer("hello")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.ErrorIs(t, s.Pause(), ErrInvalidTransition)
	assert.ErrorIs(t, s.Resume(), ErrInvalidTransition)

	// Failed transitions leave the stage untouched.
	assert.Equal(t, StageUpload, s.Stage)

	require.NoError(t, s.SubmitResume(CandidateInfo{}))
	assert.Equal(t, StageInfoCollection, s.Stage)

	// Resume submission is one-way.
	assert.ErrorIs(t, s.SubmitResume(CandidateInfo{}), ErrInvalidTransition)
}

func TestInfoMergeKeepsNonBlankFields(t *testing.T) {
	s := New()
	require.NoError(t, s.SubmitResume(CandidateInfo{
		Name:       "Parsed Name",
		Email:      "parsed@example.com",
		ResumeText: "text",
	}))

	// A later blank value must not clobber collected data.
	require.NoError(t, s.SubmitCandidateInfo(CandidateInfo{Name: "", Phone: "555-000-1111"}))

	assert.Equal(t, "Parsed Name", s.Info.Name)
	assert.Equal(t, "parsed@example.com", s.Info.Email)
	assert.Equal(t, "555-000-1111", s.Info.Phone)
	assert.True(t, s.Info.Complete())
}

func TestBeginInterviewEmptyQuestionSet(t *testing.T) {
	s := readySession(t)

	err := s.BeginInterview(nil)

	assert.ErrorIs(t, err, ErrEmptyQuestionSet)
	assert.Equal(t, StageInfoCollection, s.Stage)
	assert.False(t, s.Active)
}

func TestBeginInterviewSetsCountdownFromFirstTier(t *testing.T) {
	s := readySession(t)
	require.NoError(t, s.BeginInterview([]bank.Question{mediumQuestion(1), easyQuestion(2)}))

	assert.Equal(t, StageInterview, s.Stage)
	assert.True(t, s.Active)
	assert.Equal(t, bank.MediumTimeLimit, s.Countdown)
	assert.Equal(t, 0, s.Current)
}

func TestTickFloorsAtZeroAndTolerantOfWrongStage(t *testing.T) {
	s := New()
	s.Tick() // upload stage: no-op, no panic
	assert.Zero(t, s.Countdown)

	s = readySession(t)
	require.NoError(t, s.BeginInterview([]bank.Question{easyQuestion(1)}))

	for i := 0; i < bank.EasyTimeLimit+5; i++ {
		s.Tick()
	}
	assert.Equal(t, 0, s.Countdown)
	assert.True(t, s.Expired())
}

func TestPauseStopsCountdown(t *testing.T) {
	s := readySession(t)
	require.NoError(t, s.BeginInterview([]bank.Question{easyQuestion(1)}))

	s.Tick()
	require.Equal(t, bank.EasyTimeLimit-1, s.Countdown)

	require.NoError(t, s.Pause())
	assert.True(t, s.Paused)
	assert.False(t, s.Active)

	// No drift while paused.
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	assert.Equal(t, bank.EasyTimeLimit-1, s.Countdown)

	// Submissions are rejected while paused.
	_, err := s.SubmitAnswer("late answer")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, s.Resume())
	assert.Equal(t, StageInterview, s.Stage)
	s.Tick()
	assert.Equal(t, bank.EasyTimeLimit-2, s.Countdown)
}

func TestSubmitAnswerAdvancesAndResetsCountdown(t *testing.T) {
	s := readySession(t, WithScorer(fixedScorer(5)))
	require.NoError(t, s.BeginInterview([]bank.Question{easyQuestion(1), mediumQuestion(2)}))

	s.Tick()
	s.Tick()

	out, err := s.SubmitAnswer("an answer")
	require.NoError(t, err)

	assert.False(t, out.Completed)
	assert.Nil(t, out.Record)
	assert.Equal(t, 1, s.Current)
	assert.Equal(t, bank.MediumTimeLimit, s.Countdown)
	require.Len(t, s.Answers, 1)
	assert.Equal(t, 2, s.Answers[0].TimeUsedSecs)
	assert.Equal(t, 0, s.Answers[0].QuestionIndex)
}

func TestSubmitAnswerIndexMismatchRejected(t *testing.T) {
	s := readySession(t, WithScorer(fixedScorer(5)))
	require.NoError(t, s.BeginInterview([]bank.Question{easyQuestion(1), mediumQuestion(2)}))

	_, err := s.SubmitAnswer("first")
	require.NoError(t, err)

	// Simulate a stale duplicate submission for the already-answered
	// question arriving after the index advanced.
	s.Current = 0
	_, err = s.SubmitAnswer("duplicate")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Len(t, s.Answers, 1)
}

func TestTimeoutScenario(t *testing.T) {
	// One easy question, 20 ticks, no manual submission: the forced
	// submit records the sentinel and completes the session.
	s := readySession(t, WithScorer(fixedScorer(2)))
	require.NoError(t, s.BeginInterview([]bank.Question{easyQuestion(1)}))

	for i := 0; i < bank.EasyTimeLimit; i++ {
		s.Tick()
	}
	require.True(t, s.Expired())

	out, err := s.ForceSubmit()
	require.NoError(t, err)

	assert.True(t, out.Completed)
	require.NotNil(t, out.Record)
	assert.Equal(t, StageCompleted, s.Stage)
	assert.False(t, s.Active)
	assert.False(t, s.EndedAt.IsZero())

	require.Len(t, s.Answers, 1)
	// The exact wording is part of the recorded transcript.
	assert.Equal(t, "No answer provided (time expired)", s.Answers[0].Text)
	assert.Equal(t, ForcedAnswerText, s.Answers[0].Text)
	assert.Equal(t, bank.EasyTimeLimit, s.Answers[0].TimeUsedSecs)

	// Completed is terminal.
	_, err = s.SubmitAnswer("too late")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	s.Tick() // stray tick after finalization: no-op
	assert.Equal(t, 0, s.Countdown)
}

func TestFullInterviewProducesRecord(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	s := readySession(t,
		WithScorer(fixedScorer(8)),
		WithClock(func() time.Time { return now }),
	)

	questions := []bank.Question{
		easyQuestion(1), easyQuestion(2),
		mediumQuestion(3), mediumQuestion(4),
		{ID: 5, Tier: bank.TierHard}, {ID: 6, Tier: bank.TierHard},
	}
	require.NoError(t, s.BeginInterview(questions))

	var out *Outcome
	for i := 0; i < len(questions); i++ {
		var err error
		out, err = s.SubmitAnswer("a reasonably detailed answer")
		require.NoError(t, err)
	}

	require.True(t, out.Completed)
	rec := out.Record
	require.NotNil(t, rec)

	assert.Equal(t, s.ID, rec.SessionID)
	assert.Equal(t, "Ada Lovelace", rec.Name)
	assert.Equal(t, StatusCompleted, rec.Status)
	assert.Len(t, rec.Answers, 6)
	assert.Len(t, rec.Evaluations, 6)
	assert.Equal(t, 48.0, rec.FinalScore) // 6 × 8.0
	assert.Equal(t, 80.0, rec.Percentage)
	assert.Contains(t, rec.SummaryText, "Excellent performance")
	assert.Equal(t, now, rec.EndedAt)
	assert.Equal(t, now, rec.RecordedAt)
}
