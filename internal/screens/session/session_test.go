package session

import (
	"context"
	"math/rand"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/vettalabs/vetta/internal/bank"
	"github.com/vettalabs/vetta/internal/interview"
	"github.com/vettalabs/vetta/internal/router"
	"github.com/vettalabs/vetta/internal/screen"
	summaryscreen "github.com/vettalabs/vetta/internal/screens/summary"
	"github.com/vettalabs/vetta/internal/store"
)

// fakeRepo implements store.CandidateRepo for testing.
type fakeRepo struct {
	upserted []*interview.CandidateRecord
	err      error
}

func (f *fakeRepo) Upsert(_ context.Context, rec *interview.CandidateRecord) error {
	if f.err != nil {
		return f.err
	}
	f.upserted = append(f.upserted, rec)
	return nil
}
func (f *fakeRepo) Get(_ context.Context, _ string) (*interview.CandidateRecord, error) {
	return nil, nil
}
func (f *fakeRepo) List(_ context.Context, _ store.ListOpts) ([]interview.CandidateRecord, error) {
	return nil, nil
}
func (f *fakeRepo) Delete(_ context.Context, _ string) error { return nil }
func (f *fakeRepo) Purge(_ context.Context) error            { return nil }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

// currentTick builds a tick belonging to the screen's live chain.
func currentTick(s *InterviewScreen) timerTickMsg {
	return timerTickMsg{gen: s.tickGen}
}

func testScreen() (*InterviewScreen, *fakeRepo) {
	repo := &fakeRepo{}
	s := New(bank.NewSampler(rand.New(rand.NewSource(1))), repo)
	return s, repo
}

// interviewScreen returns a screen already in the interview stage.
func interviewScreen(t *testing.T) (*InterviewScreen, *fakeRepo) {
	t.Helper()
	s, repo := testScreen()
	if err := s.sess.SubmitResume(interview.CandidateInfo{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
		Phone: "555-0100",
	}); err != nil {
		t.Fatalf("SubmitResume: %v", err)
	}
	if _, cmd := s.beginInterview(); cmd == nil {
		t.Fatal("expected a command when the interview begins")
	}
	if s.errMsg != "" {
		t.Fatalf("beginInterview error: %s", s.errMsg)
	}
	return s, repo
}

func TestInterviewScreen_TitleTracksStage(t *testing.T) {
	s, _ := testScreen()
	if s.Title() != "New Interview" {
		t.Errorf("Title = %q, want %q", s.Title(), "New Interview")
	}

	s, _ = interviewScreen(t)
	if s.Title() != "Interview" {
		t.Errorf("Title = %q, want %q", s.Title(), "Interview")
	}
}

func TestInterviewScreen_SkipResume(t *testing.T) {
	s, _ := testScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*InterviewScreen)

	if ss.sess.Stage != interview.StageInfoCollection {
		t.Errorf("stage = %s, want %s", ss.sess.Stage, interview.StageInfoCollection)
	}
	if ss.infoField != "name" {
		t.Errorf("infoField = %q, want %q", ss.infoField, "name")
	}
}

func TestInterviewScreen_InfoCollectionFlow(t *testing.T) {
	s, _ := testScreen()
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // skip resume
	ss := scr.(*InterviewScreen)

	// Empty name is rejected.
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*InterviewScreen)
	if ss.fieldErr == "" {
		t.Error("expected a validation error for empty name")
	}

	ss.input.SetValue("Ada Lovelace")
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*InterviewScreen)
	if ss.infoField != "email" {
		t.Errorf("infoField = %q, want %q", ss.infoField, "email")
	}

	// Malformed email is rejected.
	ss.input.SetValue("not-an-email")
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*InterviewScreen)
	if ss.fieldErr == "" {
		t.Error("expected a validation error for malformed email")
	}

	ss.input.SetValue("ada@example.com")
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*InterviewScreen)
	if ss.infoField != "phone" {
		t.Errorf("infoField = %q, want %q", ss.infoField, "phone")
	}

	ss.input.SetValue("555-0100")
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*InterviewScreen)
	if ss.sess.Stage != interview.StageInterview {
		t.Errorf("stage = %s, want %s", ss.sess.Stage, interview.StageInterview)
	}
	if ss.sess.Countdown != bank.EasyTimeLimit {
		t.Errorf("countdown = %d, want %d", ss.sess.Countdown, bank.EasyTimeLimit)
	}
}

func TestInterviewScreen_ResumeFieldsPreFill(t *testing.T) {
	s, _ := testScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(resumeLoadedMsg{Info: interview.CandidateInfo{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
	}})
	ss := scr.(*InterviewScreen)

	// Only the phone is still missing.
	if ss.infoField != "phone" {
		t.Errorf("infoField = %q, want %q", ss.infoField, "phone")
	}
}

func TestInterviewScreen_TickDecrementsAndRearms(t *testing.T) {
	s, _ := interviewScreen(t)
	before := s.sess.Countdown

	var scr screen.Screen = s
	scr, cmd := scr.Update(currentTick(s))
	ss := scr.(*InterviewScreen)

	if ss.sess.Countdown != before-1 {
		t.Errorf("countdown = %d, want %d", ss.sess.Countdown, before-1)
	}
	if cmd == nil {
		t.Error("expected the tick chain to re-arm")
	}
}

func TestInterviewScreen_PauseFreezesCountdown(t *testing.T) {
	s, _ := interviewScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(ctrlKey('p'))
	ss := scr.(*InterviewScreen)
	if !ss.sess.Paused {
		t.Fatal("expected session to be paused")
	}

	before := ss.sess.Countdown
	scr, cmd := ss.Update(currentTick(ss))
	ss = scr.(*InterviewScreen)
	if ss.sess.Countdown != before {
		t.Errorf("countdown = %d, want %d (frozen)", ss.sess.Countdown, before)
	}
	if cmd != nil {
		t.Error("tick chain must not re-arm while paused")
	}

	// Resume restarts the chain.
	_, cmd = ss.Update(ctrlKey('p'))
	if cmd == nil {
		t.Error("expected a tick command on resume")
	}
}

func TestInterviewScreen_StaleTickAfterResumeIsDropped(t *testing.T) {
	s, _ := interviewScreen(t)
	start := s.sess.Countdown

	// A tick from the pre-pause chain is still in flight.
	stale := currentTick(s)

	var scr screen.Screen = s
	scr, _ = scr.Update(ctrlKey('p')) // pause
	ss := scr.(*InterviewScreen)
	scr, _ = ss.Update(ctrlKey('p')) // resume: new chain
	ss = scr.(*InterviewScreen)

	// The stale tick lands after resume: dropped, no re-arm.
	scr, cmd := ss.Update(stale)
	ss = scr.(*InterviewScreen)
	if ss.sess.Countdown != start {
		t.Errorf("countdown = %d, want %d (stale tick must not drain)", ss.sess.Countdown, start)
	}
	if cmd != nil {
		t.Error("stale tick must not re-arm a second chain")
	}

	// One tick from the live chain drains exactly one second.
	scr, cmd = ss.Update(currentTick(ss))
	ss = scr.(*InterviewScreen)
	if ss.sess.Countdown != start-1 {
		t.Errorf("countdown = %d, want %d", ss.sess.Countdown, start-1)
	}
	if cmd == nil {
		t.Error("expected the live chain to re-arm")
	}
}

func TestInterviewScreen_StaleTickAfterFeedbackDismissIsDropped(t *testing.T) {
	s, _ := interviewScreen(t)

	stale := currentTick(s)

	var scr screen.Screen = s
	scr, _ = scr.Update(ctrlKey('s')) // submit, feedback overlay up
	ss := scr.(*InterviewScreen)
	scr, _ = ss.Update(keyPress(' ')) // dismiss: new chain for next question
	ss = scr.(*InterviewScreen)

	start := ss.sess.Countdown
	scr, cmd := ss.Update(stale)
	ss = scr.(*InterviewScreen)
	if ss.sess.Countdown != start {
		t.Errorf("countdown = %d, want %d (stale tick must not drain)", ss.sess.Countdown, start)
	}
	if cmd != nil {
		t.Error("stale tick must not re-arm a second chain")
	}
}

func TestInterviewScreen_ExpiryForcesSubmission(t *testing.T) {
	s, _ := interviewScreen(t)
	s.sess.Countdown = 1

	var scr screen.Screen = s
	scr, _ = scr.Update(currentTick(s))
	ss := scr.(*InterviewScreen)

	if !ss.showingFeedback {
		t.Fatal("expected feedback after expiry")
	}
	if got := ss.sess.Answers[0].Text; got != interview.ForcedAnswerText {
		t.Errorf("answer = %q, want %q", got, interview.ForcedAnswerText)
	}
	if ss.sess.Current != 1 {
		t.Errorf("current = %d, want 1", ss.sess.Current)
	}
}

func TestInterviewScreen_SubmitShowsFeedbackAndAdvances(t *testing.T) {
	s, _ := interviewScreen(t)
	s.answer.Model.SetValue("Hoisting moves declarations to the top of their scope.")

	var scr screen.Screen = s
	scr, _ = scr.Update(ctrlKey('s'))
	ss := scr.(*InterviewScreen)

	if !ss.showingFeedback {
		t.Fatal("expected feedback after submit")
	}
	if ss.lastOutcome == nil || ss.lastOutcome.Completed {
		t.Fatal("expected a non-final outcome")
	}
	if ss.sess.Current != 1 {
		t.Errorf("current = %d, want 1", ss.sess.Current)
	}

	// Any key dismisses and re-arms the timer for the next question.
	scr, cmd := ss.Update(keyPress(' '))
	ss = scr.(*InterviewScreen)
	if ss.showingFeedback {
		t.Error("expected feedback to be dismissed")
	}
	if cmd == nil {
		t.Error("expected a command after feedback dismiss")
	}
}

func TestInterviewScreen_QuitConfirm(t *testing.T) {
	s, _ := interviewScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*InterviewScreen)
	if !ss.showingQuitConfirm {
		t.Fatal("expected quit confirmation dialog")
	}
	if !ss.sess.Paused {
		t.Error("expected the clock to freeze under the dialog")
	}

	// N keeps going.
	scr, cmd := ss.Update(keyPress('n'))
	ss = scr.(*InterviewScreen)
	if ss.showingQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
	if ss.sess.Paused {
		t.Error("expected the session to resume")
	}
	if cmd == nil {
		t.Error("expected a tick command after resuming")
	}

	// Esc then Y abandons.
	scr, _ = ss.Update(specialKey(tea.KeyEscape))
	_, cmd = scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected a PopScreenMsg after abandoning")
	}
}

func TestInterviewScreen_CompletionSavesAndShowsSummary(t *testing.T) {
	s, repo := interviewScreen(t)

	var scr screen.Screen = s
	ss := s
	for i := 0; i < len(ss.sess.Questions); i++ {
		scr, _ = ss.submitAnswer("A reasonable answer covering the basics of the topic at hand.")
		ss = scr.(*InterviewScreen)
		if !ss.showingFeedback {
			t.Fatalf("submit %d: expected feedback", i)
		}
		if i < len(ss.sess.Questions)-1 {
			scr, _ = ss.Update(keyPress(' '))
			ss = scr.(*InterviewScreen)
		}
	}

	if ss.pendingRecord == nil {
		t.Fatal("expected a pending record after the last answer")
	}

	// Dismissing the last feedback saves the record.
	scr, cmd := ss.Update(keyPress(' '))
	ss = scr.(*InterviewScreen)
	if cmd == nil {
		t.Fatal("expected a save command")
	}
	msg := cmd()
	saved, ok := msg.(recordSavedMsg)
	if !ok {
		t.Fatalf("msg = %T, want recordSavedMsg", msg)
	}
	if saved.Err != nil {
		t.Fatalf("save error: %v", saved.Err)
	}
	if len(repo.upserted) != 1 {
		t.Fatalf("upserted = %d, want 1", len(repo.upserted))
	}

	// The saved message swaps in the summary screen.
	_, cmd = ss.Update(saved)
	if cmd == nil {
		t.Fatal("expected a replace command")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want ReplaceScreenMsg", cmd())
	}
	if _, ok := replace.Screen.(*summaryscreen.SummaryScreen); !ok {
		t.Errorf("screen = %T, want *summaryscreen.SummaryScreen", replace.Screen)
	}
}

func TestInterviewScreen_SubmitRejectedWhilePaused(t *testing.T) {
	s, _ := interviewScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(ctrlKey('p'))
	ss := scr.(*InterviewScreen)

	scr, _ = ss.Update(ctrlKey('s'))
	ss = scr.(*InterviewScreen)
	if len(ss.sess.Answers) != 0 {
		t.Error("expected no answer recorded while paused")
	}
}

func TestInterviewScreen_StatusShowsCountdown(t *testing.T) {
	s, _ := interviewScreen(t)
	s.sess.Countdown = 65

	if got := s.Status(); got != "1:05" {
		t.Errorf("Status = %q, want %q", got, "1:05")
	}

	_ = s.sess.Pause()
	if got := s.Status(); got != "paused" {
		t.Errorf("Status = %q, want %q", got, "paused")
	}
}

func TestInterviewScreen_ViewNonEmptyPerState(t *testing.T) {
	s, _ := testScreen()
	if s.View(80, 24) == "" {
		t.Error("expected non-empty upload view")
	}

	s, _ = interviewScreen(t)
	if s.View(80, 24) == "" {
		t.Error("expected non-empty question view")
	}

	s.showingQuitConfirm = true
	if s.View(80, 24) == "" {
		t.Error("expected non-empty quit confirm view")
	}
}
