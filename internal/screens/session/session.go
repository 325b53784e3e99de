// Package session implements the interview screen: it drives a single
// interview.Session through the resume upload, info collection, and
// timed question stages, then hands the finished record to the store
// and swaps in the summary screen.
package session

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/vettalabs/vetta/internal/bank"
	"github.com/vettalabs/vetta/internal/interview"
	"github.com/vettalabs/vetta/internal/resume"
	"github.com/vettalabs/vetta/internal/router"
	"github.com/vettalabs/vetta/internal/screen"
	summaryscreen "github.com/vettalabs/vetta/internal/screens/summary"
	"github.com/vettalabs/vetta/internal/store"
	"github.com/vettalabs/vetta/internal/ui/components"
	"github.com/vettalabs/vetta/internal/ui/layout"
)

// InterviewScreen implements screen.Screen for a live interview.
type InterviewScreen struct {
	sess       *interview.Session
	sampler    *bank.Sampler
	candidates store.CandidateRepo

	input  components.TextInput  // resume path and info fields
	answer components.AnswerArea // interview answers

	infoField string // info field currently being collected

	showingFeedback    bool
	showingQuitConfirm bool
	lastOutcome        *interview.Outcome
	pendingRecord      *interview.CandidateRecord

	tickGen int // current tick chain; stale chains are ignored

	errMsg    string // fatal: any key goes back
	fieldErr  string // inline validation error, cleared on next submit
	resumeErr string // resume load failure, stage continues
}

var _ screen.Screen = (*InterviewScreen)(nil)
var _ screen.KeyHintProvider = (*InterviewScreen)(nil)
var _ screen.StatusProvider = (*InterviewScreen)(nil)

// New creates an interview screen with injected dependencies.
func New(sampler *bank.Sampler, candidates store.CandidateRepo) *InterviewScreen {
	return &InterviewScreen{
		sess:       interview.New(),
		sampler:    sampler,
		candidates: candidates,
		input:      components.NewTextInput("Path to resume (.txt), or Enter to skip", 0),
	}
}

func (s *InterviewScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *InterviewScreen) Title() string {
	switch s.sess.Stage {
	case interview.StageUpload:
		return "New Interview"
	case interview.StageInfoCollection:
		return "Candidate Details"
	case interview.StageInterview:
		return "Interview"
	default:
		return "Interview"
	}
}

// Status surfaces the countdown in the header while a question is live.
func (s *InterviewScreen) Status() string {
	if s.sess.Stage != interview.StageInterview || s.showingFeedback {
		return ""
	}
	if s.sess.Paused {
		return "paused"
	}
	return fmt.Sprintf("%d:%02d", s.sess.Countdown/60, s.sess.Countdown%60)
}

func (s *InterviewScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon interview"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingFeedback {
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}
	switch s.sess.Stage {
	case interview.StageUpload:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Load / Skip"},
			{Key: "Esc", Description: "Back"},
		}
	case interview.StageInfoCollection:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		if s.sess.Paused {
			return []layout.KeyHint{
				{Key: "Ctrl+P", Description: "Resume"},
				{Key: "Esc", Description: "Quit"},
			}
		}
		return []layout.KeyHint{
			{Key: "Ctrl+S", Description: "Submit answer"},
			{Key: "Ctrl+P", Description: "Pause"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (s *InterviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resumeLoadedMsg:
		return s.handleResumeLoaded(msg)

	case timerTickMsg:
		return s.handleTimerTick(msg)

	case recordSavedMsg:
		rec := s.pendingRecord
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: summaryscreen.New(rec, msg.Err),
			}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardToActiveInput(msg)
}

func (s *InterviewScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
			if s.sess.Paused {
				if err := s.sess.Resume(); err == nil {
					return s, s.armTick()
				}
			}
			return s, nil
		}
		return s, nil
	}

	if s.showingFeedback {
		return s.dismissFeedback()
	}

	switch s.sess.Stage {
	case interview.StageUpload:
		switch key {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			path := strings.TrimSpace(s.input.Value())
			if path == "" {
				return s.skipResume()
			}
			return s, loadResumeCmd(path)
		}

	case interview.StageInfoCollection:
		switch key {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			return s.submitInfoField()
		}

	case interview.StageInterview:
		switch key {
		case "esc":
			// Freeze the clock while the dialog is up.
			_ = s.sess.Pause()
			s.showingQuitConfirm = true
			return s, nil
		case "ctrl+p":
			return s.togglePause()
		case "ctrl+s":
			if s.sess.Paused {
				return s, nil
			}
			return s.submitAnswer(s.answer.Value())
		}
		if s.sess.Paused {
			return s, nil
		}
	}

	return s.forwardToActiveInput(msg)
}

// forwardToActiveInput routes messages to whichever input component the
// current stage owns.
func (s *InterviewScreen) forwardToActiveInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.showingFeedback || s.showingQuitConfirm || s.errMsg != "" {
		return s, nil
	}

	var cmd tea.Cmd
	switch s.sess.Stage {
	case interview.StageUpload, interview.StageInfoCollection:
		s.input, cmd = s.input.Update(msg)
	case interview.StageInterview:
		if !s.sess.Paused {
			s.answer, cmd = s.answer.Update(msg)
		}
	}
	return s, cmd
}

// loadResumeCmd reads and parses the resume file off the update loop.
func loadResumeCmd(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return resumeLoadedMsg{Err: err}
		}
		return resumeLoadedMsg{Info: resume.Parse(string(data))}
	}
}

func (s *InterviewScreen) handleResumeLoaded(msg resumeLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.resumeErr = msg.Err.Error()
		return s, nil
	}
	s.resumeErr = ""
	if err := s.sess.SubmitResume(msg.Info); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	return s.nextInfoField()
}

func (s *InterviewScreen) skipResume() (screen.Screen, tea.Cmd) {
	if err := s.sess.SubmitResume(interview.CandidateInfo{}); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	return s.nextInfoField()
}

// nextInfoField selects the first still-missing candidate field, or
// starts the interview when everything is collected.
func (s *InterviewScreen) nextInfoField() (screen.Screen, tea.Cmd) {
	info := s.sess.Info
	switch {
	case info.Name == "":
		s.infoField = "name"
		s.input = components.NewTextInput("Full name", 80)
	case info.Email == "":
		s.infoField = "email"
		s.input = components.NewTextInput("Email address", 120)
	case info.Phone == "":
		s.infoField = "phone"
		s.input = components.NewTextInput("Phone number", 30)
	default:
		return s.beginInterview()
	}
	return s, s.input.Init()
}

func (s *InterviewScreen) submitInfoField() (screen.Screen, tea.Cmd) {
	value := strings.TrimSpace(s.input.Value())

	if err := validateField(s.infoField, value); err != nil {
		s.fieldErr = err.Error()
		s.input.Submit(false)
		return s, nil
	}
	s.fieldErr = ""

	var fields interview.CandidateInfo
	switch s.infoField {
	case "name":
		fields.Name = value
	case "email":
		fields.Email = value
	case "phone":
		fields.Phone = value
	}
	if err := s.sess.SubmitCandidateInfo(fields); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	return s.nextInfoField()
}

func validateField(field, value string) error {
	if value == "" {
		return fmt.Errorf("%s is required", field)
	}
	if field == "email" && (!strings.Contains(value, "@") || !strings.Contains(value, ".")) {
		return fmt.Errorf("that does not look like an email address")
	}
	return nil
}

func (s *InterviewScreen) beginInterview() (screen.Screen, tea.Cmd) {
	questions, err := s.sampler.Sample(bank.DefaultTierCounts)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if err := s.sess.BeginInterview(questions); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.answer = components.NewAnswerArea(70, 8)
	return s, tea.Batch(s.answer.Init(), s.armTick())
}

func (s *InterviewScreen) handleTimerTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	// A tick armed before a pause or feedback overlay can land after the
	// chain was replaced; letting it through would drain the countdown
	// at double rate.
	if msg.gen != s.tickGen {
		return s, nil
	}
	if s.showingFeedback || s.showingQuitConfirm {
		return s, nil
	}

	s.sess.Tick()

	if s.sess.Expired() {
		outcome, err := s.sess.ForceSubmit()
		if err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		return s.showOutcome(outcome)
	}

	if s.sess.Active {
		return s, tickCmd(s.tickGen)
	}
	return s, nil
}

func (s *InterviewScreen) togglePause() (screen.Screen, tea.Cmd) {
	if s.sess.Paused {
		if err := s.sess.Resume(); err != nil {
			return s, nil
		}
		return s, s.armTick()
	}
	_ = s.sess.Pause()
	return s, nil
}

func (s *InterviewScreen) submitAnswer(text string) (screen.Screen, tea.Cmd) {
	outcome, err := s.sess.SubmitAnswer(text)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	return s.showOutcome(outcome)
}

// showOutcome displays the per-question feedback overlay. The tick
// chain is deliberately not re-armed here; dismissing the overlay
// restarts it for the next question.
func (s *InterviewScreen) showOutcome(outcome *interview.Outcome) (screen.Screen, tea.Cmd) {
	s.lastOutcome = outcome
	s.showingFeedback = true
	if outcome.Completed {
		s.pendingRecord = outcome.Record
	}
	return s, nil
}

func (s *InterviewScreen) dismissFeedback() (screen.Screen, tea.Cmd) {
	s.showingFeedback = false

	if s.pendingRecord != nil {
		return s, s.saveRecordCmd(s.pendingRecord)
	}

	s.answer = components.NewAnswerArea(70, 8)
	return s, tea.Batch(s.answer.Init(), s.armTick())
}

func (s *InterviewScreen) saveRecordCmd(rec *interview.CandidateRecord) tea.Cmd {
	repo := s.candidates
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return recordSavedMsg{Err: repo.Upsert(ctx, rec)}
	}
}

// armTick supersedes any in-flight tick chain and starts a new one.
// Called whenever the clock restarts: interview start, resume, and
// feedback dismissal.
func (s *InterviewScreen) armTick() tea.Cmd {
	s.tickGen++
	return tickCmd(s.tickGen)
}

// tickCmd returns a 1-second tick command for the given chain.
func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{gen: gen}
	})
}
