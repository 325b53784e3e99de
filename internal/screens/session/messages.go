package session

import (
	"github.com/vettalabs/vetta/internal/interview"
)

// timerTickMsg is sent every second to drain the countdown. gen
// identifies the tick chain that produced it; ticks from a superseded
// chain are dropped so the countdown can never drain faster than one
// second per second.
type timerTickMsg struct {
	gen int
}

// resumeLoadedMsg is sent when the resume file has been read and parsed.
type resumeLoadedMsg struct {
	Info interview.CandidateInfo
	Err  error
}

// recordSavedMsg is sent when the finalized record has been written to
// the candidate store.
type recordSavedMsg struct {
	Err error
}
