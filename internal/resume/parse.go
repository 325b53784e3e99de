// Package resume extracts candidate contact fields from raw resume text.
//
// Extraction is best-effort pattern matching: any field may come back
// empty, and the info-collection stage fills the gaps. Decoding binary
// resume formats (PDF, DOCX) is out of scope; callers hand in plain text.
package resume

import (
	"regexp"
	"strings"

	"github.com/vettalabs/vetta/internal/interview"
)

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`)

	// phoneLikeRe flags lines containing a phone number so they are
	// skipped during name detection.
	phoneLikeRe = regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`)

	// nameWordRe matches a single word of a plausible human name.
	nameWordRe = regexp.MustCompile(`^[A-Za-z][A-Za-z.'-]*$`)
)

// Parse extracts name, email, and phone from resume text. The full text
// is always carried through so the interviewer can read it later.
func Parse(text string) interview.CandidateInfo {
	info := interview.CandidateInfo{ResumeText: text}

	if m := emailRe.FindString(text); m != "" {
		info.Email = m
	}
	if m := phoneRe.FindString(text); m != "" {
		info.Phone = m
	}
	info.Name = extractName(text)

	return info
}

// extractName scans the first few non-empty lines for something shaped
// like a person's name: 2-4 words of letters, skipping headers and
// contact lines.
func extractName(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
	}

	limit := len(lines)
	if limit > 5 {
		limit = 5
	}

	for _, line := range lines[:limit] {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "resume") ||
			strings.Contains(lower, "curriculum") ||
			strings.Contains(lower, "address") ||
			strings.Contains(lower, "phone") ||
			strings.Contains(lower, "email") ||
			strings.Contains(line, "@") ||
			phoneLikeRe.MatchString(line) {
			continue
		}

		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}

		likely := true
		for _, w := range words {
			if len(w) <= 1 || !nameWordRe.MatchString(w) {
				likely = false
				break
			}
		}
		if likely {
			return line
		}
	}

	return ""
}
