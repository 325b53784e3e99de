package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleResume = `John Doe
Software Engineer
Email: john.doe@example.com
Phone: (555) 123-4567

EXPERIENCE
Senior Full Stack Developer at Tech Corp (2021-2023)
- Developed React applications with Node.js backend
`

func TestParseExtractsContactFields(t *testing.T) {
	info := Parse(sampleResume)

	assert.Equal(t, "John Doe", info.Name)
	assert.Equal(t, "john.doe@example.com", info.Email)
	assert.Equal(t, "(555) 123-4567", info.Phone)
	assert.Equal(t, sampleResume, info.ResumeText)
}

func TestParseSkipsHeaderLinesForName(t *testing.T) {
	text := `RESUME
Curriculum Vitae
Jane Smith
jane@example.com`

	info := Parse(text)

	assert.Equal(t, "Jane Smith", info.Name)
	assert.Equal(t, "jane@example.com", info.Email)
}

func TestParseMissingFieldsStayEmpty(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty text", ""},
		{"no contact info", "EXPERIENCE\n- built things\n- shipped stuff"},
		{"single word lines", "Engineer\nDeveloper\nArchitect"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Parse(tt.text)
			assert.Empty(t, info.Name)
			assert.Empty(t, info.Email)
			assert.Empty(t, info.Phone)
			assert.Equal(t, tt.text, info.ResumeText)
		})
	}
}

func TestParsePhoneVariants(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"dashed", "call 555-123-4567 today", "555-123-4567"},
		{"dotted", "call 555.123.4567 today", "555.123.4567"},
		{"parenthesized", "call (555) 123-4567 today", "(555) 123-4567"},
		{"country code", "call +1-555-123-4567 today", "+1-555-123-4567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.text).Phone)
		})
	}
}
