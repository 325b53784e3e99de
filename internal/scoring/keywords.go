package scoring

import "strings"

// stopWords are common short English words excluded from keyword
// extraction. Words of length <= 3 are already excluded by the length
// filter; this list catches the frequent 3-letter-and-up filler.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "had": true,
	"her": true, "was": true, "one": true, "our": true, "out": true,
	"day": true, "get": true, "has": true, "him": true, "his": true,
	"how": true, "its": true, "may": true, "new": true, "now": true,
	"old": true, "see": true, "two": true, "who": true, "boy": true,
	"did": true, "she": true, "use": true, "way": true, "oil": true,
	"sit": true, "set": true,
}

// extractKeywords tokenizes a reference answer into candidate keywords:
// whitespace-split words longer than 3 characters that are not stop words.
// Punctuation attached to words is kept, matching the substring check below.
func extractKeywords(referenceAnswer string) []string {
	var keywords []string
	for _, word := range strings.Fields(referenceAnswer) {
		if len(word) <= 3 {
			continue
		}
		if stopWords[strings.ToLower(word)] {
			continue
		}
		keywords = append(keywords, word)
	}
	return keywords
}

// countKeywordMatches counts how many reference-answer keywords appear
// as case-insensitive substrings of the answer.
func countKeywordMatches(referenceAnswer, answer string) int {
	answerLower := strings.ToLower(answer)
	matches := 0
	for _, kw := range extractKeywords(referenceAnswer) {
		if strings.Contains(answerLower, strings.ToLower(kw)) {
			matches++
		}
	}
	return matches
}
