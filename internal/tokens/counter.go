// Package tokens provides token counting for chunk sizing. The default
// word counter is what chunk scoring uses; the tiktoken counter is for
// callers that need counts matching a specific embedding model.
package tokens

import "unicode"

// Counter reports how many tokens a piece of text contains. Counting a
// chunk candidate happens in the scoring hot path, so implementations
// must be cheap and safe for concurrent use.
type Counter interface {
	Count(text string) int
}

// WordCounter approximates a word tokenizer: a token is a maximal run of
// letters/digits, or a single non-space punctuation mark. "Sentence one."
// counts three tokens.
type WordCounter struct{}

func (WordCounter) Count(text string) int {
	count := 0
	inWord := false
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			inWord = false
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if !inWord {
				count++
				inWord = true
			}
		default:
			count++
			inWord = false
		}
	}
	return count
}
