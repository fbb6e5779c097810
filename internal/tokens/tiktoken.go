package tokens

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// defaultEncoding is used when no model or encoding is specified, or the
// requested one cannot be resolved.
const defaultEncoding = "cl100k_base"

// TiktokenCounter counts tokens with a BPE encoding, matching what an
// OpenAI-style embedding model would see. The encoder is immutable after
// construction, so the counter is safe for concurrent use.
type TiktokenCounter struct {
	encodingName string
	tke          *tiktoken.Tiktoken
}

// NewTiktokenCounter resolves modelOrEncoding first as an encoding name,
// then as a model name, falling back to cl100k_base.
func NewTiktokenCounter(modelOrEncoding string) (*TiktokenCounter, error) {
	if modelOrEncoding == "" {
		modelOrEncoding = defaultEncoding
	}

	name := modelOrEncoding
	tke, err := tiktoken.GetEncoding(modelOrEncoding)
	if err != nil {
		tke, err = tiktoken.EncodingForModel(modelOrEncoding)
		if err != nil {
			name = defaultEncoding
			tke, err = tiktoken.GetEncoding(defaultEncoding)
			if err != nil {
				return nil, fmt.Errorf("failed to get default encoding %q: %w", defaultEncoding, err)
			}
		}
	}

	return &TiktokenCounter{encodingName: name, tke: tke}, nil
}

func (tc *TiktokenCounter) Count(text string) int {
	return len(tc.tke.Encode(text, nil, nil))
}

// Encoding returns the name of the encoding actually in use.
func (tc *TiktokenCounter) Encoding() string {
	return tc.encodingName
}
