// Package boundary finds semantically meaningful split points in text.
//
// The detector keeps a fixed catalogue of ten boundary patterns, ordered
// strongest to weakest: paragraph breaks, sentence ends before a capital,
// colon before a capital, plain sentence ends, semicolons, newlines,
// commas, colons, spaced dashes, and multi-space runs. Every pattern
// anchors on whitespace, so one linear walk over the text classifies each
// whitespace run against the whole catalogue at once instead of rescanning
// the text per pattern. That keeps worst-case scan time linear even for
// adversarial inputs such as megabytes of repeated punctuation.
//
// # Usage
//
//	text := boundary.Normalize(raw)
//	set := boundary.Detect(text)
//
//	for _, off := range set.Offsets() {
//	    rank, _ := set.RankAt(off)
//	    fmt.Printf("split candidate at %d (rank %d)\n", off, rank)
//	}
//
// Offsets always include 0 and len(text) so a caller can treat document
// edges as split candidates. An offset's rank is the strongest pattern
// that produced it; lower rank means a stronger boundary.
package boundary
