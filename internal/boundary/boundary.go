package boundary

import "sort"

// Pattern ranks, strongest to weakest. The rank feeds boundary scoring:
// a split at a paragraph break beats a split at a comma.
const (
	RankParagraph       = iota // blank-line paragraph break
	RankSentenceCapital        // sentence end followed by a capital letter
	RankColonCapital           // colon followed by a capital letter
	RankSentence               // plain sentence end
	RankSemicolon              // semicolon
	RankNewline                // single newline
	RankComma                  // comma
	RankColon                  // colon
	RankSpacedDash             // dash with surrounding spaces
	RankMultiSpace             // run of two or more spaces

	// PatternCount is the size of the catalogue.
	PatternCount
)

// Set holds the candidate split offsets found in one text, each tagged
// with the rank of the strongest pattern that produced it. The offsets
// always include 0 and len(text); those two carry no rank, a document
// edge is scored separately.
type Set struct {
	offsets []int       // sorted, deduplicated, includes 0 and textLen
	ranked  []int       // sorted offsets that have a pattern rank
	ranks   map[int]int // offset -> strongest (lowest) rank
	textLen int
}

// Detect scans text once and returns every candidate split offset.
//
// The scan walks the text left to right and classifies each whitespace
// run exactly once against the whole catalogue, so total cost is linear
// in len(text) regardless of input shape. Long runs of punctuation or
// whitespace cannot trigger rescanning.
func Detect(text string) *Set {
	s := &Set{
		ranks:   make(map[int]int),
		textLen: len(text),
	}

	n := len(text)
	i := 0
	for i < n {
		if !isSpace(text[i]) {
			i++
			continue
		}
		// Whitespace run [i, end)
		end := i
		newlines := 0
		firstNewline := -1
		for end < n && isSpace(text[end]) {
			if text[end] == '\n' {
				newlines++
				if firstNewline < 0 {
					firstNewline = end
				}
			}
			end++
		}
		s.classifyRun(text, i, end, newlines, firstNewline)
		i = end
	}

	s.finalize()
	return s
}

// classifyRun records every catalogue pattern that fires on one maximal
// whitespace run. prev/next are the bytes bracketing the run.
func (s *Set) classifyRun(text string, start, end, newlines, firstNewline int) {
	var prev, next byte
	if start > 0 {
		prev = text[start-1]
	}
	if end < len(text) {
		next = text[end]
	}

	if newlines >= 2 {
		s.add(firstNewline, RankParagraph)
	}

	switch prev {
	case '.', '!', '?':
		if isUpper(next) {
			s.add(start, RankSentenceCapital)
		}
		s.add(start, RankSentence)
	case ':':
		if isUpper(next) {
			s.add(start, RankColonCapital)
		}
		s.add(start, RankColon)
	case ';':
		s.add(start, RankSemicolon)
	case ',':
		s.add(start, RankComma)
	}

	if newlines > 0 {
		for j := start; j < end; j++ {
			if text[j] == '\n' && (j == start || text[j-1] != '\n') {
				s.add(j, RankNewline)
			}
		}
	}

	// Dash with spaces: the run's last whitespace byte, a dash, then
	// more whitespace.
	if next == '-' && end+1 < len(text) && isSpace(text[end+1]) {
		s.add(end-1, RankSpacedDash)
	}

	if end-start >= 2 {
		s.add(start, RankMultiSpace)
	}
}

// add records an offset, keeping the strongest rank seen for it.
func (s *Set) add(offset, rank int) {
	if existing, ok := s.ranks[offset]; !ok || rank < existing {
		s.ranks[offset] = rank
	}
}

func (s *Set) finalize() {
	s.ranked = make([]int, 0, len(s.ranks))
	for off := range s.ranks {
		s.ranked = append(s.ranked, off)
	}
	sort.Ints(s.ranked)

	s.offsets = make([]int, 0, len(s.ranked)+2)
	if len(s.ranked) == 0 || s.ranked[0] != 0 {
		s.offsets = append(s.offsets, 0)
	}
	s.offsets = append(s.offsets, s.ranked...)
	if len(s.offsets) == 0 || s.offsets[len(s.offsets)-1] != s.textLen {
		s.offsets = append(s.offsets, s.textLen)
	}
}

// Offsets returns every candidate split offset in ascending order,
// including 0 and len(text).
func (s *Set) Offsets() []int {
	return s.offsets
}

// After returns the candidate offsets strictly greater than start.
func (s *Set) After(start int) []int {
	i := sort.SearchInts(s.offsets, start+1)
	return s.offsets[i:]
}

// RankAt reports the strongest pattern rank recorded at an exact offset.
func (s *Set) RankAt(offset int) (int, bool) {
	r, ok := s.ranks[offset]
	return r, ok
}

// StrongestNear reports the strongest rank recorded at any offset within
// the window |offset - pos| < window.
func (s *Set) StrongestNear(pos, window int) (int, bool) {
	best := PatternCount
	found := false
	for off := pos - window + 1; off < pos+window; off++ {
		if r, ok := s.ranks[off]; ok && r < best {
			best = r
			found = true
		}
	}
	return best, found
}

// FirstInRange finds the preferred boundary inside [from, to): the
// earliest offset produced by the strongest pattern present in the range.
func (s *Set) FirstInRange(from, to int) (int, bool) {
	lo := sort.SearchInts(s.ranked, from)
	bestRank := PatternCount
	bestOff := -1
	for i := lo; i < len(s.ranked) && s.ranked[i] < to; i++ {
		off := s.ranked[i]
		if r := s.ranks[off]; r < bestRank {
			bestRank = r
			bestOff = off
		}
	}
	return bestOff, bestOff >= 0
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
