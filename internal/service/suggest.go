package service

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// RankSuggestions orders recent (newest first) against input and keeps n.
// Prefix matches come first, then the rest by edit distance. Ties keep
// recency order. Codes farther than half their length from input are dropped.
// An empty input returns the n most recent.
func RankSuggestions(input string, recent []string, n int) []string {
	if n <= 0 {
		return nil
	}
	input = strings.TrimSpace(input)
	if input == "" {
		if len(recent) > n {
			return append([]string(nil), recent[:n]...)
		}
		return append([]string(nil), recent...)
	}

	type scored struct {
		code   string
		prefix bool
		dist   int
		order  int
	}
	var cands []scored
	for i, code := range recent {
		if code == input {
			continue
		}
		s := scored{code: code, order: i}
		if strings.HasPrefix(code, input) {
			s.prefix = true
		} else {
			s.dist = levenshtein.ComputeDistance(input, code)
			if s.dist > max(len(code), len(input))/2 {
				continue
			}
		}
		cands = append(cands, s)
	}
	sort.SliceStable(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.prefix != b.prefix {
			return a.prefix
		}
		if a.dist != b.dist {
			return a.dist < b.dist
		}
		return a.order < b.order
	})
	if len(cands) > n {
		cands = cands[:n]
	}
	out := make([]string, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.code)
	}
	return out
}
