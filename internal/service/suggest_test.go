package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRankSuggestions(t *testing.T) {
	recent := []string{"01001000", "59040240", "59040999", "20040002", "59041240"}

	cases := []struct {
		name  string
		input string
		n     int
		want  []string
	}{
		{name: "empty input returns most recent", input: "", n: 2, want: []string{"01001000", "59040240"}},
		{name: "prefix matches in recency order", input: "5904", n: 5, want: []string{"59040240", "59040999", "59041240"}},
		{name: "typo ranked by distance", input: "59040241", n: 2, want: []string{"59040240", "59041240"}},
		{name: "exact match excluded", input: "20040002", n: 5, want: []string{"01001000"}},
		{name: "zero limit", input: "5", n: 0, want: nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, RankSuggestions(tc.input, recent, tc.n))
		})
	}
}
