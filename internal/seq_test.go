package internal

import (
	"iter"
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func pairs(keys ...string) iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for n, key := range keys {
			if !yield(key, n) {
				return
			}
		}
	}
}

func TestChain2(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		seqs   [][]string
		limit  int
		expect []string
	}){
		{"none", nil, 10, nil},
		{"one", [][]string{{"a", "b"}}, 10, []string{"a", "b"}},
		{"two", [][]string{{"a"}, {"b", "c"}}, 10, []string{"a", "b", "c"}},
		{"empty-middle", [][]string{{"a"}, {}, {"c"}}, 10, []string{"a", "c"}},
		{"stop-early", [][]string{{"a", "b"}, {"c", "d"}}, 3, []string{"a", "b", "c"}},
	}

	for _, entry := range table {
		var seqs []iter.Seq2[string, int]
		for _, keys := range entry.seqs {
			seqs = append(seqs, pairs(keys...))
		}

		var got []string
		for key := range Chain2(seqs...) {
			got = append(got, key)
			if len(got) == entry.limit {
				break
			}
		}
		assert.Equal(entry.expect, got, entry.name)
	}

	merged := maps.Collect(Chain2(maps.All(map[string]int{"a": 1}), maps.All(map[string]int{"b": 2})))
	assert.Equal([]string{"a", "b"}, slices.Sorted(maps.Keys(merged)))
}
