package ngram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitter(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		content string
		want    []string
	}{
		{
			name:    "unigram",
			n:       1,
			content: "hello",
			want:    []string{"h", "e", "l", "l", "o"},
		},
		{
			name:    "unigram empty",
			n:       1,
			content: "",
			want:    []string{},
		},
		{
			name:    "bigram",
			n:       2,
			content: "hello",
			want:    []string{"he", "el", "ll", "lo"},
		},
		{
			name:    "bigram one char string",
			n:       2,
			content: "a",
			want:    []string{},
		},
		{
			name:    "bigram multibyte",
			n:       2,
			content: "検索語",
			want:    []string{"検索", "索語"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Splitter(tt.n)(tt.content))
		})
	}
}
