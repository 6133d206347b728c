package japanese

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_japaneseSplitter(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "empty string",
			content: "",
			want:    nil,
		},
		{
			name:    "すもももももももものうち",
			content: "すもももももももものうち",
			want:    []string{"すもも", "もも", "もも", "うち"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, japaneseSplitter(tt.content))
		})
	}
}

func Test_japaneseSplitterDropsSymbols(t *testing.T) {
	words := japaneseSplitter("人魚は、南の方の海に棲んでいる。")
	assert.Contains(t, words, "人魚")
	assert.Contains(t, words, "海")
	assert.NotContains(t, words, "は")
	assert.NotContains(t, words, "、")
	assert.NotContains(t, words, "。")
}
