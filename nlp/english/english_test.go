package english

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_englishSplitter(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "empty string",
			content: "",
			want:    []string{},
		},
		{
			name:    "punctuation",
			content: "Hello, World! Go 1.22",
			want:    []string{"hello", "world", "go", "1", "22"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, englishSplitter(tt.content))
		})
	}
}

func Test_englishStemmer(t *testing.T) {
	assert.Equal(t, englishStemmer("programming"), englishStemmer("programs"))
	assert.Equal(t, "search", englishStemmer("searching"))
}
