package nlp_test

import (
	"testing"

	"github.com/future-architect/intersect/nlp"
	_ "github.com/future-architect/intersect/nlp/english"
	_ "github.com/future-architect/intersect/nlp/japanese"
	"github.com/future-architect/intersect/nlp/ngram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnglish(t *testing.T) {
	tokenizer, err := nlp.FindTokenizer(nlp.LanguageEnglish)
	require.NoError(t, err)
	tokens := tokenizer.Tokenize("Go is an open source programming language that makes it easy to build simple, reliable, and efficient software.")
	_, ok := tokens[tokenizer.StemWord("programming")]
	assert.True(t, ok)

	// "a" is a stop word
	_, ok = tokens[tokenizer.StemWord("a")]
	assert.False(t, ok)
}

func TestJapanese(t *testing.T) {
	tokenizer, err := nlp.FindTokenizer(nlp.LanguageJapanese)
	require.NoError(t, err)
	tokens := tokenizer.Tokenize("「顧客はドリルではなく穴が欲しい」とよく言われる。もう一歩進んで穴が必要なシチュエーションも考えてみましょう、と。")
	_, ok := tokens[tokenizer.StemWord("ドリル")]
	assert.True(t, ok)

	_, ok = tokens[tokenizer.StemWord("は")]
	assert.False(t, ok)
}

func TestTokenizeToMap(t *testing.T) {
	tokenizer, err := nlp.FindTokenizer(nlp.LanguageEnglish)
	require.NoError(t, err)
	tokens, wordCount := tokenizer.TokenizeToMap("the cat sees the cats")
	// "the" is dropped before positions are assigned
	assert.Equal(t, 3, wordCount)
	require.Contains(t, tokens, "cat")
	assert.Equal(t, []uint32{0, 2}, tokens["cat"].Positions)
	assert.Equal(t, "cat", tokens["cat"].BeforeStem)
	assert.Equal(t, []uint32{1}, tokens[tokenizer.StemWord("sees")].Positions)
}

func TestNgram(t *testing.T) {
	tokenizer, err := nlp.FindTokenizer(ngram.Bigram)
	require.NoError(t, err)
	tokens, wordCount := tokenizer.TokenizeToMap("abab")
	assert.Equal(t, 3, wordCount)
	assert.Equal(t, []uint32{0, 2}, tokens["ab"].Positions)
	assert.Equal(t, []uint32{1}, tokens["ba"].Positions)
}

func TestFindTokenizerUnknown(t *testing.T) {
	_, err := nlp.FindTokenizer("klingon")
	assert.Error(t, err)
	assert.Subset(t, nlp.Languages(), []string{"en", "ja", "unigram", "bigram"})
}
