// Package ngram registers character n-gram tokenizers. They need no
// dictionary and work for any script.
package ngram

import (
	"github.com/future-architect/intersect/nlp"
)

const (
	Unigram = "unigram"
	Bigram  = "bigram"
)

func init() {
	nlp.RegisterTokenizer(Unigram, Splitter(1), nil, nil)
	nlp.RegisterTokenizer(Bigram, Splitter(2), nil, nil)
}

// Splitter returns a splitter that emits every run of n consecutive runes.
func Splitter(n int) func(string) []string {
	return func(content string) []string {
		chars := []rune(content)
		if len(chars) < n {
			return []string{}
		}
		result := make([]string, len(chars)-n+1)
		for i := range result {
			result[i] = string(chars[i : i+n])
		}
		return result
	}
}
