package english

import (
	"strings"
	"unicode"

	"github.com/future-architect/intersect/nlp"
	"github.com/kljensen/snowball/english"
)

const Language = "en"

func init() {
	stopWordsSrc := []string{
		"a", "about", "above", "after", "again", "against", "all", "am", "an", "and", "any", "are", "as", "at",
		"be", "because", "been", "before", "being", "below", "between", "both", "but", "by",
		"can", "could", "did", "do", "does", "doing", "down", "during", "each", "few", "for", "from", "further",
		"had", "has", "have", "having", "he", "her", "here", "hers", "herself", "him", "himself", "his", "how",
		"i", "if", "in", "into", "is", "it", "its", "itself", "just", "me", "more", "most", "my", "myself",
		"no", "nor", "not", "now", "of", "off", "on", "once", "only", "or", "other", "our", "ours", "ourselves", "out", "over", "own",
		"same", "she", "should", "so", "some", "such", "than", "that", "the", "their", "theirs", "them", "themselves", "then",
		"there", "these", "they", "this", "those", "through", "to", "too", "under", "until", "up", "very",
		"was", "we", "were", "what", "when", "where", "which", "while", "who", "whom", "why", "will", "with",
		"you", "your", "yours", "yourself", "yourselves",
	}
	stopWords := make(map[string]bool)
	for _, stopWord := range stopWordsSrc {
		stopWords[stopWord] = true
	}
	nlp.RegisterTokenizer(Language, englishSplitter, englishStemmer, stopWords)
}

func englishSplitter(content string) []string {
	return strings.FieldsFunc(strings.ToLower(content), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func englishStemmer(word string) string {
	return english.Stem(word, false)
}
