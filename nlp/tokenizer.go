package nlp

import (
	"fmt"
	"sort"
	"sync"
)

const (
	LanguageJapanese = "ja"
	LanguageEnglish  = "en"
)

var (
	lock      sync.RWMutex
	languages = make(map[string]*Tokenizer)
)

type Token struct {
	Word       string
	BeforeStem string
	Positions  []uint32
}

func FindTokenizer(lang string) (*Tokenizer, error) {
	lock.RLock()
	defer lock.RUnlock()
	tokenizer, ok := languages[lang]
	if !ok {
		return nil, fmt.Errorf("can't find tokenizer for %s", lang)
	}
	return tokenizer, nil
}

// Languages returns the registered language names in sorted order.
func Languages() []string {
	lock.RLock()
	defer lock.RUnlock()
	result := make([]string, 0, len(languages))
	for lang := range languages {
		result = append(result, lang)
	}
	sort.Strings(result)
	return result
}

type Tokenizer struct {
	splitter  func(string) []string
	stemmer   func(string) string
	stopWords map[string]bool
}

// RegisterTokenizer adds a language. stemmer may be nil when words are used as is.
func RegisterTokenizer(lang string, splitter func(string) []string, stemmer func(string) string, stopWords map[string]bool) {
	if stemmer == nil {
		stemmer = func(word string) string { return word }
	}
	lock.Lock()
	defer lock.Unlock()
	languages[lang] = &Tokenizer{
		splitter:  splitter,
		stemmer:   stemmer,
		stopWords: stopWords,
	}
}

func (t Tokenizer) StemWord(word string) string {
	return t.stemmer(word)
}

func (t Tokenizer) Tokenize(content string) map[string]*Token {
	tokens, _ := t.TokenizeToMap(content)
	return tokens
}

// TokenizeToMap returns the tokens keyed by stemmed word and the number of
// words that survived the stop-word filter.
func (t Tokenizer) TokenizeToMap(content string) (map[string]*Token, int) {
	words := t.splitter(content)
	tokens := make(map[string]*Token)
	var position uint32
	for _, word := range words {
		if t.stopWords[word] {
			continue
		}
		stemWord := t.stemmer(word)
		if token, ok := tokens[stemWord]; ok {
			token.Positions = append(token.Positions, position)
		} else {
			tokens[stemWord] = &Token{
				Word:       stemWord,
				BeforeStem: word,
				Positions:  []uint32{position},
			}
		}
		position++
	}
	return tokens, int(position)
}
