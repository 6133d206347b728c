package intersect

import "time"

type Document struct {
	ID        uint64            `json:"id,omitempty" docstore:"id"`
	UniqueKey string            `json:"unique_key" docstore:"unique_key"`
	Language  string            `json:"lang" docstore:"lang"`
	Title     string            `json:"title" docstore:"title"`
	UpdatedAt time.Time         `json:"updated_at,omitempty" docstore:"updated_at"`
	Tags      []string          `json:"tags,omitempty" docstore:"tags"`
	Content   string            `json:"content" docstore:"content"`
	WordCount int               `json:"-" docstore:"wordcount"`
	Metadata  map[string]string `json:"metadata,omitempty" docstore:"metadata"`
}

type DocumentKey struct {
	UniqueKey string `json:"unique_key" docstore:"unique_key"`
	ID        uint64 `json:"id" docstore:"id"`
}

// Token is the decoded posting list of one word. Postings are sorted by
// DocumentID and hold each document once.
type Token struct {
	Word     string    `json:"word"`
	Found    bool      `json:"found"`
	Postings []Posting `json:"postings"`
}

// DocumentIDs returns the posting list as sorted document IDs.
func (t Token) DocumentIDs() []uint64 {
	result := make([]uint64, len(t.Postings))
	for i, posting := range t.Postings {
		result[i] = posting.DocumentID
	}
	return result
}

type TokenEntity struct {
	Word     string          `docstore:"word"`
	Postings []PostingEntity `docstore:"postings"`
}

type Posting struct {
	DocumentID uint64   `json:"document_id"`
	Positions  []uint32 `json:"positions"`
}

// PostingEntity stores positions compressed with compints.
type PostingEntity struct {
	DocumentID uint64 `docstore:"document_id"`
	Positions  []byte `docstore:"positions"`
}

type Tag struct {
	Tag         string   `json:"tag"`
	Found       bool     `json:"found"`
	DocumentIDs []uint64 `json:"documentIDs"`
}

// TagEntity stores document IDs as a serialized roaring64 bitmap.
type TagEntity struct {
	Tag         string `docstore:"tag"`
	DocumentIDs []byte `docstore:"documentIDs"`
}

type UniqueID struct {
	Collection string `docstore:"collection"`
	LatestID   int64  `docstore:"latestID"`
}
