package intersect

import (
	"context"
	"fmt"
	"reflect"
	"slices"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/future-architect/intersect/nlp"
	"github.com/shibukawa/compints"
	"go.uber.org/zap"
	"gocloud.dev/docstore"
	"gocloud.dev/gcerrors"
)

const retryCount = 50

func retry(label string, fn func() error) error {
	var lastError error
	for i := 0; i < retryCount; i++ {
		lastError = fn()
		if lastError == nil {
			return nil
		}
	}
	return fmt.Errorf("fail to %s: %w", label, lastError)
}

// PostDocument registers document under uniqueKey, or replaces the document
// already registered there, and updates its tag and token posting lists.
func (ix *Index) PostDocument(uniqueKey string, document *Document) (uint64, error) {
	newTags, newDocTokens, wordCount, err := ix.analyzeDocument("new", document)
	if err != nil {
		return 0, err
	}
	var docID uint64
	err = retry("register document's unique key", func() (err error) {
		docID, err = ix.postDocumentKey(uniqueKey)
		return
	})
	if err != nil {
		return 0, err
	}
	err = retry("register document", func() error {
		oldDoc, err := ix.postDocument(docID, uniqueKey, wordCount, document)
		if err != nil {
			return err
		}
		oldTags, oldDocTokens, _, err := ix.analyzeDocument("old", oldDoc)
		if err != nil {
			return err
		}
		return ix.updateTagsAndTokens(docID, oldTags, newTags, oldDocTokens, newDocTokens)
	})
	if err != nil {
		return 0, err
	}
	ix.logger.Debug("document posted",
		zap.String("key", uniqueKey),
		zap.Uint64("id", docID),
		zap.Int("words", wordCount))
	return docID, nil
}

func (ix *Index) postDocumentKey(uniqueKey string) (uint64, error) {
	existingDocKey := DocumentKey{
		UniqueKey: uniqueKey,
	}
	err := ix.docKeys.Get(ix.ctx, &existingDocKey)
	if err == nil {
		return existingDocKey.ID, nil
	}
	newID, err := ix.incrementID()
	if err != nil {
		return 0, err
	}
	err = ix.docKeys.Create(ix.ctx, &DocumentKey{
		UniqueKey: uniqueKey,
		ID:        newID,
	})
	if err != nil {
		return 0, err
	}
	return newID, nil
}

func (ix *Index) postDocument(docID uint64, uniqueKey string, wordCount int, document *Document) (*Document, error) {
	existingDocument := Document{
		ID: docID,
	}
	document.ID = docID
	document.UniqueKey = uniqueKey
	document.WordCount = wordCount
	err := ix.documents.Get(ix.ctx, &existingDocument)
	if err != nil {
		return nil, ix.documents.Create(ix.ctx, document)
	}
	return &existingDocument, ix.documents.Replace(ix.ctx, document)
}

func (ix *Index) incrementID() (uint64, error) {
	counter := UniqueID{
		Collection: documentsCounter,
	}
	err := ix.uniqueIDs.Update(ix.ctx, &counter, docstore.Mods{"latestID": docstore.Increment(1)})
	if err != nil {
		return 0, err
	}
	latest := UniqueID{
		Collection: documentsCounter,
	}
	err = ix.uniqueIDs.Get(ix.ctx, &latest)
	if err != nil {
		return 0, err
	}
	return uint64(latest.LatestID), nil
}

func (ix *Index) RemoveDocument(uniqueKey string) error {
	docID, existingDocKey, oldDoc, err := ix.findDocumentByKey(uniqueKey)
	if err != nil {
		return err
	}
	err = ix.docKeys.Delete(ix.ctx, existingDocKey)
	if err != nil {
		return err
	}
	err = ix.documents.Delete(ix.ctx, oldDoc)
	if err != nil {
		return err
	}
	tags, tokens, _, err := ix.analyzeDocument("removed", oldDoc)
	if err != nil {
		return err
	}
	ix.logger.Debug("document removed", zap.String("key", uniqueKey), zap.Uint64("id", docID))
	return ix.updateTagsAndTokens(docID, tags, nil, tokens, nil)
}

func (ix *Index) language(lang string) string {
	if lang == "" {
		return ix.defaultLanguage
	}
	return lang
}

func (ix *Index) analyzeDocument(label string, document *Document) (tags []string, tokens map[string]*nlp.Token, wordCount int, err error) {
	if document == nil {
		return nil, make(map[string]*nlp.Token), 0, nil
	}
	tokenizer, err := nlp.FindTokenizer(ix.language(document.Language))
	if err != nil {
		return nil, nil, 0, fmt.Errorf("Cannot find tokenizer for %s document: lang=%s, err=%w", label, document.Language, err)
	}
	tokens, wordCount = tokenizer.TokenizeToMap(document.Content)
	return document.Tags, tokens, wordCount, nil
}

func (ix *Index) updateTagsAndTokens(docID uint64, oldTags, newTags []string, oldDocTokens, newDocTokens map[string]*nlp.Token) error {
	newTags, deletedTags := groupingTags(oldTags, newTags)
	for _, tag := range newTags {
		err := ix.AddDocumentToTag(tag, docID)
		if err != nil {
			return err
		}
	}
	for _, tag := range deletedTags {
		err := ix.RemoveDocumentFromTag(tag, docID)
		if err != nil {
			return err
		}
	}

	newTokens, deletedTokens, updateTokens := groupingTokens(oldDocTokens, newDocTokens)
	for _, token := range append(newTokens, updateTokens...) {
		err := ix.AddDocumentToToken(token.Word, docID, token.Positions)
		if err != nil {
			return err
		}
	}
	for _, token := range deletedTokens {
		err := ix.RemoveDocumentFromToken(token.Word, docID)
		if err != nil {
			return err
		}
	}
	return nil
}

func groupingTags(oldGroup, newGroup []string) (newItems, deletedItems []string) {
	oldMap := make(map[string]bool)
	for _, item := range oldGroup {
		oldMap[item] = true
	}
	newMap := make(map[string]bool)
	for _, item := range newGroup {
		newMap[item] = true
		if !oldMap[item] {
			newItems = append(newItems, item)
		}
	}
	for _, item := range oldGroup {
		if !newMap[item] {
			deletedItems = append(deletedItems, item)
		}
	}
	return
}

func groupingTokens(oldGroup, newGroup map[string]*nlp.Token) (newItems, deletedItems, updateItems []*nlp.Token) {
	for key, newToken := range newGroup {
		if oldToken, ok := oldGroup[key]; ok {
			// skip if completely match
			if !reflect.DeepEqual(newToken.Positions, oldToken.Positions) {
				updateItems = append(updateItems, newToken)
			}
		} else {
			newItems = append(newItems, newToken)
		}
	}
	for key, oldToken := range oldGroup {
		if _, ok := newGroup[key]; !ok {
			deletedItems = append(deletedItems, oldToken)
		}
	}
	return
}

func encodeDocumentIDs(docIDs *roaring64.Bitmap) ([]byte, error) {
	return docIDs.MarshalBinary()
}

func decodeDocumentIDs(data []byte) (*roaring64.Bitmap, error) {
	docIDs := roaring64.New()
	if len(data) == 0 {
		return docIDs, nil
	}
	err := docIDs.UnmarshalBinary(data)
	if err != nil {
		return nil, err
	}
	return docIDs, nil
}

func (ix *Index) AddDocumentToTag(tag string, docID uint64) error {
	return retry("update tag", func() error {
		return ix.addDocumentToTag(tag, docID)
	})
}

func (ix *Index) addDocumentToTag(tag string, docID uint64) error {
	existingTag := TagEntity{
		Tag: tag,
	}
	err := ix.tags.Get(ix.ctx, &existingTag)
	if err != nil {
		data, err := encodeDocumentIDs(roaring64.BitmapOf(docID))
		if err != nil {
			return err
		}
		return ix.tags.Create(ix.ctx, &TagEntity{
			Tag:         tag,
			DocumentIDs: data,
		})
	}
	docIDs, err := decodeDocumentIDs(existingTag.DocumentIDs)
	if err != nil {
		return fmt.Errorf("fail to decode document IDs of tag '%s': %w", tag, err)
	}
	docIDs.Add(docID)
	data, err := encodeDocumentIDs(docIDs)
	if err != nil {
		return err
	}
	err = ix.tags.Replace(ix.ctx, &TagEntity{
		Tag:         tag,
		DocumentIDs: data,
	})
	if err != nil {
		return fmt.Errorf("fail to replace tag: '%s': %w", tag, err)
	}
	return nil
}

func (ix *Index) RemoveDocumentFromTag(tag string, docID uint64) error {
	return retry("update tag", func() error {
		return ix.removeDocumentFromTag(tag, docID)
	})
}

func (ix *Index) removeDocumentFromTag(tag string, docID uint64) error {
	existingTag := TagEntity{
		Tag: tag,
	}
	err := ix.tags.Get(ix.ctx, &existingTag)
	if err != nil {
		return err
	}
	docIDs, err := decodeDocumentIDs(existingTag.DocumentIDs)
	if err != nil {
		return err
	}
	docIDs.Remove(docID)
	if docIDs.IsEmpty() {
		return ix.tags.Delete(ix.ctx, &existingTag)
	}
	data, err := encodeDocumentIDs(docIDs)
	if err != nil {
		return err
	}
	return ix.tags.Replace(ix.ctx, &TagEntity{
		Tag:         tag,
		DocumentIDs: data,
	})
}

func (ix *Index) AddDocumentToToken(word string, docID uint64, positions []uint32) error {
	return retry("update token", func() error {
		return ix.addDocumentToToken(word, docID, positions)
	})
}

func (ix *Index) addDocumentToToken(word string, docID uint64, positions []uint32) error {
	existingToken := TokenEntity{
		Word: word,
	}
	err := ix.tokens.Get(ix.ctx, &existingToken)
	postingEntity := PostingEntity{
		DocumentID: docID,
		Positions:  compints.CompressToBytes(positions, true),
	}
	if err != nil {
		return ix.tokens.Create(ix.ctx, &TokenEntity{
			Word:     word,
			Postings: []PostingEntity{postingEntity},
		})
	}
	// a document appears once per posting list
	postings := slices.DeleteFunc(existingToken.Postings, func(p PostingEntity) bool {
		return p.DocumentID == docID
	})
	postings = append(postings, postingEntity)
	slices.SortFunc(postings, func(a, b PostingEntity) int {
		return compareUint64(a.DocumentID, b.DocumentID)
	})
	err = ix.tokens.Replace(ix.ctx, &TokenEntity{
		Word:     word,
		Postings: postings,
	})
	if err != nil {
		return fmt.Errorf("fail to replace token: '%s': %w", word, err)
	}
	return nil
}

func compareUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (ix *Index) RemoveDocumentFromToken(word string, docID uint64) error {
	return retry("update token", func() error {
		return ix.removeDocumentFromToken(word, docID)
	})
}

func (ix *Index) removeDocumentFromToken(word string, docID uint64) error {
	existingToken := TokenEntity{
		Word: word,
	}
	err := ix.tokens.Get(ix.ctx, &existingToken)
	if err != nil {
		return err
	}
	postings := slices.DeleteFunc(existingToken.Postings, func(p PostingEntity) bool {
		return p.DocumentID == docID
	})
	if len(postings) == 0 {
		return ix.tokens.Delete(ix.ctx, &existingToken)
	}
	return ix.tokens.Replace(ix.ctx, &TokenEntity{
		Word:     word,
		Postings: postings,
	})
}

func (ix *Index) FindTags(tagNames ...string) ([]*Tag, error) {
	return ix.FindTagsWithContext(ix.ctx, tagNames...)
}

// FindTagsWithContext returns one Tag per name. Missing tags are returned
// with Found set to false.
func (ix *Index) FindTagsWithContext(ctx context.Context, tagNames ...string) ([]*Tag, error) {
	if len(tagNames) == 0 {
		return nil, nil
	}
	existingTags := make([]TagEntity, len(tagNames))
	actions := ix.tags.Actions()
	for i, tagName := range tagNames {
		existingTags[i].Tag = tagName
		actions = actions.Get(&existingTags[i])
	}
	hasErrors, err := actionErrors(actions.Do(ctx))
	if err != nil {
		return nil, err
	}
	result := make([]*Tag, len(tagNames))
	for i, existingTag := range existingTags {
		tag := &Tag{
			Tag:   tagNames[i],
			Found: !hasErrors[i],
		}
		if tag.Found {
			docIDs, err := decodeDocumentIDs(existingTag.DocumentIDs)
			if err != nil {
				return nil, fmt.Errorf("Compressed document IDs of tag %s are broken: %w", tagNames[i], err)
			}
			tag.DocumentIDs = docIDs.ToArray()
		}
		result[i] = tag
	}
	return result, nil
}

// actionErrors maps the failed NotFound actions of an action list by index.
// Any other failure is returned as an error.
func actionErrors(err error) (map[int]bool, error) {
	hasErrors := make(map[int]bool)
	if err == nil {
		return hasErrors, nil
	}
	errs, ok := err.(docstore.ActionListError)
	if !ok {
		return nil, err
	}
	for _, e := range errs {
		if gcerrors.Code(e.Err) != gcerrors.NotFound {
			return nil, e.Err
		}
		hasErrors[e.Index] = true
	}
	return hasErrors, nil
}

func (ix *Index) FindTokens(words ...string) ([]*Token, error) {
	return ix.FindTokensWithContext(ix.ctx, words...)
}

// FindTokensWithContext returns one Token per word, in order. Missing words
// are returned with Found set to false.
func (ix *Index) FindTokensWithContext(ctx context.Context, words ...string) ([]*Token, error) {
	if len(words) == 0 {
		return nil, nil
	}
	positions := make(map[string][]int)
	var uniqueWords []string
	for i, word := range words {
		if _, ok := positions[word]; !ok {
			uniqueWords = append(uniqueWords, word)
		}
		positions[word] = append(positions[word], i)
	}
	existingTokens := make([]TokenEntity, len(uniqueWords))
	actions := ix.tokens.Actions()
	for i, word := range uniqueWords {
		existingTokens[i].Word = word
		actions = actions.Get(&existingTokens[i])
	}
	hasErrors, err := actionErrors(actions.Do(ctx))
	if err != nil {
		return nil, err
	}
	result := make([]*Token, len(words))
	for i, existingToken := range existingTokens {
		token := &Token{
			Word:  uniqueWords[i],
			Found: !hasErrors[i],
		}
		if token.Found {
			for _, posting := range existingToken.Postings {
				positions, err := compints.DecompressFromBytes(posting.Positions, true)
				if err != nil {
					return nil, fmt.Errorf("Compressed data is broken of position of doc %d of token %s: %w", posting.DocumentID, existingToken.Word, err)
				}
				token.Postings = append(token.Postings, Posting{
					DocumentID: posting.DocumentID,
					Positions:  positions,
				})
			}
		}
		for _, pos := range positions[uniqueWords[i]] {
			result[pos] = token
		}
	}
	return result, nil
}

// FindDocuments returns the documents in the order of ids.
func (ix *Index) FindDocuments(ids ...uint64) ([]*Document, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	result := make([]*Document, len(ids))
	actions := ix.documents.Actions()
	for i, id := range ids {
		result[i] = &Document{
			ID: id,
		}
		actions = actions.Get(result[i])
	}
	err := actions.Do(ix.ctx)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (ix *Index) FindDocumentByKey(uniqueKey string) (*Document, error) {
	_, _, doc, err := ix.findDocumentByKey(uniqueKey)
	return doc, err
}

func (ix *Index) findDocumentByKey(uniqueKey string) (uint64, *DocumentKey, *Document, error) {
	existingDocKey := DocumentKey{
		UniqueKey: uniqueKey,
	}
	err := ix.docKeys.Get(ix.ctx, &existingDocKey)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return 0, nil, nil, fmt.Errorf("%w: document '%s'", ErrNotFound, uniqueKey)
	} else if err != nil {
		return 0, nil, nil, err
	}
	docID := existingDocKey.ID
	oldDoc := Document{
		ID: docID,
	}
	err = ix.documents.Get(ix.ctx, &oldDoc)
	if err != nil {
		return 0, nil, nil, err
	}
	return docID, &existingDocKey, &oldDoc, nil
}
