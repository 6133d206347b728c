package intersect

import (
	"fmt"

	"github.com/future-architect/intersect/nlp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Search returns the documents that contain every word of searchWord and
// carry every tag, intersected with the index's kernel.
func (ix *Index) Search(searchWord string, tags []string, lang string) ([]*Document, error) {
	return ix.SearchWithKernel(searchWord, tags, lang, ix.kernel)
}

// SearchWithKernel is Search with an explicit kernel. Documents are
// returned in ID order.
func (ix *Index) SearchWithKernel(searchWord string, tags []string, lang string, kernel Kernel) ([]*Document, error) {
	lang = ix.language(lang)
	tokenizer, err := nlp.FindTokenizer(lang)
	if err != nil {
		return nil, fmt.Errorf("tokenizer for language '%s' is not found: %w", lang, err)
	}
	searchTokens, _ := tokenizer.TokenizeToMap(searchWord)

	if len(searchTokens) == 0 && len(tags) == 0 {
		return nil, nil
	}

	errGroup, ctx := errgroup.WithContext(ix.ctx)
	var tagDocIDGroups [][]uint64
	var missingTags []string

	if len(tags) > 0 {
		errGroup.Go(func() error {
			foundTags, err := ix.FindTagsWithContext(ctx, tags...)
			if err != nil {
				return err
			}
			for _, foundTag := range foundTags {
				if !foundTag.Found {
					missingTags = append(missingTags, foundTag.Tag)
				}
				tagDocIDGroups = append(tagDocIDGroups, foundTag.DocumentIDs)
			}
			return nil
		})
	}

	var tokenDocIDGroups [][]uint64
	var missingWords []string

	if len(searchTokens) > 0 {
		errGroup.Go(func() error {
			words := make([]string, 0, len(searchTokens))
			for word := range searchTokens {
				words = append(words, word)
			}
			foundTokens, err := ix.FindTokensWithContext(ctx, words...)
			if err != nil {
				return err
			}
			for _, token := range foundTokens {
				if !token.Found {
					missingWords = append(missingWords, token.Word)
				}
				tokenDocIDGroups = append(tokenDocIDGroups, token.DocumentIDs())
			}
			return nil
		})
	}

	err = errGroup.Wait()
	if err != nil {
		return nil, err
	}
	if len(missingTags) > 0 || len(missingWords) > 0 {
		ix.logger.Debug("search term not indexed",
			zap.Strings("tags", missingTags),
			zap.Strings("words", missingWords))
		return []*Document{}, nil
	}

	docIDGroups := append(tagDocIDGroups, tokenDocIDGroups...)
	docIDs := IntersectMany(docIDGroups, kernel)
	ix.logger.Debug("posting lists intersected",
		zap.Stringer("kernel", kernel),
		zap.Ints("sizes", listSizes(docIDGroups)),
		zap.Int("matches", len(docIDs)))
	if len(docIDs) == 0 {
		return []*Document{}, nil
	}
	return ix.FindDocuments(docIDs...)
}

func listSizes(groups [][]uint64) []int {
	sizes := make([]int, len(groups))
	for i, group := range groups {
		sizes[i] = len(group)
	}
	return sizes
}
