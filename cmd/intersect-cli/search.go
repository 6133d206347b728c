package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/future-architect/intersect"
	_ "github.com/future-architect/intersect/nlp/english"
	_ "github.com/future-architect/intersect/nlp/japanese"
	_ "github.com/future-architect/intersect/nlp/ngram"
	"go.uber.org/zap"
	_ "gocloud.dev/docstore/memdocstore"
)

// indexFolder posts every JSON document under folder. Files that fail to
// parse are reported and skipped.
func indexFolder(ix *intersect.Index, folder string, logger *zap.Logger) (int, error) {
	var count int
	err := filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var doc intersect.Document
		if err := json.Unmarshal(data, &doc); err != nil {
			logger.Warn("parse file error", zap.String("path", path), zap.Error(err))
			return nil
		}
		if doc.UniqueKey == "" {
			doc.UniqueKey = path
		}
		id, err := ix.PostDocument(doc.UniqueKey, &doc)
		if err != nil {
			return fmt.Errorf("register document error: %s: %w", path, err)
		}
		logger.Debug("document added",
			zap.Uint64("id", id),
			zap.String("title", doc.Title),
			zap.String("lang", doc.Language),
			zap.String("path", path))
		count++
		return nil
	})
	return count, err
}

func search(ctx context.Context, logger *zap.Logger) error {
	ix, err := intersect.NewIndex(ctx, intersect.Option{
		DocumentUrl:     "mem://",
		DefaultLanguage: *defaultLanguage,
		Kernel:          *searchKernel,
		Logger:          logger,
	})
	if err != nil {
		return err
	}
	defer ix.Close()

	count, err := indexFolder(ix, *inputFolder, logger)
	if err != nil {
		return err
	}
	logger.Info("index built", zap.Int("documents", count))

	docs, err := ix.Search(strings.Join(*searchWords, " "), *tags, *language)
	if err != nil {
		return err
	}

	if len(docs) == 0 {
		color.Cyan("No Match")
	}
	for i, doc := range docs {
		if i != 0 {
			color.Green("\n-----------------------------------------------------------\n\n")
		}
		color.Blue("# %s \n\n", doc.Title)
		color.Cyan("%s", doc.Content)
	}
	return nil
}
