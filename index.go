package intersect

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/future-architect/gocloudurls"
	"go.uber.org/zap"
	"gocloud.dev/docstore"
	_ "gocloud.dev/docstore/memdocstore"
	"gocloud.dev/gcerrors"
)

// Index is an inverted index whose token and tag posting lists are
// intersected with a configurable Kernel.
type Index struct {
	ctx             context.Context
	documents       *docstore.Collection
	docKeys         *docstore.Collection
	tokens          *docstore.Collection
	tags            *docstore.Collection
	uniqueIDs       *docstore.Collection
	close           sync.Once
	defaultLanguage string
	kernel          Kernel
	logger          *zap.Logger
}

type Option struct {
	DocumentUrl      string
	CollectionPrefix string
	DefaultLanguage  string
	// Kernel is a ParseKernel name. The default is "galloping".
	Kernel string
	Logger *zap.Logger
}

const (
	defaultDocumentUrl = "mem://"
	documentsCounter   = "documents"
)

func initOpt(opt ...Option) (Option, error) {
	var option Option
	if len(opt) > 0 {
		option = opt[0]
	}
	if option.DocumentUrl == "" {
		option.DocumentUrl = os.Getenv("INTERSECT_DOCUMENT_URL")
	}
	if option.DocumentUrl == "" {
		option.DocumentUrl = defaultDocumentUrl
	}
	if option.Kernel == "" {
		option.Kernel = Galloping.String()
	}
	if _, err := ParseKernel(option.Kernel); err != nil {
		return option, err
	}
	if option.Logger == nil {
		option.Logger = zap.NewNop()
	}
	return option, nil
}

// NewIndex opens the index collections. The index is closed when ctx is done.
func NewIndex(ctx context.Context, opt ...Option) (*Index, error) {
	option, err := initOpt(opt...)
	if err != nil {
		return nil, err
	}
	kernel, _ := ParseKernel(option.Kernel)
	result := &Index{
		ctx:             ctx,
		defaultLanguage: option.DefaultLanguage,
		kernel:          kernel,
		logger:          option.Logger,
	}

	errs := &CombinedError{Message: "Can't open collections"}
	openCollection := func(name, keyName string) *docstore.Collection {
		url, err := gocloudurls.NormalizeDocStoreURL(option.DocumentUrl, gocloudurls.Option{
			Collection: option.CollectionPrefix + name,
			KeyName:    keyName,
		})
		if err != nil {
			errs.append(fmt.Errorf("Can't parse document URL: %w", err))
			return nil
		}
		collection, err := docstore.OpenCollection(ctx, url)
		if err != nil {
			errs.append(fmt.Errorf("Can't open collection %s: %w", name, err))
			return nil
		}
		return collection
	}
	result.documents = openCollection("documents", "id")
	result.docKeys = openCollection("dockeys", "unique_key")
	result.tokens = openCollection("tokens", "word")
	result.tags = openCollection("tags", "tag")
	result.uniqueIDs = openCollection("uniqueids", "collection")
	if err := errs.ErrorOrNil(); err != nil {
		result.Close()
		return nil, err
	}

	if err := result.initCounter(); err != nil {
		result.Close()
		return nil, err
	}
	result.logger.Debug("index opened",
		zap.String("url", option.DocumentUrl),
		zap.String("prefix", option.CollectionPrefix),
		zap.Stringer("kernel", kernel))

	go func() {
		<-ctx.Done()
		result.Close()
	}()
	return result, nil
}

func (ix *Index) initCounter() error {
	counter := UniqueID{
		Collection: documentsCounter,
	}
	err := ix.uniqueIDs.Get(ix.ctx, &counter)
	if err == nil {
		return nil
	}
	if gcerrors.Code(err) != gcerrors.NotFound {
		return err
	}
	return ix.uniqueIDs.Create(ix.ctx, &counter)
}

// Kernel returns the kernel used by Search.
func (ix *Index) Kernel() Kernel {
	return ix.kernel
}

// Close closes all collections. Some docstore drivers (at least memdocstore)
// need Close to flush their contents.
func (ix *Index) Close() (err error) {
	ix.close.Do(func() {
		errs := &CombinedError{Message: "Can't close collections"}
		for _, collection := range []*docstore.Collection{ix.documents, ix.docKeys, ix.tokens, ix.tags, ix.uniqueIDs} {
			if collection != nil {
				errs.appendIfError(collection.Close())
			}
		}
		err = errs.ErrorOrNil()
	})
	return
}
