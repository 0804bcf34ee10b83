package transcoder

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/javi11/uudrive/internal/history"
	"github.com/javi11/uudrive/pkg/uue"
)

// Transcoder wraps the uue codec with an LRU of decoded documents and
// history recording. The codec itself does no I/O; file access happens
// only in EncodeFiles.
type Transcoder struct {
	cache   *lru.Cache[string, *uue.UUData]
	history history.TranscodeHistory
	log     *slog.Logger
	dialect uue.Dialect
}

func New(options ...Option) (*Transcoder, error) {
	config := defaultConfig()
	for _, option := range options {
		option(config)
	}

	cache, err := lru.New[string, *uue.UUData](config.cacheSize)
	if err != nil {
		return nil, err
	}

	return &Transcoder{
		cache:   cache,
		history: config.history,
		log:     config.log,
		dialect: config.dialect,
	}, nil
}

// DefaultDialect is the dialect used when a caller does not ask for one.
func (t *Transcoder) DefaultDialect() uue.Dialect {
	return t.dialect
}

func (t *Transcoder) Encode(ctx context.Context, data uue.UUData, dialect uue.Dialect) (string, error) {
	doc := uue.Encode(data, dialect)

	t.log.DebugContext(ctx, "encoded document", "file_name", data.FileName, "size", len(data.Contents))

	if err := t.record(ctx, data.FileName, history.OperationEncode, int64(len(data.Contents)), ""); err != nil {
		return "", err
	}

	return doc, nil
}

func (t *Transcoder) Decode(ctx context.Context, doc string) (*uue.UUData, error) {
	key := documentKey(doc)
	if data, ok := t.cache.Get(key); ok {
		t.log.DebugContext(ctx, "decoded document cache hit", "file_name", data.FileName)
		return data, nil
	}

	data, err := uue.Decode(doc)
	if err != nil {
		if hErr := t.record(ctx, "", history.OperationDecode, 0, err.Error()); hErr != nil {
			return nil, hErr
		}

		return nil, err
	}

	if err := t.record(ctx, data.FileName, history.OperationDecode, int64(len(data.Contents)), ""); err != nil {
		return nil, err
	}

	t.cache.Add(key, &data)

	return &data, nil
}

// EncodeFiles reads and encodes each path, keyed by path in the result.
// Per-file failures are aggregated and the remaining files still encode.
func (t *Transcoder) EncodeFiles(ctx context.Context, paths []string, dialect uue.Dialect) (map[string]string, error) {
	var merr *multierror.Error

	docs := make(map[string]string, len(paths))
	for _, path := range paths {
		contents, err := os.ReadFile(path)
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}

		doc, err := t.Encode(ctx, uue.UUData{FileName: filepath.Base(path), Contents: contents}, dialect)
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}

		docs[path] = doc
	}

	return docs, merr.ErrorOrNil()
}

// record is a no-op without a history store, so the CLI can transcode
// without a database.
func (t *Transcoder) record(ctx context.Context, fileName, operation string, size int64, errText string) error {
	if t.history == nil {
		return nil
	}

	return t.history.Add(ctx, fileName, operation, size, errText)
}

func documentKey(doc string) string {
	sum := sha256.Sum256([]byte(doc))
	return hex.EncodeToString(sum[:])
}
