package transcoder

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/javi11/uudrive/internal/history"
	"github.com/javi11/uudrive/pkg/uue"
	"github.com/stretchr/testify/assert"
)

func newTranscoder(t *testing.T) (*Transcoder, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS transcode_history").
		WillReturnResult(sqlmock.NewResult(0, 0))

	h, err := history.New(db)
	assert.NoError(t, err)

	tr, err := New(
		WithHistory(h),
		WithCacheSize(10),
	)
	assert.NoError(t, err)

	return tr, mock, func() { db.Close() }
}

func TestTranscoder_EncodeRecordsHistory(t *testing.T) {
	tr, mock, close := newTranscoder(t)
	defer close()

	ctx := context.Background()

	mock.ExpectPrepare("INSERT INTO transcode_history").
		ExpectExec().
		WithArgs("test.bin", history.OperationEncode, int64(3), "").
		WillReturnResult(sqlmock.NewResult(1, 1))

	doc, err := tr.Encode(ctx, uue.UUData{FileName: "test.bin", Contents: []byte("Cat")}, uue.UseBackticks)
	assert.NoError(t, err)
	assert.Equal(t, "begin 740 test.bin\n#0V%T\n`\nend\n", doc)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranscoder_DecodeUsesCache(t *testing.T) {
	tr, mock, close := newTranscoder(t)
	defer close()

	ctx := context.Background()
	doc := uue.Encode(uue.UUData{FileName: "test.bin", Contents: []byte("Cat")}, uue.UseBackticks)

	// a single insert: the second decode must come from the cache
	mock.ExpectPrepare("INSERT INTO transcode_history").
		ExpectExec().
		WithArgs("test.bin", history.OperationDecode, int64(3), "").
		WillReturnResult(sqlmock.NewResult(1, 1))

	first, err := tr.Decode(ctx, doc)
	assert.NoError(t, err)
	assert.True(t, bytes.Equal([]byte("Cat"), first.Contents))

	second, err := tr.Decode(ctx, doc)
	assert.NoError(t, err)
	assert.Equal(t, first, second)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranscoder_DecodeFailureIsRecorded(t *testing.T) {
	tr, mock, close := newTranscoder(t)
	defer close()

	ctx := context.Background()

	mock.ExpectPrepare("INSERT INTO transcode_history").
		ExpectExec().
		WithArgs("", history.OperationDecode, int64(0), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	_, err := tr.Decode(ctx, "begin\n#0V%T\n`\nend\n")
	assert.ErrorIs(t, err, uue.ErrInvalidHeader)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranscoder_EncodeFiles(t *testing.T) {
	tr, err := New(WithDefaultDialect(uue.UseSpaces))
	assert.NoError(t, err)

	ctx := context.Background()
	dir := t.TempDir()

	path := filepath.Join(dir, "payload.bin")
	assert.NoError(t, os.WriteFile(path, []byte{0x41}, 0644))

	missing := filepath.Join(dir, "missing.bin")

	docs, err := tr.EncodeFiles(ctx, []string{path, missing}, tr.DefaultDialect())
	assert.Error(t, err)
	assert.Len(t, docs, 1)
	assert.Equal(t, "begin 740 payload.bin\n!00  \n \nend\n", docs[path])
}

func TestTranscoder_WithoutHistory(t *testing.T) {
	tr, err := New()
	assert.NoError(t, err)

	doc, err := tr.Encode(context.Background(), uue.UUData{FileName: "free.bin", Contents: []byte{1, 2}}, uue.UseBackticks)
	assert.NoError(t, err)

	decoded, err := tr.Decode(context.Background(), doc)
	assert.NoError(t, err)
	assert.True(t, bytes.Equal([]byte{1, 2}, decoded.Contents))
}
