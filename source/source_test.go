package source

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bobycv06fpm/news-credibility/compression"
	"github.com/bobycv06fpm/news-credibility/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const jsonLines = `{"content": "first", "category": "Политика", "views": 10}
{"content": "", "category": null, "views": 2.5}

{"content": "third", "tags": ["a", "b"]}
`

func TestReadJsonLines(t *testing.T) {
	src, err := Read(context.Background(), writeFile(t, "news.json", jsonLines))
	require.NoError(t, err)

	assert.Equal(t, 3, src.Count())
	assert.Equal(t, "news", src.Schema.Name)
	assert.Equal(t, []string{"category", "content", "tags", "views"}, src.Schema.ColumnNames())

	category, _, _ := src.Schema.Column("category")
	assert.Equal(t, schema.StringFieldType, category.Type)
	assert.True(t, category.Nullable)

	content, _, _ := src.Schema.Column("content")
	assert.False(t, content.Nullable)

	views, _, _ := src.Schema.Column("views")
	assert.Equal(t, schema.Float64FieldType, views.Type)
	assert.True(t, views.Nullable)

	tags, _, _ := src.Schema.Column("tags")
	assert.Equal(t, schema.ArrayFieldType, tags.Type)
}

func TestReadJsonArray(t *testing.T) {
	src, err := Read(context.Background(), writeFile(t, "news.json", `[{"BodyText": "a", "DatePublished": "2020-01-01"}, {"BodyText": "b"}]`))
	require.NoError(t, err)

	assert.Equal(t, 2, src.Count())
	assert.Equal(t, "a", Field(src.Records[0], "BodyText").String())
	assert.True(t, IsNull(Field(src.Records[1], "DatePublished")))
}

func TestReadLz4(t *testing.T) {
	compressed := bytes.Buffer{}
	require.NoError(t, compression.CompressLz4([]byte(jsonLines), &compressed))

	src, err := Read(context.Background(), writeFile(t, "news.jsonl.lz4", compressed.String()))
	require.NoError(t, err)

	assert.Equal(t, 3, src.Count())
	assert.Equal(t, "news", src.Schema.Name)
}

func TestReadErrors(t *testing.T) {
	_, err := Read(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, errors.Is(err, ErrSourceRead))

	_, err = Read(context.Background(), writeFile(t, "bad.json", "{\"content\": \"ok\"}\n{broken\n"))
	assert.True(t, errors.Is(err, ErrMalformedRecord))
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "bad.json")

	_, err = Read(context.Background(), writeFile(t, "scalars.json", "[1, 2]"))
	assert.True(t, errors.Is(err, ErrMalformedRecord))
}

func TestEmptySource(t *testing.T) {
	src, err := Read(context.Background(), writeFile(t, "empty.json", "\n\n"))
	require.NoError(t, err)

	assert.Equal(t, 0, src.Count())
	assert.Empty(t, src.Schema.Columns)
}

func TestFieldPathEscapesSpecialKeys(t *testing.T) {
	src, err := Read(context.Background(), writeFile(t, "odd.json", `{"a.b": 1, "a": {"b": 2}, "q?": "x"}`))
	require.NoError(t, err)

	assert.Equal(t, int64(1), Field(src.Records[0], "a.b").Int())
	assert.Equal(t, "x", Field(src.Records[0], "q?").String())
	assert.Equal(t, `a\.b`, FieldPath("a.b"))
	assert.Equal(t, "plain", FieldPath("plain"))
}

func TestValue(t *testing.T) {
	src, err := Read(context.Background(), writeFile(t, "v.json", `{"s": "x", "n": 1.5, "b": true, "arr": [1, "a"], "nil": null}`))
	require.NoError(t, err)

	record := src.Records[0]

	assert.Equal(t, "x", Value(Field(record, "s")))
	assert.Equal(t, 1.5, Value(Field(record, "n")))
	assert.Equal(t, true, Value(Field(record, "b")))
	assert.Equal(t, []any{1.0, "a"}, Value(Field(record, "arr")))
	assert.Nil(t, Value(Field(record, "nil")))
	assert.Nil(t, Value(Field(record, "missing")))
}

func TestLoaderCachesAndLoadsInParallel(t *testing.T) {
	a := writeFile(t, "a.json", jsonLines)
	b := writeFile(t, "b.json", `{"content": "only"}`)

	loader := NewLoader(nil)

	sources, err := loader.LoadAll(context.Background(), a, b, a)
	require.NoError(t, err)
	require.Len(t, sources, 3)

	assert.Equal(t, 3, sources[0].Count())
	assert.Equal(t, 1, sources[1].Count())
	assert.Same(t, sources[0], sources[2])

	wg := sync.WaitGroup{}
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			src, loadErr := loader.Load(context.Background(), b)
			assert.NoError(t, loadErr)
			assert.Same(t, sources[1], src)
		}()
	}
	wg.Wait()

	loader.Drop(a)
	reloaded, err := loader.Load(context.Background(), a)
	require.NoError(t, err)
	assert.NotSame(t, sources[0], reloaded)

	_, err = loader.LoadAll(context.Background(), b, filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, errors.Is(err, ErrSourceRead))
}
