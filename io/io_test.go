package io

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bobycv06fpm/news-credibility/table"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRow(t *testing.T) {
	row := table.Row{Id: 42, Content: "line \"quoted\"\nsecond", Label: 1}

	line, err := EncodeRow(row)
	require.NoError(t, err)

	decoded, err := DecodeRow(line)
	require.NoError(t, err)
	assert.Equal(t, row, decoded)

	_, err = DecodeRow([]byte(`{"id":1}`))
	assert.True(t, errors.Is(err, ErrCorruptedPart))
}

func TestDumpAndLoadTable(t *testing.T) {
	dir := t.TempDir()

	rows := []table.Row{
		{Id: 1, Content: "alpha", Label: 0},
		{Id: 2, Content: "bravo", Label: 1},
		{Id: 3, Content: "charlie", Label: 0},
	}

	src, err := table.New("train", rows).Repartition(2)
	require.NoError(t, err)

	written, err := DumpTable(dir, src)
	require.NoError(t, err)
	require.Len(t, written, 2)
	assert.Equal(t, filepath.Join(dir, "part-00000.jsonl.lz4"), written[0])

	loaded, err := LoadTable(dir, "train")
	require.NoError(t, err)

	assert.Equal(t, 2, loaded.NumPartitions())
	if diff := cmp.Diff(src.Rows(), loaded.Rows()); diff != "" {
		t.Errorf("loaded table differs (-want +got):\n%s", diff)
	}
}

func TestDumpReplacesEarlierParts(t *testing.T) {
	dir := t.TempDir()

	wide, err := table.New("train", []table.Row{
		{Id: 1, Content: "a"}, {Id: 2, Content: "b"}, {Id: 3, Content: "c"}, {Id: 4, Content: "d"},
	}).Repartition(4)
	require.NoError(t, err)

	_, err = DumpTable(dir, wide)
	require.NoError(t, err)

	// unrelated files survive
	require.NoError(t, os.WriteFile(filepath.Join(dir, "schema.json"), []byte("{}"), 0644))

	narrow := table.New("train", []table.Row{{Id: 9, Content: "z"}})
	written, err := DumpTable(dir, narrow)
	require.NoError(t, err)
	require.Len(t, written, 1)

	loaded, err := LoadTable(dir, "train")
	require.NoError(t, err)

	assert.Equal(t, 1, loaded.NumPartitions())
	assert.Equal(t, narrow.Rows(), loaded.Rows())

	_, statErr := os.Stat(filepath.Join(dir, "schema.json"))
	assert.NoError(t, statErr)
}

func TestFileReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.txt")

	fr := NewFileReader(path)
	assert.False(t, fr.Exists())

	_, err := fr.ReadAll()
	assert.True(t, errors.Is(err, ErrFileNotOpened))

	require.NoError(t, fr.Open(false))
	_, err = fr.Raw().WriteString("payload")
	require.NoError(t, err)
	require.NoError(t, fr.Close())
	require.NoError(t, fr.Close())

	reader := NewFileReader(path)
	require.True(t, reader.Exists())
	require.NoError(t, reader.Open(true))
	defer reader.Close()

	content, err := reader.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "payload", string(content))

	_, statErr := os.Stat(reader.Path())
	assert.NoError(t, statErr)
}
