package io

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bobycv06fpm/news-credibility/compression"
	"github.com/bobycv06fpm/news-credibility/table"
	"github.com/tidwall/sjson"
)

const PartFileExtension = ".jsonl" + compression.Lz4Extension

func PartFileName(idx int) string {
	return fmt.Sprintf("part-%05d%s", idx, PartFileExtension)
}

func partFiles(dir string) ([]string, error) {
	return filepath.Glob(filepath.Join(dir, "part-*"+PartFileExtension))
}

// removeParts deletes the parts of a previous dump in dir
func removeParts(dir string) error {
	parts, err := partFiles(dir)
	if err != nil {
		return err
	}

	for _, path := range parts {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("unable to remove stale part %s: %w", path, err)
		}
	}

	return nil
}

// EncodeRow renders a row as a single line JSON object
func EncodeRow(r table.Row) ([]byte, error) {
	line, err := sjson.SetBytes([]byte("{}"), "id", r.Id)
	if err != nil {
		return nil, err
	}
	line, err = sjson.SetBytes(line, "content", r.Content)
	if err != nil {
		return nil, err
	}
	return sjson.SetBytes(line, "label", r.Label)
}

// DumpTable writes every partition of t into dir as an lz4 compressed JSON
// lines file and returns the written paths. Parts of an earlier dump in dir
// are removed first.
func DumpTable(dir string, t *table.Table) ([]string, error) {

	if err := removeParts(dir); err != nil {
		return nil, err
	}

	written := make([]string, 0, t.NumPartitions())

	for idx := range t.NumPartitions() {

		path := filepath.Join(dir, PartFileName(idx))

		if err := dumpPartition(path, t.Partition(idx)); err != nil {
			return written, fmt.Errorf("unable to write partition %d of %s: %w", idx, t.Name(), err)
		}

		written = append(written, path)
	}

	return written, nil
}

func dumpPartition(path string, rows []table.Row) (topErr error) {

	fw := NewFileReader(path)
	if err := fw.Open(false); err != nil {
		return err
	}
	defer func() {
		if closeErr := fw.Close(); closeErr != nil && topErr == nil {
			topErr = closeErr
		}
	}()

	zw := compression.NewLz4Writer(fw.Raw())
	bw := bufio.NewWriter(zw)

	for _, r := range rows {
		line, encodeErr := EncodeRow(r)
		if encodeErr != nil {
			return encodeErr
		}

		if _, err := bw.Write(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return err
	}

	return zw.Close()
}
