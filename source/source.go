package source

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bobycv06fpm/news-credibility/io"
	"github.com/bobycv06fpm/news-credibility/schema"
	"github.com/tidwall/gjson"
)

var (
	ErrSourceRead      = errors.New("unable to read source")
	ErrMalformedRecord = errors.New("malformed json record")
)

const maxLineSize = 64 * 1024 * 1024

// Source is a collection of JSON documents read from one path,
// together with the schema inferred over all of them
type Source struct {
	Path    string
	Schema  schema.Schema
	Records []gjson.Result
}

func (s *Source) Count() int {
	return len(s.Records)
}

func nameOf(path string) string {
	base := filepath.Base(path)
	for ext := filepath.Ext(base); ext != ""; ext = filepath.Ext(base) {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

// Read parses path as a JSON array of objects or as JSON lines, one object
// per line. Paths ending with .lz4 are decompressed first.
func Read(ctx context.Context, path string) (*Source, error) {

	fr := io.NewFileReader(path)
	if !fr.Exists() {
		return nil, fmt.Errorf("%w %s: file does not exist", ErrSourceRead, path)
	}

	if err := fr.Open(true); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrSourceRead, path, err)
	}
	defer fr.Close()

	content, readErr := fr.ReadAll()
	if readErr != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrSourceRead, path, readErr)
	}

	records, parseErr := parseRecords(ctx, content)
	if parseErr != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrSourceRead, path, parseErr)
	}

	return &Source{
		Path:    path,
		Schema:  InferSchema(nameOf(path), records),
		Records: records,
	}, nil
}

func parseRecords(ctx context.Context, content []byte) ([]gjson.Result, error) {

	trimmed := bytes.TrimSpace(content)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		if !gjson.ValidBytes(trimmed) {
			return nil, fmt.Errorf("%w: invalid json array", ErrMalformedRecord)
		}

		records := []gjson.Result{}
		for idx, it := range gjson.ParseBytes(trimmed).Array() {
			if !it.IsObject() {
				return nil, fmt.Errorf("%w: array element %d is not an object", ErrMalformedRecord, idx)
			}
			records = append(records, it)
		}
		return records, nil
	}

	records := []gjson.Result{}

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++

		if lineNo%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		if !gjson.ValidBytes(line) {
			return nil, fmt.Errorf("%w: line %d", ErrMalformedRecord, lineNo)
		}

		// scanner reuses its buffer
		record := gjson.Parse(string(line))
		if !record.IsObject() {
			return nil, fmt.Errorf("%w: line %d is not an object", ErrMalformedRecord, lineNo)
		}

		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
