package io

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"slices"

	"github.com/bobycv06fpm/news-credibility/table"
	"github.com/tidwall/gjson"
)

var ErrCorruptedPart = errors.New("corrupted table part")

// DecodeRow parses a line written by EncodeRow
func DecodeRow(line []byte) (table.Row, error) {
	if !gjson.ValidBytes(line) {
		return table.Row{}, ErrCorruptedPart
	}

	fields := gjson.GetManyBytes(line, "id", "content", "label")
	if !fields[0].Exists() || !fields[1].Exists() || !fields[2].Exists() {
		return table.Row{}, ErrCorruptedPart
	}

	return table.Row{
		Id:      int32(fields[0].Int()),
		Content: fields[1].String(),
		Label:   fields[2].Float(),
	}, nil
}

// LoadTable reads the parts written by DumpTable, one partition per part file
func LoadTable(dir string, name string) (*table.Table, error) {

	parts, globErr := partFiles(dir)
	if globErr != nil {
		return nil, globErr
	}
	slices.Sort(parts)

	partitions := make([][]table.Row, 0, len(parts))

	for _, path := range parts {
		rows, err := loadPartition(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read %s: %w", path, err)
		}
		partitions = append(partitions, rows)
	}

	return table.NewPartitioned(name, partitions), nil
}

func loadPartition(path string) ([]table.Row, error) {

	fr := NewFileReader(path)
	if err := fr.Open(true); err != nil {
		return nil, err
	}
	defer fr.Close()

	content, err := fr.Content()
	if err != nil {
		return nil, err
	}

	rows := []table.Row{}

	scanner := bufio.NewScanner(content)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		row, decodeErr := DecodeRow(line)
		if decodeErr != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, decodeErr)
		}
		rows = append(rows, row)
	}

	return rows, scanner.Err()
}
