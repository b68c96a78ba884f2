// Package source streams rows out of the CSV extracts that feed the graph
// load. Rows are surfaced as raw header-keyed string values; type coercion
// belongs to the loaders.
package source

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/types"
)

// Row is one data row of an extract. Values are raw field contents keyed by
// the normalized (lowercased, trimmed) header name.
type Row struct {
	values  map[string]string
	ordinal int64
	path    string
}

// NewRow builds an in-memory row. Synthetic sources and tests use it; CSV
// reads construct rows internally.
func NewRow(path string, ordinal int64, values map[string]string) Row {
	return Row{values: values, ordinal: ordinal, path: path}
}

// Get returns the raw value of the named column. The second return reports
// whether the column exists in the extract at all; a present-but-empty field
// yields ("", true).
func (r Row) Get(column string) (string, bool) {
	v, ok := r.values[column]
	return v, ok
}

// Ordinal is the 1-based row number within the file, counting the header as
// row 1. The first data row is 2.
func (r Row) Ordinal() int64 {
	return r.ordinal
}

// Path returns the file the row came from.
func (r Row) Path() string {
	return r.path
}

// RowSource yields rows from a tabular extract until io.EOF.
type RowSource interface {
	// Next returns the next data row. It returns io.EOF once the extract
	// is exhausted.
	Next() (Row, error)

	// Fields returns the normalized header names in file order.
	Fields() []string

	// Close releases the underlying file handle.
	Close() error
}

// CSVSource reads rows from a headered CSV file.
type CSVSource struct {
	path    string
	file    *os.File
	csv     *csv.Reader
	headers []string
}

// OpenCSV opens a CSV extract and verifies that every column in required is
// present in its header. The check runs before any row is read so that a
// misshaped extract fails the run before the first write.
func OpenCSV(path string, required []string) (*CSVSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, types.WrapError(types.SOURCE_OPEN_FAILED,
			fmt.Sprintf("open %s", path), err)
	}

	bufReader := bufio.NewReaderSize(file, 256*1024)

	// Skip UTF-8 BOM if present
	bom, err := bufReader.Peek(3)
	if err == nil && len(bom) >= 3 && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		bufReader.Discard(3)
	}

	reader := csv.NewReader(bufReader)
	reader.LazyQuotes = true

	s := &CSVSource{
		path: path,
		file: file,
		csv:  reader,
	}

	if err := s.readHeader(required); err != nil {
		file.Close()
		return nil, err
	}

	return s, nil
}

func (s *CSVSource) readHeader(required []string) error {
	header, err := s.csv.Read()
	if err != nil {
		return types.WrapError(types.SOURCE_READ_FAILED,
			fmt.Sprintf("read header of %s", s.path), err)
	}

	s.headers = make([]string, len(header))
	index := make(map[string]struct{}, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		s.headers[i] = name
		index[name] = struct{}{}
	}

	for _, col := range required {
		if _, ok := index[col]; !ok {
			return types.NewError(types.SOURCE_MISSING_COLUMN,
				fmt.Sprintf("%s has no %q column", s.path, col))
		}
	}

	return nil
}

// Next returns the next data row, or io.EOF once the file is exhausted.
// A row whose field count differs from the header is reported as malformed;
// encoding/csv pins FieldsPerRecord to the header width.
func (s *CSVSource) Next() (Row, error) {
	record, err := s.csv.Read()
	if err == io.EOF {
		return Row{}, io.EOF
	}
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return Row{}, types.WrapError(types.DATA_MALFORMED_ROW,
				fmt.Sprintf("%s line %d is malformed", s.path, parseErr.Line), err)
		}
		return Row{}, types.WrapError(types.SOURCE_READ_FAILED,
			fmt.Sprintf("read %s", s.path), err)
	}

	// FieldPos reports the physical line the record starts on, which stays
	// accurate across blank lines and multi-line quoted fields.
	line, _ := s.csv.FieldPos(0)

	values := make(map[string]string, len(s.headers))
	for i, h := range s.headers {
		if i < len(record) {
			values[h] = record[i]
		}
	}

	return Row{values: values, ordinal: int64(line), path: s.path}, nil
}

// Fields returns the normalized header names in file order.
func (s *CSVSource) Fields() []string {
	fields := make([]string, len(s.headers))
	copy(fields, s.headers)
	return fields
}

// Close releases the underlying file handle.
func (s *CSVSource) Close() error {
	if s.file != nil {
		return s.file.Close()
	}
	return nil
}
