package dataset

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// ErrMissingColumn reports that a required column was absent from the input.
var ErrMissingColumn = errors.New("required column missing")

// Loader reads an evaluation table from a CSV, JSONL or Parquet file.
type Loader struct {
	path        string
	textColumns []string // accepted text column names, in resolution order
}

// NewLoader creates a loader for the given file. textColumns lists the
// accepted names for the text column; the first one present in the file wins.
func NewLoader(path string, textColumns ...string) *Loader {
	return &Loader{
		path:        path,
		textColumns: textColumns,
	}
}

// Load reads all records from the file. The format is detected by extension.
func (l *Loader) Load() (*Table, error) {
	ext := strings.ToLower(filepath.Ext(l.path))

	switch ext {
	case ".csv":
		return l.loadCSV()
	case ".jsonl", ".json":
		return l.loadJSONL()
	case ".parquet":
		return l.loadParquet()
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: .csv, .jsonl, .parquet)", ext)
	}
}

// loadCSV reads records from a CSV file with a header row.
func (l *Loader) loadCSV() (*Table, error) {
	slog.Debug("Opening CSV file", "path", l.path)

	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}

	idCol, ok := idx["id"]
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s", ErrMissingColumn, "id", l.path)
	}

	textCol := -1
	textName := ""
	for _, name := range l.textColumns {
		if i, ok := idx[name]; ok {
			textCol = i
			textName = name
			break
		}
	}
	if textCol < 0 {
		return nil, fmt.Errorf("%w: one of %v in %s", ErrMissingColumn, l.textColumns, l.path)
	}

	table := &Table{Path: l.path, TextColumn: textName}

	rowNum := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", rowNum+1, err)
		}
		rowNum++

		id, err := strconv.ParseInt(strings.TrimSpace(row[idCol]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id at row %d of %s: %w", rowNum, l.path, err)
		}

		table.Records = append(table.Records, Record{ID: id, Text: row[textCol]})
	}

	slog.Debug("Finished reading CSV file", "total_records", len(table.Records), "text_column", textName)

	return table, nil
}

// loadJSONL reads records from a JSONL file, one object per line.
func (l *Loader) loadJSONL() (*Table, error) {
	slog.Debug("Opening JSONL file", "path", l.path)

	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table file: %w", err)
	}
	defer file.Close()

	table := &Table{Path: l.path}
	scanner := bufio.NewScanner(file)

	// Increase buffer size for large clinical notes
	const maxCapacity = 10 * 1024 * 1024 // 10MB per line
	buf := make([]byte, maxCapacity)
	scanner.Buffer(buf, maxCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()

		if len(line) == 0 {
			continue
		}

		var row map[string]any
		if err := json.Unmarshal(line, &row); err != nil {
			return nil, fmt.Errorf("failed to parse JSON at line %d: %w", lineNum, err)
		}

		id, err := jsonID(row)
		if err != nil {
			return nil, fmt.Errorf("invalid id at line %d of %s: %w", lineNum, l.path, err)
		}

		if table.TextColumn == "" {
			for _, name := range l.textColumns {
				if _, ok := row[name]; ok {
					table.TextColumn = name
					break
				}
			}
			if table.TextColumn == "" {
				return nil, fmt.Errorf("%w: one of %v in %s", ErrMissingColumn, l.textColumns, l.path)
			}
		}

		text, _ := row[table.TextColumn].(string)
		table.Records = append(table.Records, Record{ID: id, Text: text})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading table: %w", err)
	}

	slog.Debug("Finished reading JSONL file", "total_records", len(table.Records), "total_lines", lineNum)

	return table, nil
}

// jsonID extracts the id value from a decoded JSON row.
func jsonID(row map[string]any) (int64, error) {
	v, ok := row["id"]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingColumn, "id")
	}

	switch id := v.(type) {
	case float64:
		return int64(id), nil
	case string:
		return strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	default:
		return 0, fmt.Errorf("unsupported id type %T", v)
	}
}

// parquetRow covers all task columns; absent columns decode to zero values.
type parquetRow struct {
	ID                int64  `parquet:"id"`
	Note              string `parquet:"note,optional"`
	Dialogue          string `parquet:"dialogue,optional"`
	GeneratedNote     string `parquet:"generated_note,optional"`
	GeneratedDialogue string `parquet:"generated_dialogue,optional"`
}

// text returns the value of the named column.
func (r *parquetRow) text(column string) string {
	switch column {
	case "note":
		return r.Note
	case "dialogue":
		return r.Dialogue
	case "generated_note":
		return r.GeneratedNote
	case "generated_dialogue":
		return r.GeneratedDialogue
	default:
		return ""
	}
}

// loadParquet reads records from a Parquet file.
func (l *Loader) loadParquet() (*Table, error) {
	slog.Debug("Opening Parquet file", "path", l.path)

	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	slog.Debug("Parquet file opened successfully", "num_rows", pf.NumRows(), "num_row_groups", len(pf.RowGroups()))

	schema := pf.Schema()
	if _, ok := schema.Lookup("id"); !ok {
		return nil, fmt.Errorf("%w: %q in %s", ErrMissingColumn, "id", l.path)
	}

	textName := ""
	for _, name := range l.textColumns {
		if _, ok := schema.Lookup(name); ok {
			textName = name
			break
		}
	}
	if textName == "" {
		return nil, fmt.Errorf("%w: one of %v in %s", ErrMissingColumn, l.textColumns, l.path)
	}

	reader := parquet.NewGenericReader[parquetRow](pf)
	defer reader.Close()

	table := &Table{Path: l.path, TextColumn: textName}
	rows := make([]parquetRow, 128) // Read in batches

	for {
		n, err := reader.Read(rows)
		for i := range n {
			table.Records = append(table.Records, Record{ID: rows[i].ID, Text: rows[i].text(textName)})
		}
		if err != nil {
			break
		}
	}

	slog.Debug("Finished reading Parquet file", "total_records", len(table.Records), "text_column", textName)

	return table, nil
}
