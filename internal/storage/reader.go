package storage

import (
	"bufio"
	"context"
	"log/slog"
	"path"
	"strings"

	"github.com/viant/afs"

	"github.com/leengari/sheetmerge/internal/domain/errors"
	"github.com/leengari/sheetmerge/internal/domain/table"
)

// Service reads tabular sources and writes report sinks. Locations are
// URLs resolved by afs, so file paths, file:// and mem:// (tests) all
// work through the same code path.
type Service struct {
	fs afs.Service
}

// New creates a storage service backed by the default afs service.
func New() *Service {
	return &Service{fs: afs.New()}
}

// ReadTable parses one delimited text source into a Table.
//
// The source is consumed line by line, in order, in a single pass. Each
// line is trimmed and split on "," — there is no quoting or escaping
// support, so a comma inside a field is not representable (documented
// limitation). The first line becomes the header row; every later line
// is zipped positionally against the headers: extra fields are dropped,
// missing fields default to the empty string. Blank lines are skipped.
//
// keep may be nil to accept every record. Records rejected by keep are
// dropped during the scan, before they are ever stored; this is a memory
// optimization, not cosmetics. Note the asymmetry with filter.Build: an
// empty filter.Set builds a predicate that rejects everything, so
// "accept all" is expressed only by a nil keep.
//
// A source that cannot be opened or read fails with a *errors.SourceError.
func (s *Service) ReadTable(ctx context.Context, URL string, keep func(table.Record) bool) (*table.Table, error) {
	reader, err := s.fs.OpenURL(ctx, URL)
	if err != nil {
		return nil, errors.NewOpenError(URL, err)
	}
	defer reader.Close()

	t := &table.Table{Name: tableName(URL)}
	dropped := 0

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")

		if t.Headers == nil {
			t.Headers = fields
			continue
		}

		record := zipRecord(t.Headers, fields)
		if keep != nil && !keep(record) {
			dropped++
			continue
		}
		t.Rows = append(t.Rows, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewReadError(URL, err)
	}

	slog.Debug("Table loaded",
		slog.String("table", t.Name),
		slog.String("url", URL),
		slog.Int("columns", len(t.Headers)),
		slog.Int("rows", len(t.Rows)),
		slog.Int("dropped", dropped),
	)

	return t, nil
}

// zipRecord pairs fields with headers positionally. A shorter line leaves
// the remaining columns empty; a longer line loses its tail. Accepted
// lossy behavior for malformed rows, not corrected.
func zipRecord(headers []string, fields []string) table.Record {
	record := make(table.Record, len(headers))
	for i, h := range headers {
		if i < len(fields) {
			record[h] = fields[i]
		} else {
			record[h] = ""
		}
	}
	return record
}

// tableName derives a display name from the source URL, e.g.
// "data/loads.csv" -> "loads".
func tableName(URL string) string {
	base := path.Base(URL)
	return strings.TrimSuffix(base, path.Ext(base))
}
