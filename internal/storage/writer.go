package storage

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/viant/afs/file"

	"github.com/leengari/sheetmerge/internal/domain/errors"
)

// WriteCSV serializes a header row plus data rows as comma-separated
// lines and uploads them to URL. Fields are written as-is, with the same
// no-quoting contract the reader has.
func (s *Service) WriteCSV(ctx context.Context, URL string, headers []string, rows [][]string) error {
	var buf bytes.Buffer
	writeLine(&buf, headers)
	for _, row := range rows {
		writeLine(&buf, row)
	}

	if err := s.fs.Upload(ctx, URL, file.DefaultFileOsMode, &buf); err != nil {
		return &errors.SourceError{URL: URL, Op: "write", Reason: err}
	}

	slog.Info("Report written",
		slog.String("url", URL),
		slog.Int("rows", len(rows)),
	)
	return nil
}

func writeLine(buf *bytes.Buffer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(f)
	}
	buf.WriteByte('\n')
}
