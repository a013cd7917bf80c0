package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"

	"github.com/leengari/sheetmerge/internal/storage"
)

func TestWriteCSV_RoundTrip(t *testing.T) {
	URL := "mem://localhost/writer/report.csv"
	ctx := context.Background()

	err := storage.New().WriteCSV(ctx, URL,
		[]string{"load_id", "rate"},
		[][]string{{"L1", "1200.00"}, {"L2", "640.00"}},
	)
	require.NoError(t, err)

	data, err := afs.New().DownloadWithURL(ctx, URL)
	require.NoError(t, err)
	assert.Equal(t, "load_id,rate\nL1,1200.00\nL2,640.00\n", string(data))
}

func TestWriteCSV_HeadersOnly(t *testing.T) {
	URL := "mem://localhost/writer/empty.csv"
	ctx := context.Background()

	err := storage.New().WriteCSV(ctx, URL, []string{"a", "b"}, nil)
	require.NoError(t, err)

	data, err := afs.New().DownloadWithURL(ctx, URL)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(data))
}
