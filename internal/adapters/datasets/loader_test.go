package datasets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `date,vehicle_id,vehicle_type,stop_order,Mahalle,latitude,longitude
2025-12-19,3,truck,1,Nilüfer,40.19,29.06
2025-12-19,3,truck,2,Osmangazi,40.20,29.07

2025-12-20,5,van,1,,40.30,29.10
`

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	records, err := NewCSVLoader(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "2025-12-19", records[0]["date"])
	assert.Equal(t, "3", records[0]["vehicle_id"])
	assert.Equal(t, "Nilüfer", records[0]["Mahalle"])
	assert.Equal(t, "29.07", records[1]["longitude"])
	assert.Equal(t, "", records[2]["Mahalle"])
}

func TestLoadFromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleCSV))
	}))
	t.Cleanup(srv.Close)

	records, err := NewCSVLoader(srv.URL + "/data/routes.csv").Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestLoadHTTPNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	_, err := NewCSVLoader(srv.URL).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewCSVLoader(filepath.Join(t.TempDir(), "absent.csv")).Load(context.Background())
	assert.Error(t, err)
}

func TestLoadShortRowsKeepParsing(t *testing.T) {
	csv := "date,vehicle_id,latitude,longitude\n2025-12-19,3\n"
	path := filepath.Join(t.TempDir(), "short.csv")
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	records, err := NewCSVLoader(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	// Missing trailing fields stay absent; validity is decided downstream.
	_, hasLat := records[0]["latitude"]
	assert.False(t, hasLat)
}

func TestLoadEmptyInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := NewCSVLoader(path).Load(context.Background())
	assert.Error(t, err)
}
