package datasets

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"route-compare-service/internal/ports"
)

// CSVLoader implements DatasetSource for one CSV resource, reachable either
// as a local file path or an http(s) URL. The first row is the header; every
// following row becomes a RawRecord keyed by header field names.
type CSVLoader struct {
	Location string
	session  *http.Client
}

func NewCSVLoader(location string) *CSVLoader {
	return &CSVLoader{
		Location: location,
		session:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Load fetches and parses the dataset.
// A load failure is fatal to startup readiness, so errors are returned
// rather than degraded; data-quality problems inside individual rows are
// not detected here.
func (l *CSVLoader) Load(ctx context.Context) ([]ports.RawRecord, error) {
	rc, err := l.open(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dataset %q: %w", l.Location, err)
	}
	defer rc.Close()

	records, err := parseCSV(rc)
	if err != nil {
		return nil, fmt.Errorf("load dataset %q: %w", l.Location, err)
	}
	return records, nil
}

func (l *CSVLoader) open(ctx context.Context) (io.ReadCloser, error) {
	if strings.HasPrefix(l.Location, "http://") || strings.HasPrefix(l.Location, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.Location, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}

		resp, err := l.session.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch: unexpected status %d", resp.StatusCode)
		}
		return resp.Body, nil
	}

	f, err := os.Open(l.Location)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	return f, nil
}

func parseCSV(r io.Reader) ([]ports.RawRecord, error) {
	reader := csv.NewReader(r)
	// Rows with missing trailing fields still produce a record; absent
	// fields stay absent from the map.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("parse csv: empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("parse csv: read header: %w", err)
	}

	fields := make([]string, len(header))
	for i, h := range header {
		fields[i] = strings.TrimSpace(h)
	}

	records := make([]ports.RawRecord, 0, 256)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse csv: read row: %w", err)
		}

		if isEmptyRow(row) {
			continue
		}

		rec := make(ports.RawRecord, len(fields))
		for i, v := range row {
			if i >= len(fields) || fields[i] == "" {
				continue
			}
			rec[fields[i]] = v
		}
		records = append(records, rec)
	}

	return records, nil
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
