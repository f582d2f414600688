package ports

import "context"

// RawRecord is one untyped tabular row: field name to raw text value.
// Values carry whatever the upstream file contained; normalization and
// validation happen downstream.
type RawRecord map[string]string

// Contract for loading one tabular route dataset.
type DatasetSource interface {
	// Load fetches and parses the dataset into field-named records.
	Load(ctx context.Context) ([]RawRecord, error)
}
