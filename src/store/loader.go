package store

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/alexmcqw/signmap/src/types"
)

// fetchSource retrieves the raw dataset bytes from a local path or an
// http(s) URL. Failures come back as *FetchError.
func fetchSource(source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := http.Get(source)
		if err != nil {
			return nil, &FetchError{Source: source, Err: err}
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, &FetchError{Source: source, Status: resp.StatusCode}
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &FetchError{Source: source, Err: err}
		}
		return data, nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, &FetchError{Source: source, Err: err}
	}
	return data, nil
}

// parseRows parses tab-separated text with a header row. The first record's
// fields become the column names; each later record becomes one Row with the
// same column set. Missing trailing fields are absent, extra fields are
// dropped.
func parseRows(data []byte) ([]string, []types.Row, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse dataset: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, nil
	}

	columns := records[0]

	rows := make([]types.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		fields := make(map[string]string, len(columns))
		for i, col := range columns {
			if i < len(record) {
				fields[col] = record[i]
			}
		}
		rows = append(rows, types.Row{Columns: columns, Fields: fields})
	}

	return columns, rows, nil
}
