package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/samber/lo"
)

// Markers treated as missing cells on CSV ingestion.
var missingMarkers = map[string]bool{
	"":    true,
	"NA":  true,
	"N/A": true,
	"NaN": true,
	"nan": true,
}

type csvOptions struct {
	indexColumn   string
	stringColumns []string
	comma         rune
}

// CSVOption configures ReadCSV.
type CSVOption func(*csvOptions)

// WithIndexColumn uses the named column as the row index instead of
// positional labels. The column is consumed and not kept as data.
func WithIndexColumn(name string) CSVOption {
	return func(o *csvOptions) { o.indexColumn = name }
}

// WithStringColumns forces the named columns to String dtype, suppressing
// numeric sniffing for identifiers like zip codes.
func WithStringColumns(names ...string) CSVOption {
	return func(o *csvOptions) { o.stringColumns = append(o.stringColumns, names...) }
}

// WithComma sets the field delimiter.
func WithComma(c rune) CSVOption {
	return func(o *csvOptions) { o.comma = c }
}

// ReadCSV loads CSV input into a frame. The first record is the header. A
// column becomes Float when every non-missing cell parses as a float;
// otherwise it becomes String. "", "NA", "N/A", "NaN" and "nan" cells load
// as missing.
func ReadCSV(r io.Reader, opts ...CSVOption) (*Frame, error) {
	o := csvOptions{comma: ','}
	for _, opt := range opts {
		opt(&o)
	}

	cr := csv.NewReader(r)
	cr.Comma = o.comma
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoHeader
	}

	header := records[0]
	rows := records[1:]

	cells := make([][]string, len(header))
	for c := range header {
		cells[c] = make([]string, len(rows))
		for r, rec := range rows {
			cells[c][r] = rec[c]
		}
	}

	indexPos := -1
	if o.indexColumn != "" {
		indexPos = lo.IndexOf(header, o.indexColumn)
		if indexPos < 0 {
			return nil, fmt.Errorf("%w: index column %q", ErrColumnNotFound, o.indexColumn)
		}
	}

	index := make([]string, len(rows))
	for r := range rows {
		if indexPos >= 0 {
			index[r] = rows[r][indexPos]
		} else {
			index[r] = strconv.Itoa(r)
		}
	}

	var series []*Series
	for c, name := range header {
		if c == indexPos {
			continue
		}
		series = append(series, sniffColumn(name, cells[c], lo.Contains(o.stringColumns, name)))
	}
	return New(index, series...)
}

// ReadCSVFile is a convenience wrapper around ReadCSV.
func ReadCSVFile(path string, opts ...CSVOption) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	return ReadCSV(file, opts...)
}

func sniffColumn(name string, cells []string, forceString bool) *Series {
	numeric := !forceString
	if numeric {
		for _, cell := range cells {
			if missingMarkers[cell] {
				continue
			}
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				numeric = false
				break
			}
		}
	}

	if numeric {
		s := FloatCol(name, make([]float64, len(cells))...)
		for i, cell := range cells {
			if missingMarkers[cell] {
				s.SetNA(i)
				continue
			}
			v, _ := strconv.ParseFloat(cell, 64)
			s.floats[i] = v
		}
		return s
	}

	s := StringCol(name, cells...)
	for i, cell := range cells {
		if missingMarkers[cell] {
			s.SetNA(i)
		}
	}
	return s
}
