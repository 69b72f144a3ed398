package energy

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// One row of the per-sol report.
type SolRecord struct {
	Sol     int     `csv:"sol"`
	E_solar float64 `csv:"solar_kj"`
	E_nuc   float64 `csv:"nuclear_kj"`
	E_wind  float64 `csv:"wind_kj"`
	E_total float64 `csv:"total_kj"`
}

// Accumulates per-sol energy series and exports them as CSV.
type Recorder struct {
	rows []*SolRecord
}

/*
Create a recorder for a year of n sols. Sols are numbered from 1.

	Args:
		n: number of sols

	Returns:
		Recorder
*/
func NewRecorder(n int) *Recorder {
	rows := make([]*SolRecord, n)
	for i := range rows {
		rows[i] = &SolRecord{Sol: i + 1}
	}
	return &Recorder{rows: rows}
}

func (r *Recorder) RecordSolar(e_ns []float64) {
	r._check_len(e_ns)
	for i, e := range e_ns {
		r.rows[i].E_solar = e
	}
}

func (r *Recorder) RecordNuclear(e_ns []float64) {
	r._check_len(e_ns)
	for i, e := range e_ns {
		r.rows[i].E_nuc = e
	}
}

func (r *Recorder) RecordWind(e_ns []float64) {
	r._check_len(e_ns)
	for i, e := range e_ns {
		r.rows[i].E_wind = e
	}
}

// Rows returns the accumulated rows with totals filled in.
func (r *Recorder) Rows() []*SolRecord {
	for _, row := range r.rows {
		row.E_total = row.E_solar + row.E_nuc + row.E_wind
	}
	return r.rows
}

/*
Export the accumulated report to a CSV file.

	Args:
		path: output file path

	Returns:
		error
*/
func (r *Recorder) Export(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer file.Close()

	rows := r.Rows()
	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("write report file: %w", err)
	}
	return nil
}

func (r *Recorder) _check_len(e_ns []float64) {
	if len(e_ns) != len(r.rows) {
		panic(fmt.Sprintf("Error Series length should be %d but is %d.", len(r.rows), len(e_ns)))
	}
}
