package store

import (
	"encoding/json"
	"io"
	"os"
)

type ExportData struct {
	Meta RunMetadata `json:"meta"`
	// Lead holds the payload's leading column: grid positions for eigen
	// runs, frame times for evolution runs.
	Lead []float64   `json:"lead"`
	Rows [][]float64 `json:"rows"`
}

func (s *Store) exportData(runID string) (*ExportData, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	file := "wavefunctions.csv"
	if meta.Kind == "evolve" {
		file = "frames.csv"
	}
	lead, rows, err := s.LoadColumns(runID, file)
	if err != nil {
		return nil, err
	}
	return &ExportData{Meta: *meta, Lead: lead, Rows: rows}, nil
}

// ExportJSON writes a full run, metadata and payload, as indented JSON.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	data, err := s.exportData(runID)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportJSONFile writes ExportJSON output to path.
func (s *Store) ExportJSONFile(path, runID string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.ExportJSON(f, runID)
}
