// Package store persists solver runs as per-run directories holding a
// metadata document plus CSV payloads.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"schrod/internal/evolve"
	"schrod/internal/quantum"
	"schrod/internal/shoot"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Kind      string             `json:"kind"` // "eigen" or "evolve"
	Potential string             `json:"potential"`
	Timestamp time.Time          `json:"timestamp"`
	GridMin   float64            `json:"grid_min"`
	GridMax   float64            `json:"grid_max"`
	GridSteps int                `json:"grid_steps"`
	Dt        float64            `json:"dt,omitempty"`
	Duration  float64            `json:"duration,omitempty"`
	Energies  map[string]float64 `json:"energies,omitempty"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

func (s *Store) newRunDir(kind string) (string, string, error) {
	runID := fmt.Sprintf("%s_%d", kind, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", "", err
	}
	return runID, runDir, nil
}

func (s *Store) writeMeta(runDir string, meta RunMetadata) error {
	f, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// SaveEigen writes solved eigenpairs: metadata with one energy per state
// and a wavefunctions.csv with the grid positions and one column per state.
func (s *Store) SaveEigen(potentialName string, g quantum.Grid, results []shoot.Result) (string, error) {
	runID, runDir, err := s.newRunDir("eigen")
	if err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Kind:      "eigen",
		Potential: potentialName,
		Timestamp: time.Now(),
		GridMin:   g.X[0],
		GridMax:   g.X[g.Len()-1],
		GridSteps: g.Len() - 1,
		Energies:  make(map[string]float64, len(results)),
	}
	for _, r := range results {
		meta.Energies[fmt.Sprintf("n%d", r.Number)] = r.Energy
	}
	if err := s.writeMeta(runDir, meta); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(runDir, "wavefunctions.csv"))
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"x"}
	for _, r := range results {
		header = append(header, fmt.Sprintf("psi%d", r.Number))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := 0; i < g.Len(); i++ {
		row := []string{strconv.FormatFloat(g.X[i], 'f', 6, 64)}
		for _, r := range results {
			row = append(row, strconv.FormatFloat(r.Psi[i], 'g', 10, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	return runID, nil
}

// SaveEvolution writes observed frames: metadata plus a frames.csv with
// one row per frame (time, then the density at every grid point).
func (s *Store) SaveEvolution(potentialName string, g quantum.Grid, dt, duration float64, frames []evolve.Frame, metrics map[string]float64) (string, error) {
	runID, runDir, err := s.newRunDir("evolve")
	if err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Kind:      "evolve",
		Potential: potentialName,
		Timestamp: time.Now(),
		GridMin:   g.X[0],
		GridMax:   g.X[g.Len()-1],
		GridSteps: g.Len() - 1,
		Dt:        dt,
		Duration:  duration,
		Metrics:   metrics,
	}
	if err := s.writeMeta(runDir, meta); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"time"}
	for i := 0; i < g.Len(); i++ {
		header = append(header, fmt.Sprintf("d%d", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, fr := range frames {
		row := []string{strconv.FormatFloat(fr.Time, 'f', 6, 64)}
		for _, d := range fr.Psi.Density() {
			row = append(row, strconv.FormatFloat(d, 'g', 10, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadColumns reads either payload CSV back as a leading column (x or
// time) plus the remaining numeric columns, one slice per row.
func (s *Store) LoadColumns(runID, file string) (lead []float64, rows [][]float64, err error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, file))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return []float64{}, [][]float64{}, nil
	}

	for i := 1; i < len(records); i++ {
		rec := records[i]
		if len(rec) == 0 {
			continue
		}
		v, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			continue
		}
		lead = append(lead, v)

		row := make([]float64, 0, len(rec)-1)
		for j := 1; j < len(rec); j++ {
			val, err := strconv.ParseFloat(rec[j], 64)
			if err != nil {
				continue
			}
			row = append(row, val)
		}
		rows = append(rows, row)
	}
	return lead, rows, nil
}
