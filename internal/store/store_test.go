package store

import (
	"testing"

	"schrod/internal/evolve"
	"schrod/internal/quantum"
	"schrod/internal/shoot"
)

func TestSaveLoadEigen(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	g := quantum.NewGrid(0, 1, 4)
	results := []shoot.Result{
		{Number: 0, Energy: 4.93, Psi: quantum.Wavefunction{0, 0.5, 1, 0.5, 0}},
		{Number: 1, Energy: 19.7, Psi: quantum.Wavefunction{0, 1, 0, -1, 0}},
	}

	runID, err := st.SaveEigen("square_well", g, results)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Kind != "eigen" {
		t.Errorf("expected kind eigen, got %s", meta.Kind)
	}
	if meta.Potential != "square_well" {
		t.Errorf("expected potential square_well, got %s", meta.Potential)
	}
	if meta.Energies["n1"] != 19.7 {
		t.Errorf("expected n1 energy 19.7, got %f", meta.Energies["n1"])
	}

	x, cols, err := st.LoadColumns(runID, "wavefunctions.csv")
	if err != nil {
		t.Fatalf("load columns failed: %v", err)
	}
	if len(x) != g.Len() {
		t.Errorf("expected %d rows, got %d", g.Len(), len(x))
	}
	if len(cols[2]) != 2 {
		t.Errorf("expected 2 state columns, got %d", len(cols[2]))
	}
	if cols[2][0] != 1 {
		t.Errorf("expected psi0 midpoint 1, got %f", cols[2][0])
	}
}

func TestSaveLoadEvolution(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	g := quantum.NewGrid(0, 1, 2)
	frames := []evolve.Frame{
		{Step: 0, Time: 0, Psi: quantum.Packet{Re: quantum.Wavefunction{0, 1, 0}, Im: quantum.Wavefunction{0, 0, 0}}},
		{Step: 10, Time: 0.01, Psi: quantum.Packet{Re: quantum.Wavefunction{0, 0, 0}, Im: quantum.Wavefunction{0, 1, 0}}},
	}

	runID, err := st.SaveEvolution("free", g, 0.001, 0.01, frames, map[string]float64{"norm_drift": 1e-12})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Kind != "evolve" {
		t.Errorf("expected kind evolve, got %s", meta.Kind)
	}
	if meta.Metrics["norm_drift"] != 1e-12 {
		t.Errorf("unexpected metrics: %v", meta.Metrics)
	}

	times, rows, err := st.LoadColumns(runID, "frames.csv")
	if err != nil {
		t.Fatalf("load columns failed: %v", err)
	}
	if len(times) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(times))
	}
	if rows[0][1] != 1 {
		t.Errorf("expected density 1 at midpoint, got %f", rows[0][1])
	}
	if rows[1][1] != 1 {
		t.Errorf("expected density 1 at midpoint, got %f", rows[1][1])
	}
}

func TestListEmpty(t *testing.T) {
	st := New(t.TempDir() + "/missing")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	g := quantum.NewGrid(0, 1, 4)
	if _, err := st.SaveEigen("free", g, nil); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Kind != "eigen" {
		t.Errorf("expected eigen run, got %s", runs[0].Kind)
	}
}
