package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"schrod/internal/analysis"
	"schrod/internal/config"
	"schrod/internal/evolve"
	"schrod/internal/export"
	"schrod/internal/potential"
	"schrod/internal/quad"
	"schrod/internal/quantum"
	"schrod/internal/shoot"
	"schrod/internal/store"
	"schrod/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string

	potName   string
	gridMin   float64
	gridMax   float64
	gridSteps int
	wellLeft  float64
	wellRight float64
	wellDepth float64
	hbar      float64
	mass      float64

	states   string
	maxIter  int
	brackets string

	dt        float64
	duration  float64
	every     int
	packetX0  float64
	packetSig float64
	packetK   float64

	pngPath string
	noSave  bool
	noPlot  bool

	outFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "schrod",
		Short: "1D Schrödinger equation solver lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".schrod", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "solve bound-state eigenpairs by shooting",
		RunE:  solveStates,
	}
	addPotentialFlags(solveCmd)
	solveCmd.Flags().StringVar(&states, "states", "0", "quantum numbers to solve, comma separated")
	solveCmd.Flags().IntVar(&maxIter, "max-iter", config.DefaultMaxIter, "bisection iteration budget")
	solveCmd.Flags().StringVar(&brackets, "bracket", "", "energy bracket override lo,hi")
	solveCmd.Flags().StringVar(&pngPath, "png", "", "write a PNG of the solved states")
	solveCmd.Flags().BoolVar(&noSave, "no-save", false, "skip persisting the run")
	solveCmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip the terminal plot")

	evolveCmd := &cobra.Command{
		Use:   "evolve",
		Short: "advance a wave packet with Crank-Nicolson stepping",
		RunE:  evolvePacket,
	}
	addPotentialFlags(evolveCmd)
	addPacketFlags(evolveCmd)
	evolveCmd.Flags().StringVar(&pngPath, "png", "", "write a PNG of density snapshots")
	evolveCmd.Flags().BoolVar(&noSave, "no-save", false, "skip persisting the run")
	evolveCmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip the terminal plot")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch a wave packet evolve in the terminal",
		RunE:  runLive,
	}
	addPotentialFlags(liveCmd)
	addPacketFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a saved run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&outFile, "out", "", "output path (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(solveCmd, evolveCmd, liveCmd, listCmd, plotCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func addPotentialFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&potName, "potential", "square_well", "potential name")
	cmd.Flags().Float64Var(&gridMin, "xmin", -1.4, "grid lower bound")
	cmd.Flags().Float64Var(&gridMax, "xmax", 1.4, "grid upper bound")
	cmd.Flags().IntVar(&gridSteps, "steps", config.DefaultSteps, "grid intervals")
	cmd.Flags().Float64Var(&wellLeft, "left", -1, "well/barrier left wall")
	cmd.Flags().Float64Var(&wellRight, "right", 1, "well/barrier right wall")
	cmd.Flags().Float64Var(&wellDepth, "depth", -1, "well depth (barrier height)")
	cmd.Flags().Float64Var(&hbar, "hbar", 1, "reduced Planck constant")
	cmd.Flags().Float64Var(&mass, "mass", 1, "particle mass")
}

func addPacketFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "time step")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	cmd.Flags().IntVar(&every, "every", config.DefaultEvery, "record every k-th step")
	cmd.Flags().Float64Var(&packetX0, "x0", 0, "packet center")
	cmd.Flags().Float64Var(&packetSig, "sigma", 0.5, "packet width")
	cmd.Flags().Float64Var(&packetK, "k", 0, "packet wavenumber")
}

// resolveConfig layers preset < config file < explicitly set flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (try 'schrod presets')", preset)
		}
		*cfg = *p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	set := func(name string) bool { return cmd.Flags().Changed(name) }
	if set("potential") {
		cfg.Potential = potName
	}
	if set("xmin") {
		cfg.Grid.Min = gridMin
	}
	if set("xmax") {
		cfg.Grid.Max = gridMax
	}
	if set("steps") {
		cfg.Grid.Steps = gridSteps
	}
	if set("left") {
		cfg.Well.Left = wellLeft
	}
	if set("right") {
		cfg.Well.Right = wellRight
	}
	if set("depth") {
		cfg.Well.Depth = wellDepth
		cfg.Well.Height = wellDepth
	}
	if set("hbar") {
		cfg.Physics.Hbar = hbar
	}
	if set("mass") {
		cfg.Physics.Mass = mass
	}
	if set("states") {
		parsed, err := parseStates(states)
		if err != nil {
			return nil, err
		}
		cfg.Shoot.States = parsed
	}
	if set("max-iter") {
		cfg.Shoot.MaxIter = maxIter
	}
	if set("bracket") {
		b, err := parseBracket(brackets)
		if err != nil {
			return nil, err
		}
		cfg.Shoot.Bracket = b
	}
	if set("dt") {
		cfg.Evolve.Dt = dt
	}
	if set("time") {
		cfg.Evolve.Duration = duration
	}
	if set("every") {
		cfg.Evolve.Every = every
	}
	if set("x0") {
		cfg.Evolve.PacketX0 = packetX0
	}
	if set("sigma") {
		cfg.Evolve.Sigma = packetSig
	}
	if set("k") {
		cfg.Evolve.K0 = packetK
	}
	if cfg.Shoot.MaxIter <= 0 {
		cfg.Shoot.MaxIter = config.DefaultMaxIter
	}
	if cfg.Shoot.Psi1 == 0 && cfg.Shoot.Psi0 == 0 {
		cfg.Shoot.Psi1 = config.DefaultPsi1
	}
	if len(cfg.Shoot.States) == 0 {
		cfg.Shoot.States = []int{0}
	}
	if cfg.Evolve.Dt <= 0 {
		cfg.Evolve.Dt = config.DefaultDt
	}
	if cfg.Evolve.Duration <= 0 {
		cfg.Evolve.Duration = config.DefaultDuration
	}
	if cfg.Evolve.Every <= 0 {
		cfg.Evolve.Every = config.DefaultEvery
	}
	if cfg.Evolve.Sigma <= 0 {
		cfg.Evolve.Sigma = 0.5
	}
	return cfg, nil
}

func parseStates(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid quantum number %q", p)
		}
		out = append(out, n)
	}
	return out, nil
}

func parseBracket(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("bracket must be lo,hi")
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, err
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, err
	}
	return []float64{lo, hi}, nil
}

type problem struct {
	cfg    *config.Config
	grid   quantum.Grid
	v      []float64
	params quantum.Params
}

func setup(cmd *cobra.Command) (*problem, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	f, err := cfg.PotentialFunc()
	if err != nil {
		return nil, err
	}
	g := cfg.MakeGrid()
	return &problem{
		cfg:    cfg,
		grid:   g,
		v:      potential.Sample(f, g),
		params: cfg.Params(),
	}, nil
}

func solveStates(cmd *cobra.Command, args []string) error {
	pr, err := setup(cmd)
	if err != nil {
		return err
	}
	cfg := pr.cfg

	bracket, ok := cfg.ShootBracket()
	if !ok {
		bracket = quantum.DefaultBracket(pr.v)
	}
	seed := shoot.Seed{Psi0: cfg.Shoot.Psi0, Psi1: cfg.Shoot.Psi1, PsiN: cfg.Shoot.PsiN}
	mhdx2 := pr.params.Mhdx2(pr.grid.Dx)

	results, errs := shoot.SolveSpectrum(context.Background(), mhdx2, pr.v, seed,
		bracket, cfg.Shoot.States, cfg.Shoot.MaxIter)

	solved := make([]shoot.Result, 0, len(results))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "n\tenergy\titerations\t<H>\t")
	for i, res := range results {
		if errs[i] != nil {
			fmt.Fprintf(os.Stderr, "state %d: %v\n", cfg.Shoot.States[i], errs[i])
			continue
		}
		psi, err := quad.Normalize(res.Psi, pr.grid.Dx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "state %d: %v\n", res.Number, err)
			continue
		}
		res.Psi = psi
		expected, err := analysis.Energy(pr.params, pr.grid, pr.v, psi)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%.6f\t%d\t%.6f\t\n", res.Number, res.Energy, res.Iterations, expected)
		solved = append(solved, res)
	}
	w.Flush()

	if len(solved) == 0 {
		return fmt.Errorf("no state converged")
	}

	if !noPlot {
		psis := make([]quantum.Wavefunction, len(solved))
		for i, r := range solved {
			psis[i] = r.Psi
		}
		fmt.Println()
		fmt.Println(viz.Wavefunctions(psis, fmt.Sprintf("%s eigenstates", cfg.Potential)))
	}

	if pngPath != "" {
		if err := export.Eigenfunctions(pngPath, pr.grid, pr.v, solved); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", pngPath)
	}

	if !noSave {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.SaveEigen(cfg.Potential, pr.grid, solved)
		if err != nil {
			return err
		}
		fmt.Printf("saved run %s\n", runID)
	}
	return nil
}

func makePacket(pr *problem) (quantum.Packet, error) {
	e := pr.cfg.Evolve
	packet := quantum.NewGaussianPacket(pr.grid, e.PacketX0, e.Sigma, e.K0)
	return quad.NormalizePacket(packet, pr.grid.Dx)
}

func evolvePacket(cmd *cobra.Command, args []string) error {
	pr, err := setup(cmd)
	if err != nil {
		return err
	}
	e := pr.cfg.Evolve

	packet, err := makePacket(pr)
	if err != nil {
		return err
	}
	stepper := evolve.NewStepper(pr.params, pr.v, pr.grid.Dx, e.Dt)
	drift := analysis.NewNormDrift(pr.grid.Dx)

	var frames []evolve.Frame
	final, err := evolve.Run(context.Background(), stepper, packet,
		evolve.Config{Dt: e.Dt, Duration: e.Duration, Every: e.Every},
		func(f evolve.Frame) {
			drift.Observe(f)
			frames = append(frames, f)
		})
	if err != nil {
		return err
	}

	mean, err := analysis.MeanX(pr.grid, final.Density())
	if err != nil {
		return err
	}
	fmt.Printf("steps: %d  frames: %d\n", int(e.Duration/e.Dt), len(frames))
	fmt.Printf("norm: %.9f  drift: %.3e  <x>: %.4f  <p>: %.4f\n",
		drift.Current(), drift.Value(), mean,
		analysis.MeanMomentum(final, pr.grid.Dx, pr.params.Hbar))

	if !noPlot {
		fmt.Println()
		fmt.Println(viz.Density(final, e.Duration))
	}

	if pngPath != "" {
		picks := pickFrames(frames, 4)
		if err := export.DensitySnapshots(pngPath, pr.grid, picks); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", pngPath)
	}

	if !noSave {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.SaveEvolution(pr.cfg.Potential, pr.grid, e.Dt, e.Duration,
			frames, map[string]float64{"norm_drift": drift.Value()})
		if err != nil {
			return err
		}
		fmt.Printf("saved run %s\n", runID)
	}
	return nil
}

// pickFrames thins a frame sequence to at most n evenly spaced snapshots,
// always keeping the first and last.
func pickFrames(frames []evolve.Frame, n int) []evolve.Frame {
	if len(frames) <= n {
		return frames
	}
	out := make([]evolve.Frame, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, frames[i*(len(frames)-1)/(n-1)])
	}
	return out
}

func runLive(cmd *cobra.Command, args []string) error {
	pr, err := setup(cmd)
	if err != nil {
		return err
	}
	packet, err := makePacket(pr)
	if err != nil {
		return err
	}
	stepper := evolve.NewStepper(pr.params, pr.v, pr.grid.Dx, pr.cfg.Evolve.Dt)
	title := fmt.Sprintf("schrod live · %s", pr.cfg.Potential)
	return viz.RunLive(title, stepper, pr.grid, packet, pr.cfg.Evolve.Dt)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\tkind\tpotential\ttimestamp\t")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", r.ID, r.Kind, r.Potential,
			r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	switch meta.Kind {
	case "eigen":
		_, cols, err := st.LoadColumns(args[0], "wavefunctions.csv")
		if err != nil {
			return err
		}
		if len(cols) == 0 || len(cols[0]) == 0 {
			return fmt.Errorf("run %s holds no wavefunctions", args[0])
		}
		psis := make([]quantum.Wavefunction, len(cols[0]))
		for s := range cols[0] {
			psi := make(quantum.Wavefunction, len(cols))
			for i := range cols {
				psi[i] = cols[i][s]
			}
			psis[s] = psi
		}
		fmt.Println(viz.Wavefunctions(psis, fmt.Sprintf("%s · %s", meta.Potential, meta.ID)))
	case "evolve":
		times, rows, err := st.LoadColumns(args[0], "frames.csv")
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return fmt.Errorf("run %s holds no frames", args[0])
		}
		last := len(rows) - 1
		fmt.Println(viz.Potential(rows[last], fmt.Sprintf("|psi|² at t=%.3f · %s", times[last], meta.ID)))
	default:
		return fmt.Errorf("unknown run kind %q", meta.Kind)
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	if outFile != "" {
		return st.ExportJSONFile(outFile, args[0])
	}
	return st.ExportJSON(os.Stdout, args[0])
}
