package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/nwatters01/spriteworld-physics/internal/config"
	"github.com/nwatters01/spriteworld-physics/internal/engine"
	"github.com/nwatters01/spriteworld-physics/internal/export"
	"github.com/nwatters01/spriteworld-physics/internal/geom"
	"github.com/nwatters01/spriteworld-physics/internal/live"
	"github.com/nwatters01/spriteworld-physics/internal/metrics"
	"github.com/nwatters01/spriteworld-physics/internal/sim"
	"github.com/nwatters01/spriteworld-physics/internal/storage"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	dt         float64
	steps      int
	substeps   int
	seed       int64
	frameRate  int
	svgSize    int
	outFile    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "spriteworld",
		Short: "2D rigid-body force simulation",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".spriteworld", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run a simulation",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScene,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "scene config file (yaml)")
	runCmd.Flags().Float64Var(&dt, "dt", 0, "timestep override")
	runCmd.Flags().IntVar(&steps, "steps", 0, "step count override")
	runCmd.Flags().IntVar(&substeps, "substeps", 0, "substep count override")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "scene seed override")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot stored trajectories in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export stored trajectories to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVar(&outFile, "out", "", "output file (default <run_id>.csv)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export stored trajectories to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&svgSize, "size", 600, "output size in pixels")

	watchCmd := &cobra.Command{
		Use:   "watch [preset]",
		Short: "run a simulation with a live terminal view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  watchScene,
	}
	watchCmd.Flags().StringVar(&configFile, "config", "", "scene config file (yaml)")
	watchCmd.Flags().Int64Var(&seed, "seed", 0, "scene seed override")
	watchCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	rootCmd.AddCommand(runCmd, presetsCmd, listCmd, plotCmd, exportCSVCmd, exportSVGCmd, watchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadScene(cmd *cobra.Command, args []string) (*config.Config, error) {
	var cfg *config.Config

	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	case len(args) == 1:
		cfg = config.GetPreset(args[0])
		if cfg == nil {
			names := config.ListPresets()
			sort.Strings(names)
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", args[0], names)
		}
	default:
		return nil, fmt.Errorf("either a preset name or --config is required")
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("substeps") {
		cfg.Substeps = substeps
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}

	return cfg, nil
}

func buildRunner(cfg *config.Config) (*sim.Runner, []engine.Binding, error) {
	eng, bindings, err := config.Build(cfg)
	if err != nil {
		return nil, nil, err
	}

	r := sim.New(eng)
	r.AddMetric(metrics.NewEnergy(bindings))
	r.AddMetric(metrics.NewEnergyDrift(bindings))
	r.AddMetric(metrics.NewMomentum())
	return r, bindings, nil
}

func runScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene(cmd, args)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runner, _, err := buildRunner(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("running %s...\n", cfg.Name)
	start := time.Now()

	result, err := runner.Run(context.Background(), cfg.Steps)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Name, cfg.Dt, cfg.Substeps, cfg.Seed, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Println("\nmetrics:")

	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, result.Metrics[name])
	}

	return nil
}

func watchScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene(cmd, args)
	if err != nil {
		return err
	}

	runner, _, err := buildRunner(cfg)
	if err != nil {
		return err
	}

	arena := engine.UnitArena()
	if cfg.Arena != nil {
		arena = engine.Arena{
			Min: geom.Vec2{X: cfg.Arena.MinX, Y: cfg.Arena.MinY},
			Max: geom.Vec2{X: cfg.Arena.MaxX, Y: cfg.Arena.MaxY},
		}
	}

	view := live.NewView(arena, frameRate, true)
	runner.AddObserver(view)

	view.Start()
	defer view.Stop()

	_, err = runner.Run(context.Background(), cfg.Steps)
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENE\tTIME\tSTEPS\tDT\tBODIES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.4f\t%d\n",
			run.ID,
			run.Scene,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.Dt,
			run.NumBodies,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scene: %s\n", meta.Scene)
	fmt.Printf("samples: %d\n\n", len(states))

	numBodies := len(states[0])
	maxPlots := 3
	if numBodies > maxPlots {
		numBodies = maxPlots
	}

	for i := 0; i < numBodies; i++ {
		xs := make([]float64, len(states))
		ys := make([]float64, len(states))
		for k := range states {
			xs[k] = states[k][i].Position.X
			ys[k] = states[k][i].Position.Y
		}

		fmt.Println(asciigraph.Plot(xs,
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("body %d x-position", i)),
		))
		fmt.Println()
		fmt.Println(asciigraph.Plot(ys,
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("body %d y-position", i)),
		))
		fmt.Println()
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	data, err := os.ReadFile(filepath.Join(dataDir, runID, "states.csv"))
	if err != nil {
		return err
	}

	outPath := outFile
	if outPath == "" {
		outPath = runID + ".csv"
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", outPath)
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	svg := export.TrajectoriesToSVG(states, svgSize, svgSize)
	if svg == "" {
		return fmt.Errorf("not enough data to draw")
	}

	outPath := filepath.Join(dataDir, runID, "trajectories.svg")
	if err := os.WriteFile(outPath, []byte(svg), 0644); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", outPath)
	return nil
}
