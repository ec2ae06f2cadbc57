package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"planetoids/internal/config"
	"planetoids/internal/gui"
	"planetoids/internal/scene"
	"planetoids/internal/sim"
	"planetoids/internal/viz"
)

var (
	configFile string
	preset     string
	seed       int64
	fps        int
	dt         float64
	duration   float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "planetoids [planets]",
		Short: "a clickable toy solar system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, args[0])
			if err != nil {
				return err
			}
			return gui.Run(cfg)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed for body layout")
	rootCmd.PersistentFlags().IntVar(&fps, "fps", config.DefaultFPS, "target frame rate")

	tuiCmd := &cobra.Command{
		Use:   "tui [planets]",
		Short: "run in the terminal instead of a window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, args[0])
			if err != nil {
				return err
			}
			return viz.Run(cfg)
		},
	}

	runCmd := &cobra.Command{
		Use:   "run [planets]",
		Short: "run headless and print final body positions",
		Args:  cobra.ExactArgs(1),
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&dt, "dt", sim.TimeStep, "timestep")
	runCmd.Flags().Float64Var(&duration, "time", 10.0, "duration")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("  %s (%d planets)\n", name, config.Presets[name].Planets)
			}
		},
	}

	rootCmd.AddCommand(tuiCmd, runCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig merges defaults, preset, config file, flags and the required
// positional planet count, in increasing order of precedence.
func buildConfig(cmd *cobra.Command, planetsArg string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}

	planets, err := parsePlanets(planetsArg)
	if err != nil {
		return nil, err
	}
	cfg.Planets = planets

	return cfg, cfg.Validate()
}

// parsePlanets enforces the one hard input contract: the planet count must
// be a non-negative integer.
func parsePlanets(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("planet count must be an integer, got %q", arg)
	}
	if n < 0 {
		return 0, fmt.Errorf("planet count must be non-negative, got %d", n)
	}
	return n, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	sys, err := scene.Build(cfg.Planets, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return err
	}

	fmt.Printf("running %d planets for %.1fs (seed %d)...\n", cfg.Planets, duration, cfg.Seed)
	start := time.Now()

	ticks := 0
	err = sim.Run(context.Background(), sys, sim.Config{Dt: dt, Duration: duration}, func(float64) bool {
		ticks++
		return true
	})
	if err != nil {
		return err
	}

	fmt.Printf("completed %d ticks in %v\n\n", ticks, time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tKIND\tORBIT\tSPEED\tPHASE\tX\tZ")
	idx := 0
	for _, p := range sys.Planets {
		printBody(w, idx, "planet", &p.Body)
		idx++
		for _, m := range p.Moons {
			printBody(w, idx, "moon", m)
			idx++
		}
	}
	return w.Flush()
}

func printBody(w *tabwriter.Writer, idx int, kind string, b *scene.Body) {
	fmt.Fprintf(w, "%d\t%s\t%.3f\t%.3f\t%.3f\t%+.4f\t%+.4f\n",
		idx, kind, b.Radius, b.Speed, b.Phase, b.Position.X, b.Position.Z)
}
