package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/bouncebox/internal/analysis"
	"github.com/san-kum/bouncebox/internal/export"
	"github.com/san-kum/bouncebox/internal/loop"
	"github.com/san-kum/bouncebox/internal/metrics"
	"github.com/san-kum/bouncebox/internal/script"
	"github.com/san-kum/bouncebox/internal/storage"
	"github.com/san-kum/bouncebox/internal/world"
	"github.com/spf13/cobra"
)

const trailLen = 12

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Ticks <= 0 {
		return fmt.Errorf("run needs --ticks > 0")
	}

	lines := cfg.Script
	if scriptFile != "" {
		extra, err := readScript(scriptFile)
		if err != nil {
			return err
		}
		lines = append(append([]string(nil), lines...), extra...)
	}
	sc, err := script.Parse(lines)
	if err != nil {
		return err
	}

	w, err := cfg.NewWorld()
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	set := metrics.Default()
	rec := storage.NewRecorder(cfg.Ticks)
	r := loop.New(w, sc,
		loop.WithMaxTicks(cfg.Ticks),
		loop.WithLogger(slog.Default()),
		loop.WithObserver(set),
		loop.WithObserver(rec),
	)

	fmt.Printf("running %dx%d for %d ticks...\n", cfg.Window.Width, cfg.Window.Height, cfg.Ticks)
	start := time.Now()
	reason, err := r.Run(context.Background())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	values := set.Values()
	runID, err := st.Save(storage.RunMetadata{
		Preset:       preset,
		Width:        cfg.Window.Width,
		Height:       cfg.Window.Height,
		TickInterval: cfg.TickInterval.String(),
		Script:       lines,
		StopReason:   reason.String(),
		Metrics:      values,
	}, rec.Samples)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v (%s)\n", elapsed, reason)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("ticks: %d\n", len(rec.Samples))
	fmt.Println("\nmetrics:")
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, values[name])
	}
	return nil
}

// readScript returns the non-empty lines of path.
func readScript(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
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

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tTICKS\tVIEWPORT\tBOUNCES\tSTOP")

	for _, run := range runs {
		p := run.Preset
		if p == "" {
			p = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%dx%d\t%.0f\t%s\n",
			run.ID,
			p,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Ticks,
			run.Width, run.Height,
			run.Metrics["horizontal_bounces"],
			run.StopReason,
		)
	}

	return w.Flush()
}

func loadRun(runID string) (*storage.RunMetadata, []storage.Sample, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	samples, err := st.LoadSamples(runID)
	if err != nil {
		return nil, nil, err
	}
	return meta, samples, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, samples, err := loadRun(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("viewport: %dx%d\n", meta.Width, meta.Height)
	fmt.Printf("samples: %d\n\n", len(samples))

	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	freqs := make([]float64, len(samples))
	for i, s := range samples {
		xs[i], ys[i], freqs[i] = s.X, s.Y, s.Freq
	}

	fmt.Println(asciigraph.PlotMany([][]float64{xs, ys},
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
		asciigraph.Caption("box center: x (red), y (blue)"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(freqs,
		asciigraph.Height(8),
		asciigraph.Width(80),
		asciigraph.Caption("bounce frequency (1/ticks)"),
	))
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, samples, err := loadRun(args[0])
	if err != nil {
		return err
	}

	xs := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = s.X
	}
	mags := analysis.Spectrum(xs)
	if len(mags) < 3 {
		return fmt.Errorf("run %s: too few samples to analyze", meta.ID)
	}

	fmt.Printf("frequency analysis: %s\n\n", meta.ID)
	plotData := mags[1:]
	if len(plotData) > 8 {
		plotData = plotData[:len(plotData)/4]
	}
	fmt.Println(asciigraph.Plot(plotData,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("magnitude spectrum of x"),
	))
	fmt.Println()

	dom := analysis.DominantFrequency(xs)
	rate := analysis.BounceRate(xs)
	fmt.Printf("dominant frequency: %.5f cycles/tick\n", dom)
	if dom > 0 {
		fmt.Printf("oscillation period:  %.2f ticks\n", 1/dom)
	}
	fmt.Printf("estimated bounce rate: %.5f /tick\n", rate)
	fmt.Printf("last tracked freq:     %.5f /tick\n", samples[len(samples)-1].Freq)
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	_, samples, err := loadRun(args[0])
	if err != nil {
		return err
	}

	idx := len(samples) - 1
	if svgTick > 0 {
		idx = sort.Search(len(samples), func(i int) bool { return samples[i].Tick >= uint32(svgTick) })
		if idx == len(samples) || samples[idx].Tick != uint32(svgTick) {
			return fmt.Errorf("tick %d not recorded in run %s", svgTick, args[0])
		}
	}

	s := samples[idx]
	trail := make([]world.Vec2, 0, trailLen)
	for i := max(0, idx-trailLen+1); i <= idx; i++ {
		trail = append(trail, world.Vec2{X: samples[i].X, Y: samples[i].Y})
	}
	svg := export.BoxSVG(s.Intent(world.DefaultHalfExtent), s.Visible, trail)

	var out io.Writer = os.Stdout
	if svgOut != "" {
		f, err := os.Create(svgOut)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	_, err = io.WriteString(out, svg)
	return err
}
