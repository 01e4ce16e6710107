package main

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/particlefield/internal/config"
	"github.com/san-kum/particlefield/internal/export"
	"github.com/san-kum/particlefield/internal/loop"
	"github.com/san-kum/particlefield/internal/particle"
	"github.com/san-kum/particlefield/internal/viz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configFile string
	verbose    bool
	logFile    string
	seed       uint64
	fps        int
	theme      string
	heroPreset string
	numCards   int
	width      float64
	height     float64
	ticks      int
	format     string
	outPath    string
	duration   time.Duration

	logger = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Registering the flags also resets
// every flag variable to its default.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "particlefield",
		Short: "ambient particle backgrounds for the Playbook Labs landing page",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(cmd)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: runLive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "scene config file (yaml)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	pf.Uint64Var(&seed, "seed", 0, "random seed (0 picks one)")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	pf.StringVar(&heroPreset, "hero", "", "hero preset (hero, hero-mobile, or auto to pick by --width)")
	pf.IntVar(&numCards, "cards", 3, "number of card fields")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate the hero and card fields in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	liveCmd.Flags().Float64Var(&width, "width", 800, "viewport width used by --hero auto")
	rootCmd.Flags().AddFlagSet(liveCmd.Flags())

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render the hero field after a number of ticks",
		Args:  cobra.NoArgs,
		RunE:  runRender,
	}
	addViewportFlags(renderCmd)
	renderCmd.Flags().IntVar(&ticks, "ticks", 120, "ticks to simulate before rendering")
	renderCmd.Flags().StringVar(&format, "format", "svg", "output format (svg, json)")
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "record the hero field as an animated gif",
		Args:  cobra.NoArgs,
		RunE:  runRecord,
	}
	addViewportFlags(recordCmd)
	recordCmd.Flags().DurationVar(&duration, "time", 3*time.Second, "recording length")
	recordCmd.Flags().StringVarP(&outPath, "out", "o", "particles.gif", "output file")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run every field headless on its own frame loop",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	addViewportFlags(runCmd)
	runCmd.Flags().DurationVar(&duration, "time", 5*time.Second, "how long to run (0 runs until interrupted)")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "plot mean particle speed over time",
		Args:  cobra.NoArgs,
		RunE:  runTrace,
	}
	addViewportFlags(traceCmd)
	traceCmd.Flags().IntVar(&ticks, "ticks", 2000, "ticks to simulate")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list field presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage scene config files",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "write the default scene config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "particlefield.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	})

	rootCmd.AddCommand(liveCmd, renderCmd, recordCmd, runCmd, traceCmd, presetsCmd, configCmd)
	return rootCmd
}

func addViewportFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&width, "width", 800, "viewport width")
	cmd.Flags().Float64Var(&height, "height", 600, "viewport height")
}

// newLogger keeps the terminal clean for the TUI: interactive commands only
// log when a log file is given.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	interactive := cmd.Name() == "live" || cmd.Parent() == nil
	if interactive && logFile == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if logFile != "" {
		cfg.OutputPaths = []string{logFile}
	}
	return cfg.Build()
}

// loadScene resolves the scene config: defaults, then the config file,
// then flags set explicitly on the command line.
func loadScene(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("cards") {
		cfg.Cards = resizeCards(cfg.Cards, numCards)
	}
	switch heroPreset {
	case "":
	case "auto":
		cfg.Hero = config.HeroForWidth(width)
	default:
		p := config.GetPreset(heroPreset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", heroPreset, config.ListPresets())
		}
		cfg.Hero = *p
	}

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("scene resolved",
		zap.Int("fps", cfg.FPS),
		zap.Uint64("seed", cfg.Seed),
		zap.Int("hero", cfg.Hero.Count),
		zap.Int("cards", len(cfg.Cards)))
	return cfg, nil
}

func resizeCards(cards []config.FieldConfig, n int) []config.FieldConfig {
	if n < 0 {
		n = 0
	}
	out := make([]config.FieldConfig, n)
	for i := range out {
		if i < len(cards) {
			out[i] = cards[i]
		} else {
			out[i] = *config.GetPreset("card")
		}
	}
	return out
}

// newRNG gives every field of a scene its own stream of the same seed.
func newRNG(seed uint64, stream int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, uint64(stream)))
}

func heroField(cfg *config.Config) *particle.Field {
	return particle.NewField(cfg.Hero.Particle(), newRNG(cfg.Seed, 0))
}

func cardFields(cfg *config.Config) []*particle.Field {
	fields := make([]*particle.Field, len(cfg.Cards))
	for i, c := range cfg.Cards {
		fields[i] = particle.NewField(c.Particle(), newRNG(cfg.Seed, i+1))
	}
	return fields
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene(cmd)
	if err != nil {
		return err
	}
	m := viz.NewModel(heroField(cfg), cardFields(cfg), loop.FPS(cfg.FPS), viz.GetTheme(cfg.Theme))
	return viz.Run(m)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene(cmd)
	if err != nil {
		return err
	}

	field := heroField(cfg)
	field.Mount(particle.Bounds{Width: width, Height: height})
	surface := export.NewSVGSurface(width, height, viz.GetTheme(cfg.Theme).BackgroundRGB())
	for i := 0; i < ticks; i++ {
		field.Frame(surface)
	}
	if ticks <= 0 {
		particle.Render(field.Particles(), surface)
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "svg":
		_, err = surface.WriteTo(out)
	case "json":
		err = export.WriteJSON(out, export.NewSnapshot(field))
	default:
		return fmt.Errorf("unknown format: %s (available: svg, json)", format)
	}
	if err != nil {
		return err
	}
	logger.Info("rendered", zap.Int("ticks", ticks), zap.String("format", format))
	return nil
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene(cmd)
	if err != nil {
		return err
	}

	frames := int(duration.Seconds() * float64(cfg.FPS))
	if frames <= 0 {
		return fmt.Errorf("recording of %v at %d fps has no frames", duration, cfg.FPS)
	}

	field := heroField(cfg)
	field.Mount(particle.Bounds{Width: width, Height: height})
	rec := export.NewRecorder(int(width), int(height),
		viz.GetTheme(cfg.Theme).BackgroundRGB(),
		field.Config().Palette,
		int(math.Round(100/float64(cfg.FPS))))

	var lp *loop.Loop
	lp = loop.New(func(time.Time) {
		field.Frame(rec)
		rec.Capture()
		if rec.Frames() >= frames {
			lp.Stop()
		}
	}, loop.FPS(cfg.FPS), loop.WithLogger(logger), loop.WithName("record"))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	if err := lp.Run(ctx); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := rec.Encode(f); err != nil {
		return err
	}
	fmt.Printf("recorded %d frames to %s\n", rec.Frames(), outPath)
	return nil
}

// runHeadless drives the hero and every card on independent loops, the way
// the page runs one animation callback per canvas.
func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene(cmd)
	if err != nil {
		return err
	}

	type instance struct {
		name    string
		field   *particle.Field
		surface *export.Raster
	}
	bg := viz.GetTheme(cfg.Theme).BackgroundRGB()
	hero := instance{"hero", heroField(cfg), export.NewRaster(int(width), int(height), bg)}
	hero.field.Mount(particle.Bounds{Width: width, Height: height})
	instances := []instance{hero}
	for i, f := range cardFields(cfg) {
		const cardW, cardH = 320, 380
		f.Mount(particle.Bounds{Width: cardW, Height: cardH})
		instances = append(instances, instance{fmt.Sprintf("card-%d", i), f, export.NewRaster(cardW, cardH, bg)})
	}

	group := loop.NewGroup()
	for _, in := range instances {
		group.Add(loop.New(func(time.Time) { in.field.Frame(in.surface) },
			loop.FPS(cfg.FPS), loop.WithLogger(logger), loop.WithName(in.name)))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	if duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, duration)
		defer cancel()
	}
	watchSuspend(ctx, group, logger)

	err = group.Run(ctx)
	for _, in := range instances {
		in.field.Dispose()
	}
	if err != nil && ctx.Err() == nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tTICKS\tPARTICLES")
	for _, in := range instances {
		fmt.Fprintf(w, "%s\t%d\t%d\n", in.name, in.field.Ticks(), in.field.Config().Count)
	}
	return w.Flush()
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene(cmd)
	if err != nil {
		return err
	}
	if ticks <= 0 {
		return fmt.Errorf("no data to plot")
	}

	field := heroField(cfg)
	b := particle.Bounds{Width: width, Height: height}
	field.Mount(b)
	ps := field.Particles()

	bounce := make([]float64, ticks)
	wrap := make([]float64, ticks)
	for i := 0; i < ticks; i++ {
		particle.Tick(ps, b)
		bounce[i], wrap[i] = meanSpeed(ps)
	}

	fmt.Printf("seed: %d\n", cfg.Seed)
	fmt.Printf("particles: %d (%d bounce)\n\n", len(ps), cfg.Hero.BounceCount)
	series := []struct {
		caption string
		data    []float64
	}{
		{"bounce particles: mean speed", bounce},
		{"wrap particles: mean speed", wrap},
	}
	for _, s := range series {
		graph := asciigraph.Plot(s.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func meanSpeed(ps []particle.Particle) (bounce, wrap float64) {
	var nb, nw int
	for _, p := range ps {
		v := math.Hypot(p.VX, p.VY)
		if p.Bounce {
			bounce += v
			nb++
		} else {
			wrap += v
			nw++
		}
	}
	if nb > 0 {
		bounce /= float64(nb)
	}
	if nw > 0 {
		wrap /= float64(nw)
	}
	return bounce, wrap
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCOUNT\tBOUNCE\tSPEED\tSIZE\tPALETTE")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%d\t%.2f\t%.0f-%.0f\t%s\n",
			name, p.Count, p.BounceCount, p.MaxSpeed, p.MinSize, p.MaxSize,
			strings.Join(p.Palette, " "))
	}
	return w.Flush()
}
