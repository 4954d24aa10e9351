package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"panes/internal/config"
	"panes/internal/notify"
	"panes/internal/trace"
	"panes/internal/ui"
)

// options holds the parsed command line.
type options struct {
	configPath string
	direction  string
	spacing    float64
	panels     int
	watch      bool
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.configPath, "config", "", "panel group config (YAML or JSON); defaults to $"+config.EnvPath)
	flag.StringVar(&opts.direction, "direction", "", "override the flow direction: row or column")
	flag.Float64Var(&opts.spacing, "spacing", -1, "override the divider thickness in cells")
	flag.IntVar(&opts.panels, "panels", 3, "number of panels when no config file is given")
	flag.BoolVar(&opts.watch, "watch", false, "reload the config file when it changes")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: panes [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Panes lays out resizable panels in the terminal. Drag a divider\n")
		fmt.Fprintf(os.Stderr, "with the mouse or focus it with tab and nudge it with h/l.\n\n")
		fmt.Fprintf(os.Stderr, "Environment:\n")
		fmt.Fprintf(os.Stderr, "  %s                  config file used when -config is empty\n", config.EnvPath)
		fmt.Fprintf(os.Stderr, "  PANES_LOG                     append debug logs to this file\n")
		fmt.Fprintf(os.Stderr, "  OTEL_EXPORTER_OTLP_ENDPOINT   export drags as OTLP spans\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return opts
}

// loadConfig reads the config file if there is one, otherwise builds a
// default group, then applies flag overrides.
func loadConfig(opts options) (*config.Group, string, error) {
	path := config.Resolve(opts.configPath)
	var (
		cfg *config.Group
		err error
	)
	if path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			return nil, "", err
		}
	} else {
		cfg = config.Default(opts.panels)
	}

	if opts.direction != "" {
		if err := cfg.Direction.UnmarshalText([]byte(opts.direction)); err != nil {
			return nil, "", fmt.Errorf("-direction: %w", err)
		}
	}
	if opts.spacing >= 0 {
		cfg.Spacing = opts.spacing
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// setupLogging sends the standard logger to $PANES_LOG, or nowhere; the
// terminal belongs to the UI.
func setupLogging() (io.Closer, error) {
	path := os.Getenv("PANES_LOG")
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	return tea.LogToFile(path, "panes")
}

func run(opts options) error {
	closer, err := setupLogging()
	if err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	if closer != nil {
		defer closer.Close()
	}

	cfg, path, err := loadConfig(opts)
	if err != nil {
		return err
	}
	log.Printf("config: path=%q direction=%s spacing=%v panels=%d", path, cfg.Direction, cfg.Spacing, len(cfg.Panels))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	exporter, err := trace.NewOTLPExporter(ctx)
	if err != nil {
		return fmt.Errorf("otlp exporter: %w", err)
	}
	traces := trace.NewManager(0, exporter)
	defer func() {
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		if err := traces.Shutdown(shutdownCtx); err != nil {
			log.Printf("trace shutdown: %v", err)
		}
	}()

	events := make(chan notify.Event, 64)
	go logEvents(ctx, events)

	model := ui.NewAppModel(cfg, ui.Options{
		Path:   path,
		Traces: traces,
		Notify: &notify.ChanEmitter{Ch: events},
	})
	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())

	if opts.watch {
		if path == "" {
			return fmt.Errorf("-watch needs a config file")
		}
		w, err := config.NewWatcher(path, config.DefaultDebounce)
		if err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		defer w.Close()
		go w.Run(ctx,
			func() { p.Send(ui.ReloadMsg{}) },
			func(err error) { log.Printf("watch: %v", err) },
		)
	}

	_, err = p.Run()
	return err
}

// logEvents drains layout notifications into the log.
func logEvents(ctx context.Context, events <-chan notify.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			switch ev.Kind {
			case notify.KindError:
				log.Printf("%s: %s", ev.Kind, ev.Message)
			default:
				log.Printf("%s: divider=%d sizes=%v", ev.Kind, ev.Divider, ev.Sizes)
			}
		}
	}
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "panes: %v\n", err)
		os.Exit(1)
	}
}
