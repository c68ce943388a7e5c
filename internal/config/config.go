package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/scenetui/internal/app"
	"github.com/atomicstack/scenetui/internal/backend"
	"github.com/atomicstack/scenetui/internal/ui"
	"github.com/atomicstack/scenetui/internal/ui/command"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envLogFile       = "SCENETUI_LOG_FILE"
	envTrace         = "SCENETUI_TRACE"
	envFrameInterval = "SCENETUI_FRAME_INTERVAL"
	envQueueSize     = "SCENETUI_QUEUE_SIZE"
	envMouse         = "SCENETUI_MOUSE"
	envAltScreen     = "SCENETUI_ALT_SCREEN"
	envBubbling      = "SCENETUI_BUBBLING"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("scenetui", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	interval := fs.Duration("frame-interval", envOrDuration(env, envFrameInterval, ui.DefaultFrameInterval), "minimum time between frames")
	queueSize := fs.Int("queue-size", envOrInt(env, envQueueSize, command.DefaultCapacity), "commands buffered before submissions are rejected")
	mouse := fs.String("mouse", envOrDefault(env, envMouse, backend.MouseAll.String()), "mouse reporting: all, cell or off")
	altScreen := fs.Bool("alt-screen", envOrBool(env, envAltScreen, true), "draw on the alternate screen")
	bubbling := fs.Bool("bubbling", envOrBool(env, envBubbling, false), "deliver pointer events to ancestors as well as the target")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	mouseMode, err := backend.ParseMouseMode(*mouse)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			FrameInterval: *interval,
			QueueSize:     *queueSize,
			Mouse:         mouseMode,
			AltScreen:     *altScreen,
			Bubbling:      *bubbling,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"logFile":       *logFile,
			"trace":         strconv.FormatBool(*trace),
			"frameInterval": interval.String(),
			"queueSize":     strconv.Itoa(*queueSize),
			"mouse":         mouseMode.String(),
			"altScreen":     strconv.FormatBool(*altScreen),
			"bubbling":      strconv.FormatBool(*bubbling),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects settings the loop cannot run with.
func Validate(cfg Config) error {
	if cfg.App.FrameInterval <= 0 {
		return fmt.Errorf("frame interval must be > 0 (got %s)", cfg.App.FrameInterval)
	}
	if cfg.App.QueueSize <= 0 {
		return fmt.Errorf("queue size must be > 0 (got %d)", cfg.App.QueueSize)
	}
	switch cfg.App.Mouse {
	case backend.MouseAll, backend.MouseCell, backend.MouseOff:
	default:
		return fmt.Errorf("unknown mouse mode %s", cfg.App.Mouse)
	}
	return nil
}
