package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ajstrand/hello-tui/config"
	"github.com/ajstrand/hello-tui/editor"
	"github.com/ajstrand/hello-tui/fileio"
	"github.com/ajstrand/hello-tui/i18n"
	"github.com/ajstrand/hello-tui/lint"
	"github.com/ajstrand/hello-tui/mouse"
	"github.com/ajstrand/hello-tui/syntax"
	"github.com/ajstrand/hello-tui/term"
	"github.com/ajstrand/hello-tui/ui"
)

const version = "0.3.0"

func main() {
	// Parse command line arguments
	args := os.Args[1:]
	var filename, backend, locale, logPath string
	asciiMode := false

	for _, arg := range args {
		switch {
		case arg == "--version" || arg == "-v":
			fmt.Printf("hello-tui %s\n", version)
			os.Exit(0)
		case arg == "--help" || arg == "-h":
			printHelp()
			os.Exit(0)
		case arg == "--ascii":
			asciiMode = true
		case strings.HasPrefix(arg, "--backend="):
			backend = strings.TrimPrefix(arg, "--backend=")
		case strings.HasPrefix(arg, "--locale="):
			locale = strings.TrimPrefix(arg, "--locale=")
		case strings.HasPrefix(arg, "--log="):
			logPath = strings.TrimPrefix(arg, "--log=")
		default:
			if filename == "" && !isFlag(arg) {
				filename = arg
			}
		}
	}

	if logPath == "" {
		logPath = os.Getenv("HELLO_TUI_LOG")
	}
	if logPath != "" {
		f, err := tea.LogToFile(logPath, "hello-tui")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	caps := config.DetectCapabilities()

	cfg, configErr := config.Load()
	if configErr != nil {
		log.Printf("config: %v", configErr)
	}

	// Command-line flags override config
	if asciiMode {
		t := true
		cfg.Editor.AsciiMode = &t
	}
	if backend != "" {
		cfg.Editor.Backend = backend
		cfg.Validate()
	}
	if locale == "" {
		locale = cfg.Editor.Locale
	}
	if locale == "" {
		locale = caps.Locale
	}

	catalog, err := i18n.New(locale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading translations: %v\n", err)
		os.Exit(1)
	}

	theme := config.LoadTheme(cfg.Theme.Name)
	styles := ui.NewStyles(theme, caps.ShouldUseTrueColor(cfg.Editor.TrueColor))

	linter := lint.New()
	linter.SetEnabled(cfg.Editor.Lint)

	opts := editor.DefaultOptions()
	opts.Highlighter = syntax.New(syntaxColors(theme.Syntax))
	opts.Linter = linter
	opts.Localizer = catalog
	opts.Files = fileio.NewStore(cfg.Editor.Backup)
	opts.Mouse = mouse.Config{
		DoubleClickWindow: cfg.Mouse.DoubleClickWindow(),
		ColumnTolerance:   cfg.Mouse.ColumnTolerance,
		ScrollStep:        cfg.Mouse.ScrollStep,
	}
	opts.LineNumbers = cfg.Editor.LineNumbers
	opts.Highlight = cfg.Editor.SyntaxHighlight
	if caps.ShouldUseASCII(cfg.Editor.AsciiMode) {
		opts.Glyphs = ui.ASCIIGlyphs()
	}

	e := editor.New(opts)

	var loadErr *config.ConfigLoadError
	if errors.As(configErr, &loadErr) {
		e.ReportConfigError(loadErr.FilePath, loadErr.Err)
	}

	// Load file if provided
	if filename != "" {
		if _, err := os.Stat(filename); err == nil {
			if err := e.Open(filename); err != nil {
				fmt.Fprintf(os.Stderr, "Error loading file: %v\n", err)
				os.Exit(1)
			}
		} else if os.IsNotExist(err) {
			// New file - just set the filename
			e.SetFilename(filename)
		} else {
			fmt.Fprintf(os.Stderr, "Error accessing file: %v\n", err)
			os.Exit(1)
		}

		if configErr == nil {
			cfg.AddRecentFile(filename)
			if err := cfg.Save(); err != nil {
				log.Printf("config: save recent files: %v", err)
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d := term.NewDriver(e, term.NewRenderThrottle(cfg.Render.ThrottleInterval(), nil))
	log.Printf("starting %s backend, locale %s", cfg.Editor.Backend, catalog.Locale())

	if err := run(ctx, cfg.Editor.Backend, d, styles); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error running editor: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, backend string, d *term.Driver, styles ui.Styles) error {
	if backend == "tcell" {
		scr, err := term.NewScreen(styles)
		if err != nil {
			return err
		}
		defer scr.Close()
		return term.Run(ctx, d, scr, scr)
	}
	return term.RunBubbletea(ctx, d, styles)
}

func syntaxColors(c config.SyntaxColors) syntax.SyntaxColors {
	return syntax.SyntaxColors{
		Keyword:  c.Keyword,
		String:   c.String,
		Comment:  c.Comment,
		Number:   c.Number,
		Operator: c.Operator,
		Function: c.Function,
		Type:     c.Type,
		Error:    c.Error,
	}
}

func isFlag(s string) bool {
	return len(s) > 0 && s[0] == '-'
}

func printHelp() {
	fmt.Println("hello-tui - a small terminal text editor")
	fmt.Println()
	fmt.Println("Usage: hello-tui [options] [file]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -h, --help           Show this help message")
	fmt.Println("  -v, --version        Show version information")
	fmt.Println("  --ascii              Use ASCII glyphs")
	fmt.Println("  --backend=NAME       Terminal backend: bubbletea or tcell")
	fmt.Println("  --locale=TAG         UI language, e.g. de-DE")
	fmt.Println("  --log=FILE           Write a debug log to FILE (or set HELLO_TUI_LOG)")
	fmt.Println()
	fmt.Println("Keyboard Shortcuts:")
	fmt.Println("  Ctrl+O         Open file")
	fmt.Println("  Ctrl+N         New file")
	fmt.Println("  Ctrl+S         Save file")
	fmt.Println("  Ctrl+Q/Ctrl+C  Quit (twice to discard changes)")
	fmt.Println("  Ctrl+L         Go to line")
	fmt.Println("  Ctrl+A         Select all")
	fmt.Println("  Ctrl+D         Duplicate line")
	fmt.Println("  Ctrl+K         Delete line")
	fmt.Println("  Ctrl+H         Toggle syntax highlighting")
	fmt.Println("  Ctrl+E         Toggle linting")
	fmt.Println("  F2             Switch language")
	fmt.Println("  Shift+Arrows   Select text")
	fmt.Println("  Ctrl+Arrows    Move by word")
	fmt.Println("  Home/End       Start/end of line")
	fmt.Println("  Ctrl+Home/End  Start/end of file")
	fmt.Println("  PgUp/PgDn      Scroll by page")
	fmt.Println()
	fmt.Println("Mouse:")
	fmt.Println("  Click          Position cursor")
	fmt.Println("  Double-click   Select word")
	fmt.Println("  Drag           Select text")
	fmt.Println("  Right-click    Describe selection")
	fmt.Println("  Scroll         Scroll viewport")
}
