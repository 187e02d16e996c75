// Command jjdesc classifies a Jujutsu commit-description draft into labeled
// spans and renders them: highlighted ANSI text by default, or structured
// JSON/NDJSON/TSV listings. `jjdesc serve` offers the same thing as an HTML
// preview page.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/pkg/browser"

	"github.com/necaris/jjdesc/internal/classify"
	"github.com/necaris/jjdesc/internal/config"
	"github.com/necaris/jjdesc/internal/output"
	"github.com/necaris/jjdesc/internal/termcolor"
	"github.com/necaris/jjdesc/internal/web"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		serveCmd(os.Args[2:])
		return
	}
	runCmd(os.Args[1:])
}

type cliFlags struct {
	fs            *flag.FlagSet
	summaryLength int
	outputFormat  string
	color         string
	scheme        string
	configPath    string
	noConfig      bool
}

func newFlags(name string) *cliFlags {
	c := &cliFlags{fs: flag.NewFlagSet(name, flag.ExitOnError)}
	c.fs.IntVar(&c.summaryLength, "summary-length", classify.DefaultSummaryLength,
		"recommended summary width in display columns (<=0 disables overflow marking)")
	c.fs.StringVar(&c.outputFormat, "output", "ansi", "ansi|json|ndjson|tsv|table")
	c.fs.StringVar(&c.color, "color", "auto", "auto|always|never")
	c.fs.StringVar(&c.scheme, "scheme", "auto", "auto|dark|light (terminal background)")
	c.fs.StringVar(&c.configPath, "config", "", "config file (default: discovered)")
	c.fs.BoolVar(&c.noConfig, "no-config", false, "skip config file discovery")
	return c
}

// layer returns only the flags the user actually set, so unset flags do not
// shadow config file or environment values.
func (c *cliFlags) layer() config.FileConfig {
	var layer config.FileConfig
	c.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "summary-length":
			v := c.summaryLength
			layer.SummaryLength = &v
		case "output":
			v := c.outputFormat
			layer.Output = &v
		case "color":
			v := c.color
			layer.Color = &v
		case "scheme":
			v := c.scheme
			layer.Scheme = &v
		}
	})
	return layer
}

func resolveSettings(flags *cliFlags, startDir string, getenv func(string) string) (config.Settings, error) {
	var layers []config.FileConfig
	if !flags.noConfig {
		explicit := flags.configPath
		if explicit == "" {
			explicit = getenv("JJDESC_CONFIG")
		}
		path, _, err := config.Find(startDir, explicit, getenv("XDG_CONFIG_HOME"), getenv("HOME"))
		if err != nil {
			return config.Settings{}, err
		}
		if path != "" {
			fileLayer, err := config.Load(path)
			if err != nil {
				return config.Settings{}, err
			}
			layers = append(layers, fileLayer)
		}
	}
	envLayer, err := config.FromEnv(getenv)
	if err != nil {
		return config.Settings{}, err
	}
	layers = append(layers, envLayer, flags.layer())
	return config.Normalize(config.Merge(config.Defaults(), layers...))
}

func runCmd(args []string) {
	flags := newFlags("jjdesc")
	flags.fs.Usage = func() {
		fmt.Fprintln(flags.fs.Output(), "usage: jjdesc [flags] [file]")
		fmt.Fprintln(flags.fs.Output(), "       jjdesc serve [flags]")
		fmt.Fprintln(flags.fs.Output(), "Reads the draft from file (or stdin) and writes classified spans.")
		flags.fs.PrintDefaults()
	}
	_ = flags.fs.Parse(args)

	settings, err := resolveSettings(flags, ".", os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "jjdesc:", err)
		os.Exit(2)
	}

	text, err := readInput(flags.fs.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	spans := classify.All(text, settings.SummaryLength)
	if err := writeOutput(os.Stdout, text, spans, settings); err != nil {
		log.Fatal(err)
	}
}

func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func writeOutput(w io.Writer, text string, spans []classify.Span, settings config.Settings) error {
	switch settings.Output {
	case "json":
		return output.WriteJSON(w, output.Annotate(text, spans))
	case "ndjson":
		return output.WriteNDJSON(w, output.Annotate(text, spans))
	case "tsv":
		return output.WriteTSV(w, output.Annotate(text, spans))
	case "table":
		return output.WriteTable(w, output.Annotate(text, spans))
	default: // ansi
		env := termcolor.EnvMap(os.Environ())
		mode, err := termcolor.ParseMode(settings.Color)
		if err != nil {
			return err
		}
		return output.WriteANSI(w, text, spans,
			termcolor.DetectProfile(env), schemeFor(settings.Scheme, env), colorEnabled(mode, env))
	}
}

func colorEnabled(mode termcolor.ColorMode, env map[string]string) bool {
	if mode == termcolor.ModeAuto {
		return termcolor.DetectMode(os.Stdout, env) == termcolor.ModeAlways
	}
	return termcolor.Enabled(mode, os.Stdout)
}

func schemeFor(value string, env map[string]string) termcolor.Scheme {
	scheme, auto, err := termcolor.ParseScheme(value)
	if err != nil || auto {
		return termcolor.DetectScheme(env)
	}
	return scheme
}

func serveCmd(args []string) {
	flags := newFlags("jjdesc serve")
	port := flags.fs.Int("p", 8080, "port")
	open := flags.fs.Bool("open", false, "open the preview in a browser")
	flags.fs.Usage = func() {
		fmt.Fprintln(flags.fs.Output(), "usage: jjdesc serve [flags]")
		flags.fs.PrintDefaults()
	}
	_ = flags.fs.Parse(args)

	settings, err := resolveSettings(flags, ".", os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "jjdesc:", err)
		os.Exit(2)
	}

	mux := http.NewServeMux()
	web.Register(mux, web.Options{SummaryLength: settings.SummaryLength})

	addr := fmt.Sprintf("127.0.0.1:%d", *port)
	url := "http://" + addr + "/"
	log.Printf("jjdesc serve listening on %s (summary length %d)", url, settings.SummaryLength)
	if *open {
		go func() {
			time.Sleep(200 * time.Millisecond)
			if err := browser.OpenURL(url); err != nil {
				log.Printf("open browser: %v", err)
			}
		}()
	}
	log.Fatal(http.ListenAndServe(addr, mux))
}
