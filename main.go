package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/iancoleman/strcase"
	"github.com/mattn/go-isatty"

	"github.com/gslf/stdt/console"
	"github.com/gslf/stdt/dotenv"
	"github.com/gslf/stdt/internal/config"
	"github.com/gslf/stdt/json"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Indent      string `help:"Pretty-print using the given indentation unit (e.g. two spaces)." short:"n"`
	Rekey       string `help:"Rewrite object keys to the given case." short:"r" enum:",snake,camel,kebab" default:""`
	Env         bool   `help:"Load the nearest .env file before running." short:"e"`
	Debug       bool   `help:"Enable debug logging." short:"d"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Read JSON pasted on stdin, Ctrl+D to process." short:"I"`
}

const version = "0.1.0"

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "stdt"})

func main() {
	parser := kong.Must(&CLI,
		kong.Name("stdt"),
		kong.Description("Validate, pretty-print and rewrite JSON documents"),
		kong.UsageOnError(),
	)

	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	if _, err := parser.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("stdt version %s\n", version)
		return
	}

	if CLI.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	if err := run(); err != nil {
		var pe *json.ParseError
		if errors.As(err, &pe) {
			logger.Error("input is not valid JSON", "line", pe.Line, "column", pe.Column, "offset", pe.Offset, "reason", pe.Message)
		} else {
			logger.Error(err)
		}
		os.Exit(1)
	}
}

// run executes the main program logic
func run() error {
	if CLI.Env {
		n, err := dotenv.Load()
		if err != nil {
			return fmt.Errorf("loading .env: %w", err)
		}
		logger.Debug("loaded environment", "applied", n)
	}

	cfg := config.NewConfig()
	if path := config.FindConfigFile(); path != "" {
		logger.Debug("using config file", "path", path)
		fileCfg, err := config.LoadConfig(path)
		if err != nil {
			return err
		}
		cfg = fileCfg
	}
	cfg = cfg.Merge(CLI.Indent, CLI.Rekey)
	if err := cfg.Validate(); err != nil {
		return err
	}

	text, err := readInput()
	if err != nil {
		return err
	}

	out, err := processJSON(text, cfg)
	if err != nil {
		return err
	}
	return writeOutput(out)
}

// processJSON parses the document, optionally rewrites object keys, and
// renders it with the configured formatting.
func processJSON(text string, cfg *config.Config) (string, error) {
	v, err := json.Parse(text)
	if err != nil {
		return "", err
	}

	if cfg.Rekey != "" {
		v = rekeyValue(v, rekeyFunc(cfg.Rekey))
	}

	if cfg.Indent != "" {
		return json.SerializeIndent(v, cfg.Indent), nil
	}
	return json.Serialize(v), nil
}

func rekeyFunc(mode string) func(string) string {
	switch mode {
	case "snake":
		return strcase.ToSnake
	case "camel":
		return strcase.ToLowerCamel
	case "kebab":
		return strcase.ToKebab
	default:
		return func(s string) string { return s }
	}
}

// rekeyValue rebuilds the tree with transformed object keys, preserving key
// order. When two keys collapse to the same name the later one wins.
func rekeyValue(v json.Value, fn func(string) string) json.Value {
	switch v.Kind() {
	case json.KindArray:
		elems, _ := v.AsArray()
		out := make([]json.Value, len(elems))
		for i, e := range elems {
			out[i] = rekeyValue(e, fn)
		}
		return json.Array(out...)
	case json.KindObject:
		obj, _ := v.AsObject()
		out := json.NewObject()
		for _, key := range obj.Keys() {
			child, _ := obj.Get(key)
			out.Set(fn(key), rekeyValue(child, fn))
		}
		return out.Value()
	default:
		return v
	}
}

// readInput reads JSON text from file or stdin
func readInput() (string, error) {
	if CLI.Input != "" {
		data, err := os.ReadFile(CLI.Input)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		if len(data) == 0 {
			return "", fmt.Errorf("input file '%s' is empty", CLI.Input)
		}
		return string(data), nil
	}

	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to access stdin: %w", err)
	}

	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		if CLI.Interactive {
			return readInteractiveInput()
		}
		return "", fmt.Errorf("no input provided: specify a file with -i or pipe JSON data to stdin")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read from stdin: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("empty input received from stdin")
	}
	return string(data), nil
}

// writeOutput writes the rendered document to file or stdout
func writeOutput(text string) error {
	if CLI.Output != "" {
		if err := os.WriteFile(CLI.Output, []byte(text+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write to file '%s': %w", CLI.Output, err)
		}
		logger.Info("wrote output", "path", CLI.Output)
		return nil
	}

	_, err := fmt.Println(text)
	return err
}

// readInteractiveInput lets the user paste JSON and signal completion with
// Ctrl+D (EOF)
func readInteractiveInput() (string, error) {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		_ = console.Fclear(os.Stderr)
	}
	fmt.Fprintln(os.Stderr, "stdt interactive mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(os.Stdin)
	var sb strings.Builder
	for {
		line, err := reader.ReadString('\n')
		sb.WriteString(line)
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("error reading input: %w", err)
		}
	}

	if strings.TrimSpace(sb.String()) == "" {
		return "", fmt.Errorf("empty input received")
	}
	return sb.String(), nil
}
