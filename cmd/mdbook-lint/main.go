// Command mdbook-lint lints the Markdown sources of an mdBook project.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"

	"github.com/joshrotenberg/mdbook-lint-sub003/internal/config"
	"github.com/joshrotenberg/mdbook-lint-sub003/internal/discovery"
	"github.com/joshrotenberg/mdbook-lint-sub003/internal/engine"
	fixpkg "github.com/joshrotenberg/mdbook-lint-sub003/internal/fix"
	"github.com/joshrotenberg/mdbook-lint-sub003/internal/lint"
	"github.com/joshrotenberg/mdbook-lint-sub003/internal/log"
	"github.com/joshrotenberg/mdbook-lint-sub003/internal/output"
	"github.com/joshrotenberg/mdbook-lint-sub003/internal/plugin"
	"github.com/joshrotenberg/mdbook-lint-sub003/internal/rule"
	"github.com/joshrotenberg/mdbook-lint-sub003/internal/rules/mdbook"
	"github.com/joshrotenberg/mdbook-lint-sub003/internal/rules/quality"
	"github.com/joshrotenberg/mdbook-lint-sub003/internal/rules/standard"
)

func main() {
	os.Exit(run())
}

const usageText = `Usage: mdbook-lint <command> [flags] [files...]

Commands:
  check     Lint Markdown files
  rules     List registered rules with category and stability
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'mdbook-lint <command> --help' for more information on a command.
`

func run() int {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	switch os.Args[1] {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	case "check":
		return runCheck(os.Args[2:])
	case "rules":
		return runRules(os.Args[2:])
	case "version":
		printVersion()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "mdbook-lint: unknown command %q\n\n%s", os.Args[1], usageText)
		return 2
	}
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("mdbook-lint %s\n", version)
}

// buildEngine assembles the built-in providers and creates an engine
// under the given configuration.
func buildEngine(cfg *config.Config) (*engine.Engine, error) {
	registry := plugin.NewRegistry()
	providers := []rule.Provider{
		standard.New(),
		mdbook.New(),
		quality.New(),
	}
	for _, p := range providers {
		if err := registry.RegisterProvider(p); err != nil {
			return nil, err
		}
	}
	return registry.CreateEngineWith(cfg)
}

// loadConfig resolves the run configuration: an explicit path, a
// discovered .mdbook-lint.yml, or defaults.
func loadConfig(explicit string) (*config.Config, error) {
	if explicit != "" {
		return config.Load(explicit)
	}
	found, err := config.Discover(".")
	if err != nil || found == "" {
		return config.Default(), nil
	}
	return config.Load(found)
}

// runCheck implements the "check" subcommand.
func runCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	var (
		configPath string
		format     string
		noColor    bool
		verbose    bool
		applyFixes bool
	)

	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&format, "format", "f", "text", "Output format: text, json")
	fs.BoolVar(&noColor, "no-color", false, "Disable colored output")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")
	fs.BoolVar(&applyFixes, "fix", false, "Apply automatic fixes in place")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mdbook-lint check [flags] [files...]\n\n"+
			"Lint Markdown files. With no file arguments, discovers Markdown\n"+
			"files under the current directory.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mdbook-lint: %v\n", err)
		return 2
	}

	eng, err := buildEngine(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mdbook-lint: %v\n", err)
		return 2
	}

	for _, notice := range eng.DeprecationNotices() {
		prefix := "warning"
		if cfg.DeprecatedWarning == config.DeprecatedInfo {
			prefix = "info"
		}
		fmt.Fprintf(os.Stderr, "mdbook-lint: %s: %s\n", prefix, notice)
	}

	files := fs.Args()
	if len(files) == 0 {
		files, err = discovery.Discover(discovery.Options{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "mdbook-lint: %v\n", err)
			return 2
		}
	}

	runner := &engine.Runner{
		Engine: eng,
		Log:    log.New(os.Stderr, verbose),
	}
	result := runner.Run(context.Background(), files)

	if applyFixes {
		fixFiles(result.Violations)
	}

	formatter := newFormatter(format, noColor)
	if err := formatter.Format(os.Stdout, result.Violations); err != nil {
		fmt.Fprintf(os.Stderr, "mdbook-lint: %v\n", err)
		return 2
	}

	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "mdbook-lint: %v\n", e)
	}

	if len(result.Errors) > 0 || hasErrors(result.Violations) {
		return 1
	}
	return 0
}

// fixFiles groups violations by file and writes fixed content back.
func fixFiles(violations []lint.Violation) {
	byFile := map[string][]lint.Violation{}
	for _, v := range violations {
		if v.Fix != nil {
			byFile[v.File] = append(byFile[v.File], v)
		}
	}
	for path, vs := range byFile {
		source, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "mdbook-lint: %v\n", err)
			continue
		}
		fixed, applied := fixpkg.ApplyAll(source, vs)
		if applied == 0 {
			continue
		}
		if err := os.WriteFile(path, fixed, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "mdbook-lint: %v\n", err)
		}
	}
}

func hasErrors(violations []lint.Violation) bool {
	for _, v := range violations {
		if v.Severity == lint.Error {
			return true
		}
	}
	return false
}

func newFormatter(format string, noColor bool) output.Formatter {
	if format == "json" {
		return &output.JSONFormatter{}
	}
	color := !noColor && isatty.IsTerminal(os.Stdout.Fd())
	return &output.TextFormatter{Color: color}
}

// runRules implements the "rules" subcommand.
func runRules(args []string) int {
	fs := flag.NewFlagSet("rules", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mdbook-lint rules\n\n"+
			"List registered rules with category and stability.\n")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	eng, err := buildEngine(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mdbook-lint: %v\n", err)
		return 2
	}

	for _, r := range eng.Registry().All() {
		md := r.Metadata()
		status := string(md.Stability.Level)
		if md.Stability.Level == rule.StabilityDeprecated && md.Stability.SupersededBy != "" {
			status += " (use " + md.Stability.SupersededBy + ")"
		}
		fixable := ""
		if rule.CanFix(r) {
			fixable = "fixable"
		}
		fmt.Printf("%-10s %-28s %-11s %-8s %s\n", r.ID(), r.Name(), md.Category, fixable, status)
	}
	return 0
}
