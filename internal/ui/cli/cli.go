package cli

import (
	"flag"
	"fmt"
	"strings"
)

const versionString = "1.0.0"
const defaultConfigPath = "./clangq.toml"

type cliOptions struct {
	configPath string
	once       bool
	ui         bool
	dump       bool
	tokens     string
	diags      bool
	decls      bool
	macros     bool
	lookup     string
	jsonOut    bool
	metrics    string
	verbose    bool
	version    bool
	args       []string
	clangArgs  []string
}

func parseOptions(args []string) (cliOptions, error) {
	var opts cliOptions
	fs := flag.NewFlagSet("clangq", flag.ContinueOnError)

	fs.StringVar(&opts.configPath, "config", defaultConfigPath, "Path to config file")
	fs.BoolVar(&opts.once, "once", false, "Parse once and exit instead of watching for changes")
	fs.BoolVar(&opts.ui, "ui", false, "Enable terminal UI mode")
	fs.BoolVar(&opts.dump, "dump", false, "Print the AST outline of the translation unit and exit")
	fs.StringVar(&opts.tokens, "tokens", "", "Print the tokens of the first declaration with this name and exit")
	fs.BoolVar(&opts.diags, "diags", false, "Print diagnostics")
	fs.BoolVar(&opts.decls, "decls", false, "Print extracted declarations")
	fs.BoolVar(&opts.macros, "macros", false, "Print macro definitions (enables the detailed preprocessing record)")
	fs.StringVar(&opts.lookup, "lookup", "", "Look up a declaration by name in the catalog and exit")
	fs.BoolVar(&opts.jsonOut, "json", false, "Emit declarations, macros and lookups as JSON")
	fs.StringVar(&opts.metrics, "metrics", "", "Serve Prometheus metrics on this address (overrides config)")
	fs.BoolVar(&opts.verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&opts.version, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, err
	}

	// Everything after "--" goes to the compiler. The flag set consumes the
	// terminator itself when it directly follows the flags.
	rest := fs.Args()
	if i := indexOf(rest, "--"); i >= 0 {
		opts.args = rest[:i]
		opts.clangArgs = rest[i+1:]
	} else if indexOf(args, "--") >= 0 {
		opts.clangArgs = rest
	} else {
		opts.args = rest
	}
	return opts, nil
}

// validateModes rejects flag combinations that cannot run together.
func validateModes(opts cliOptions) error {
	single := 0
	for _, on := range []bool{opts.dump, opts.tokens != "", opts.lookup != ""} {
		if on {
			single++
		}
	}
	if single > 1 {
		return fmt.Errorf("--dump, --tokens and --lookup cannot be combined")
	}
	if opts.ui && (opts.isSingleShot() || opts.jsonOut) {
		return fmt.Errorf("--ui watches for changes and cannot be combined with --once, --dump, --tokens, --lookup or --json")
	}
	if len(opts.args) > 1 {
		return fmt.Errorf("expected at most one source file argument, got %s", strings.Join(opts.args, " "))
	}
	return nil
}

// isSingleShot reports whether the run exits after the first parse.
func (o cliOptions) isSingleShot() bool {
	return o.once || o.dump || o.tokens != "" || o.lookup != ""
}

func indexOf(values []string, want string) int {
	for i, v := range values {
		if v == want {
			return i
		}
	}
	return -1
}
