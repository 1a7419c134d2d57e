package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/lhaig/hs2v/internal/config"
	"github.com/lhaig/hs2v/internal/rename"
)

const usage = `hs2v - translation core for converting functional programs to Gallina

Usage:
  hs2v escape <ident>...            Print the escaped form of each identifier
  hs2v table [--config <file>]      Print the renaming table a run starts from
  hs2v check-config <file>          Validate a configuration file

Options:
  --config <file>   Configuration file (default: ` + config.FileName + ` if present)

Examples:
  hs2v escape fix Type_ map         Prints fix_, Type__ and map
  hs2v table --config hs2v.yaml     Built-in plus configured renamings
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "escape":
		handleEscape(os.Args[2:])
	case "table":
		handleTable(os.Args[2:])
	case "check-config":
		handleCheckConfig(os.Args[2:])
	case "help", "--help", "-h":
		fmt.Print(usage)
	default:
		fail("Unknown command: %s\n\n%s", command, usage)
	}
}

// fail prints an error to stderr, in red when stderr is a terminal, and exits
func fail(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		msg = "\x1b[31m" + strings.TrimRight(msg, "\n") + "\x1b[0m\n"
	}
	fmt.Fprint(os.Stderr, msg)
	os.Exit(1)
}

func handleEscape(args []string) {
	if len(args) == 0 {
		fail("Error: no identifiers specified\n")
	}
	for _, id := range args {
		fmt.Println(rename.Escape(id))
	}
}

func handleTable(args []string) {
	var configPath string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config":
			if i+1 >= len(args) {
				fail("Error: --config needs a file\n")
			}
			i++
			configPath = args[i]
		default:
			fail("Unknown option: %s\n", args[i])
		}
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fail("Error: %s\n", err)
	}
	table, err := cfg.NewTable()
	if err != nil {
		fail("Error: %s\n", err)
	}
	for _, e := range table.Entries() {
		fmt.Printf("%-10s %-12s -> %s\n", e.Namespace, e.Source, e.Target)
	}
}

func handleCheckConfig(args []string) {
	if len(args) == 0 {
		fail("Error: no configuration file specified\n")
	}
	cfg, err := config.Load(args[0])
	if err != nil {
		fail("Error: %s\n", err)
	}
	target, err := cfg.Target()
	if err != nil {
		fail("Error: %s\n", err)
	}
	fmt.Printf("%s: ok (target %s, %d rename(s), recover=%t)\n",
		args[0], target, len(cfg.Renames), cfg.Recover)
}

// loadConfig loads path, or the conventional file when path is empty and
// it exists, or the defaults
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if _, err := os.Stat(config.FileName); err != nil {
			return config.Default(), nil
		}
		path = config.FileName
	}
	return config.Load(path)
}
