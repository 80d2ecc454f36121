// Scoundrel is a single-player dungeon crawl played with a 44-card deck.
// Usage: scoundrel [--version] [--plain] [--script <file>] [--trace]
//
//	[--seed <n>] [--max-hp <n>] [--log <file>] [--debug] [settings]
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nathoo/scoundrel/cli"
	"github.com/nathoo/scoundrel/engine"
	"github.com/nathoo/scoundrel/loader"
	"github.com/nathoo/scoundrel/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usage = "Usage: scoundrel [--version] [--plain] [--script <file>] [--trace] " +
	"[--seed <n>] [--max-hp <n>] [--log <file>] [--debug] [settings]"

func main() {
	plain := false
	trace := false
	debug := false
	var configPath, scriptFile, logFile string
	var seed int64
	var maxHP int
	seedSet := false

	args := os.Args[1:]
	// value returns the argument following flag i.
	value := func(i int) string {
		if i+1 >= len(args) {
			fmt.Fprintf(os.Stderr, "%s requires a value\n%s\n", args[i], usage)
			os.Exit(1)
		}
		return args[i+1]
	}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("scoundrel %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--trace":
			trace = true
		case "--debug":
			debug = true
		case "--script":
			scriptFile = value(i)
			i++
		case "--log":
			logFile = value(i)
			i++
		case "--config":
			configPath = value(i)
			i++
		case "--seed":
			n, err := strconv.ParseInt(value(i), 10, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "--seed must be an integer: %v\n", err)
				os.Exit(1)
			}
			seed, seedSet = n, true
			i++
		case "--max-hp":
			n, err := strconv.Atoi(value(i))
			if err != nil || n <= 0 {
				fmt.Fprintf(os.Stderr, "--max-hp must be a positive integer\n")
				os.Exit(1)
			}
			maxHP = n
			i++
		default:
			if configPath == "" {
				configPath = args[i]
			}
		}
	}

	settings := loader.Default()
	if configPath != "" {
		var err error
		settings, err = loader.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
			os.Exit(1)
		}
	}
	if maxHP > 0 {
		settings.MaxHP = maxHP
	}
	if seedSet {
		settings.Seed = seed
	}
	if settings.Seed == 0 {
		settings.Seed = time.Now().UnixNano()
	}

	var opts []engine.Option
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()

		log := logrus.New()
		log.SetOutput(f)
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
		if debug {
			log.SetLevel(logrus.DebugLevel)
		}
		log.WithFields(logrus.Fields{"version": version, "seed": settings.Seed}).Info("scoundrel starting")
		opts = append(opts, engine.WithLogger(log))
	}

	eng := engine.New(*settings, opts...)

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		c := cli.New(eng)
		c.In = f
		c.EchoInput = true
		c.Trace = trace
		c.Run()
		return
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if plain || !isTerminal() {
		c := cli.New(eng)
		c.Trace = trace
		c.Run()
		return
	}

	if err := tui.Run(eng); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
