/*
Package main implements the grammar expansion server and CLI [DBG] application.

bnfgen expands condensed grammar rules — mandatory alternation groups,
optional spans, pipe-separated alternatives — into the exhaustive set of
literal training sentences they denote for a target natural language. It can
operate as a MessagePack IPC server for integration with data pipelines, or
as a CLI application for testing and debugging rules by hand.

Rules mix literal words with three constructs:

	(a|b)     mandatory: exactly one of the alternatives
	[c|d]     optional: absent, or one of the alternatives
	a|b       bare top-level alternation

Placeholder tokens such as <city> pass through as ordinary word content, so
downstream slot-filling stages can substitute them later.

# Usage

Start the server with default settings:

	bnfgen

Enable debug mode with detailed logging:

	bnfgen -d

Run in CLI mode for interactive testing:

	bnfgen -c -lang de

Validate rules without expanding them:

	bnfgen -c -check

# Configuration

Runtime configuration is managed through a TOML file that supports expansion
parameters, server limits, CLI defaults and custom language alphabets:

	[expand]
	max_rounds = 64
	index_results = true

	[server]
	max_rules = 32
	max_rule_len = 512
	default_limit = 64

	[languages]
	sv = "[A-Za-zÅÄÖåäö0-9'_<>\\-\\s]"

The config file is automatically created with defaults if it doesn't exist.
Custom [languages] entries are registered at startup; a class that cannot
match a space is rejected, since multi-word sentences would otherwise never
reach word-only status.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Expansion
requests are processed synchronously with microsecond timing information
included in responses.

Send an expansion request:

	{"id": "req1", "r": ["(hi|hello) [there]"], "lang": "en"}

Receive the sorted, deduplicated sentences:

	{"id": "req1", "s": ["hello", "hello there", "hi", "hi there"], "c": 4, "t": 145}

Validation and index search actions are also available:

	{"id": "v1", "action": "validate", "r": ["(a|b]"]}
	{"id": "s1", "action": "search", "p": "hello", "l": 10}

# Expansion Engine

The core functionality is provided by the grammar package, which implements
the round-based three-phase expansion to a word-only fixed point.

	expander := grammar.NewExpander(grammar.Options{MaxRounds: 64})
	sentences, err := expander.Expand(rules, "en")

All failures are fail-closed: unsupported language, empty input, a malformed
rule anywhere in a batch, or an expansion that does not settle within the
round cap all produce an empty result and a sentinel error.

# Command Line Flags

The following flags control application behavior:

	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-lang string
	    Target language for CLI mode (default from config)
	-rounds int
	    Maximum expansion rounds (default from config)
	-check
	    CLI mode: only validate rules, do not expand
	-config string
	    Custom config file path
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnfgen/bnfgen/internal/cli"
	"github.com/bnfgen/bnfgen/pkg/config"
	"github.com/bnfgen/bnfgen/pkg/grammar"
	"github.com/bnfgen/bnfgen/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "bnfgen"
	gh      = "https://github.com/bnfgen/bnfgen"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	langFlag := flag.String("lang", "", "Target language for CLI mode")
	rounds := flag.Int("rounds", 0, "Maximum expansion rounds (0 uses the config value)")
	checkOnly := flag.Bool("check", false, "CLI mode: only validate rules, do not expand")
	configPath := flag.String("config", "", "Custom config file path")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, loadedPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
		os.Exit(1)
	}
	if loadedPath != "" {
		log.Debugf("Using config file: (%s)", loadedPath)
	}
	config.RegisterLanguages(appConfig)

	maxRounds := appConfig.Expand.MaxRounds
	if *rounds > 0 {
		maxRounds = *rounds
	}
	expander := grammar.NewExpander(grammar.Options{MaxRounds: maxRounds})

	// CLI would be mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)

		lang := *langFlag
		if lang == "" {
			lang = appConfig.CLI.DefaultLang
		}
		log.Debug("Input info:",
			"lang", lang,
			"maxRounds", maxRounds,
			"checkOnly", *checkOnly)

		inputHandler := cli.NewInputHandler(expander, lang, appConfig.CLI.MaxRuleLen, *checkOnly)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
			os.Exit(1)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(expander, appConfig)

	showStartupInfo()

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// printVersion displays the styled version banner.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()

	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ bnfgen ] Expands grammar rules into training sentences!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo() {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
