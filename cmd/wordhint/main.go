// Copyright 2025 The WordHint Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordhint helper for the "5 букв" word game.

WordHint filters a five-letter dictionary by what is known about the hidden
word (letters pinned to positions, letters present somewhere, letters absent)
and recommends the next guess that best splits the remaining candidates.

# Usage

One-shot filtering:

	wordhint -known "м_тр_" -present "о" -absent "узк"

Guided interactive play:

	wordhint -i

Letter statistics and a suggestion for the current state:

	wordhint -known "_а___" -stats -suggest

Compile the text dictionary into a msgpack snapshot for faster startup:

	wordhint -dict dictionary.txt -compile dictionary.bin

The dictionary source is one word per line; only words of the configured
length qualify. A ".bin" source is treated as a compiled snapshot.

# Configuration

Runtime configuration lives in a TOML file, created with defaults on first
run at ~/.config/wordhint/config.toml:

	[dict]
	path = "dictionary.txt"
	word_length = 5

	[filter]
	sort_by_frequency = true

	[suggest]
	starters = ["адрес", "стена", "рейка", "тоска", "ление", "окрас"]

	[cli]
	validation_policy = "relaxed"

The relaxed validation policy allows a letter to be both pinned at a position
and required elsewhere, which is how duplicate letters are tracked. Set
"strict" to reject that overlap as earlier revisions of the helper did.

# Interactive mode

Each round shows the surviving candidates and a recommended guess, then reads
feedback in the game's mark notation: a '+', '?' or '-' before each letter,
five pairs total ("+м?о-т+р-а"). A bare mark string applies to the last
suggested word. Unparseable input re-prompts; "reset" (сброс) starts over and
"quit" (выход) leaves the session.

# Command Line Flags

	-known string
	    Letters at known positions, '_' for unknown slots (default "_____")
	-present string
	    Letters present in the word at unknown positions
	-absent string
	    Letters absent from the word
	-limit int
	    Maximum number of results (0 for all)
	-no-sort
	    Disable frequency ranking
	-stats
	    Show letter statistics for the result
	-suggest
	    Recommend a next guess for the result
	-i  Interactive guided mode
	-dict string
	    Dictionary path (overrides config)
	-compile string
	    Write the loaded dictionary as a msgpack snapshot and exit
	-config string
	    Custom config file path
	-d  Enable debug logging
	-version
	    Show version
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wordhint/internal/cli"
	"wordhint/pkg/config"
	"wordhint/pkg/constraint"
	"wordhint/pkg/dictionary"
	"wordhint/pkg/filter"
	"wordhint/pkg/solver"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const Version = "2.0.0"

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

// main wires config, dictionary and mode dispatch; the filtering and
// suggestion logic lives in the pkg packages.
func main() {
	sigHandler()

	known := flag.String("known", "", "Letters at known positions, '_' for unknown slots")
	present := flag.String("present", "", "Letters present in the word at unknown positions")
	absent := flag.String("absent", "", "Letters absent from the word")
	limit := flag.Int("limit", -1, "Maximum number of results (0 for all)")
	noSort := flag.Bool("no-sort", false, "Disable frequency ranking")
	showStats := flag.Bool("stats", false, "Show letter statistics for the result")
	doSuggest := flag.Bool("suggest", false, "Recommend a next guess for the result")
	interactive := flag.Bool("i", false, "Interactive guided mode")
	dictPath := flag.String("dict", "", "Dictionary path (overrides config)")
	compileOut := flag.String("compile", "", "Write the loaded dictionary as a msgpack snapshot and exit")
	configPath := flag.String("config", "", "Custom config file path")
	debugMode := flag.Bool("d", false, "Enable debug logging")
	showVersion := flag.Bool("version", false, "Show version")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.InfoLevel)
		log.SetReportTimestamp(false)
	}

	cfg, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Active config: %s", config.GetActiveConfigPath(activePath))

	source := cfg.Dict.Path
	if *dictPath != "" {
		source = *dictPath
	}
	dict, err := dictionary.Load(source, cfg.Dict.WordLength)
	if err != nil {
		var dictErr *dictionary.Error
		if errors.As(err, &dictErr) {
			log.Fatalf("%v", dictErr)
		}
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	log.Debugf("Dictionary ready: %d words of length %d", dict.Len(), dict.WordLength())

	if *compileOut != "" {
		if err := dict.Compile(*compileOut); err != nil {
			log.Fatalf("Compile failed: %v", err)
		}
		log.Printf("Compiled %d words into %s", dict.Len(), *compileOut)
		return
	}

	if *interactive {
		session := cli.NewSession(dict, cfg, solver.SystemRand())
		if err := session.Start(); err != nil {
			log.Fatalf("Interactive session error: %v", err)
		}
		return
	}

	runOneShot(dict, cfg, oneShotArgs{
		known:     *known,
		present:   *present,
		absent:    *absent,
		limit:     *limit,
		noSort:    *noSort,
		showStats: *showStats,
		doSuggest: *doSuggest,
	})
}

type oneShotArgs struct {
	known, present, absent string
	limit                  int
	noSort                 bool
	showStats              bool
	doSuggest              bool
}

// runOneShot validates the constraint flags, filters once and renders the
// requested views. Validation failures are user errors, not crashes.
func runOneShot(dict *dictionary.Dictionary, cfg *config.Config, args oneShotArgs) {
	policy, err := constraint.ParsePolicy(cfg.CLI.ValidationPolicy)
	if err != nil {
		log.Warnf("%v; falling back to relaxed", err)
	}
	alphabet := constraint.NewAlphabet(cfg.Dict.Alphabet)

	known := args.known
	if known == "" {
		known = constraint.Empty(dict.WordLength()).FixedString()
	}

	cons, err := constraint.Parse(known, args.present, args.absent, dict.WordLength(), alphabet, policy)
	if err != nil {
		var vErr *constraint.ValidationError
		if errors.As(err, &vErr) {
			log.Errorf("Invalid constraints: %v", vErr)
			os.Exit(1)
		}
		log.Fatalf("Constraint error: %v", err)
	}

	limit := cfg.Filter.DefaultLimit
	if args.limit >= 0 {
		limit = args.limit
	}
	limited := limit > 0

	words, stats := filter.Filter(dict, cons, filter.Options{
		Ranker: filter.DefaultRanker(),
		Sort:   cfg.Filter.SortByFrequency && !args.noSort,
		Limit:  limit,
	})

	cli.PrintResults(words, stats, limited)

	if args.showStats && len(words) > 0 {
		cli.PrintLetterStats(filter.ComputeLetterStats(words), 10)
	}
	if args.doSuggest {
		suggester := solver.NewSuggester(dict, cfg.Suggest.Starters, solver.SystemRand())
		suggester.SetPoolSizes(cfg.Suggest.PoolTop, cfg.Suggest.PoolExtra)
		cli.PrintSuggestion(suggester.Suggest(words, cons))
	}
}

// printVersion renders the styled version banner.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("[ WordHint ] helper for the 5-letter word game")
	logger.Print("", "version", Version)
	logger.Print("use -h or --help to see available options")
}
