// Copyright 2025 The TagCloud Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the tag cloud IPC server.

CloudServe builds word frequency tag clouds over raw document text sent by
clients. Text is split on a fixed separator alphabet, counted
case-insensitively, and the most frequent words come back alphabetized with
font sizes interpolated between the configured bounds. Clients can also ask
for the fully rendered HTML page.

The server is designed for integration with editors and document tooling
through process communication: it speaks MessagePack over stdin/stdout and
processes requests synchronously.

# Usage

Start the server with default settings:

	cloudserve

Use a custom config file and enable debug mode:

	cloudserve -config /path/to/config.toml -d

# Configuration

Runtime configuration is managed through a TOML file that supports pipeline,
rendering and server parameters:

	[cloud]
	default_count = 100

	[render]
	min_font = 11
	max_font = 48

	[server]
	max_count = 10000
	max_text_bytes = 10485760

The config file is automatically created with defaults if it doesn't exist.
TAGCLOUD_* environment variables (optionally from a .env file) override file
values at startup.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Cloud requests are
processed synchronously with microsecond timing information included in
responses.

Send a cloud request:

	{"id": "req1", "t": "the cat the dog the cat", "n": "pets.txt", "c": 10}

Receive the alphabetized subset with counts and font sizes:

	{"id": "req1", "e": [{"w": "cat", "c": 2, "f": 11}, {"w": "the", "c": 3, "f": 48}], "c": 2, "lo": 2, "hi": 3, "t": 145}

Vocabulary queries report table statistics without running selection, and
limit requests allow runtime adjustment of server parameters:

	{"id": "voc1", "action": "vocab", "t": "..."}
	{"id": "lim1", "action": "set_limits", "max_count": 64}

# Server Mode

The server reads one request frame at a time, validates it against the
configured limits, and writes exactly one response frame. Oversized text is
rejected with code 413 before tokenization, negative counts with code 400.
An EOF on stdin shuts the server down cleanly.

	srv := server.NewServer(generator, cfg, configPath)
	err := srv.Start()

# Pipeline

The core functionality is provided by the cloud package, which runs
tokenization, counting, selection and rendering as one pipeline.

	generator := cloud.NewGenerator(cfg.GeneratorOptions()...)
	page, err := generator.Generate(text, "report.txt", 100)

Frequency tables also maintain a patricia trie over the vocabulary, which
serves the prefix queries exposed by the "prefix" action.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Lehman3D/Tag-Cloud-Generator/internal/logger"
	"github.com/Lehman3D/Tag-Cloud-Generator/pkg/cloud"
	"github.com/Lehman3D/Tag-Cloud-Generator/pkg/config"
	"github.com/Lehman3D/Tag-Cloud-Generator/pkg/server"
)

const (
	Version = "1.2.0"
	AppName = "cloudserve"
	gh      = "https://github.com/Lehman3D/Tag-Cloud-Generator"
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

// main calls other packages to initialize the server.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	configPath := flag.String("config", "", "Path to config.toml")

	flag.Parse()

	if *showVersion {
		versionInfo()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetDefault(logger.New(AppName))
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, activePath, err := config.LoadWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	generator := cloud.NewGenerator(cfg.GeneratorOptions()...)
	srv := server.NewServer(generator, cfg, activePath)

	showStartupInfo(config.GetActiveConfigPath(activePath), generator)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(configPath string, generator cloud.IGenerator) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===========")
	println(" CloudServe ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("config: ( %s )", configPath)
	log.Infof("separators: %d bytes", len(generator.Separators().Alphabet()))
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}

// versionInfo displays version with some styling.
func versionInfo() {
	vlog := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()

	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})

	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	vlog.SetStyles(styles)

	vlog.Print("")
	vlog.Print("[ CloudServe ] Serves tag clouds over msgpack IPC!")
	vlog.Print("", "version", Version)
	vlog.Print("")
	vlog.Print("use -h or --help to see available options")
	vlog.Print("Github Repo", "gh", gh)
}
