// Command tagcloud builds an HTML tag cloud from a text file: the n most
// frequent words, alphabetized, sized by occurrence count. Without a source
// argument it walks the user through the inputs interactively.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Lehman3D/Tag-Cloud-Generator/internal/cli"
	"github.com/Lehman3D/Tag-Cloud-Generator/internal/logger"
	"github.com/Lehman3D/Tag-Cloud-Generator/pkg/cloud"
	"github.com/Lehman3D/Tag-Cloud-Generator/pkg/config"
	"github.com/Lehman3D/Tag-Cloud-Generator/pkg/document"
)

const (
	Version = "1.2.0"
	AppName = "tagcloud"
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

// main wires flags, config and the pipeline; the packages do the work.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	interactive := flag.Bool("i", false, "Prompt for inputs even when a source file is given")
	count := flag.Int("n", 0, "Number of words in the cloud (default from config)")
	outFile := flag.String("o", "", "Output HTML file name (default: <source>.html)")
	outDir := flag.String("dir", ".", "Folder to write the output file to")
	title := flag.String("title", "", "Heading title (default: source file name)")
	stylesheet := flag.String("css", "", "Stylesheet href to link (default from config)")
	escape := flag.Bool("escape", false, "HTML-escape words and title in the output")
	progress := flag.Bool("progress", false, "Show a progress bar while reading the source")
	initConfig := flag.Bool("init-config", false, "Write a fresh default config.toml and exit")
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

	if *initConfig {
		if err := config.RebuildConfigFile(); err != nil {
			log.Fatalf("Failed to write default config: %v", err)
		}
		log.Printf("Wrote default config to %s", config.GetActiveConfigPath(""))
		os.Exit(0)
	}

	cfg, activePath, err := config.LoadWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.ApplyEnv()

	visited := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { visited[f.Name] = true })
	if *stylesheet != "" {
		cfg.Render.Stylesheet = *stylesheet
	}
	if visited["escape"] {
		cfg.Render.EscapeWords = *escape
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	log.Debugf("Using config: %s", config.GetActiveConfigPath(activePath))

	generator := cloud.NewGenerator(cfg.GeneratorOptions()...)

	if *interactive || flag.NArg() == 0 {
		prompter := cli.NewPrompter(generator, cfg.Cloud.DefaultCount, *progress)
		if err := prompter.Run(); err != nil {
			log.Fatalf("Interactive mode error: %v", err)
		}
		return
	}

	n := cfg.Cloud.DefaultCount
	if visited["n"] {
		n = *count
	}

	source := flag.Arg(0)
	var readOpts []document.ReadOption
	if *progress {
		readOpts = append(readOpts, document.WithProgress())
	}
	doc, err := document.Read(source, readOpts...)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", source, err)
	}

	pageTitle := *title
	if pageTitle == "" {
		pageTitle = doc.Title
	}

	sub, err := generator.Subset(doc.Text, n)
	if err != nil {
		if errors.Is(err, cloud.ErrNegativeCount) {
			log.Fatalf("Invalid count %d: must be non-negative", n)
		}
		log.Fatalf("Failed to build cloud: %v", err)
	}
	markup := generator.Render(sub, pageTitle, len(sub.Entries))

	name := *outFile
	if name == "" {
		name = strings.TrimSuffix(doc.Title, filepath.Ext(doc.Title)) + ".html"
	}
	written, err := document.WriteHTML(*outDir, name, markup)
	if err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	log.Printf("Wrote %d words to %s", len(sub.Entries), written)
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
	vlog.Print("[ TagCloud ] Builds word frequency tag clouds!")
	vlog.Print("", "version", Version)
	vlog.Print("")
	vlog.Print("use -h or --help to see available options")
	vlog.Print("Github Repo", "gh", gh)
}
