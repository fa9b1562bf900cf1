// Package cli implements the interactive prompt flow for building tag clouds
// without remembering flag names.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Lehman3D/Tag-Cloud-Generator/internal/utils"
	"github.com/Lehman3D/Tag-Cloud-Generator/pkg/cloud"
	"github.com/Lehman3D/Tag-Cloud-Generator/pkg/document"
)

// Prompter walks the user through source file, word count and output
// location, then generates and writes the page.
type Prompter struct {
	generator    cloud.IGenerator
	reader       *bufio.Reader
	defaultCount int
	progress     bool
}

// NewPrompter handles initialization of the Prompter with basic parameters
func NewPrompter(generator cloud.IGenerator, defaultCount int, progress bool) *Prompter {
	return NewPrompterIO(generator, defaultCount, progress, os.Stdin)
}

// NewPrompterIO is NewPrompter with an explicit input stream, used by tests.
func NewPrompterIO(generator cloud.IGenerator, defaultCount int, progress bool, in io.Reader) *Prompter {
	return &Prompter{
		generator:    generator,
		reader:       bufio.NewReader(in),
		defaultCount: defaultCount,
		progress:     progress,
	}
}

// Run executes one full prompt cycle. Unreadable files and invalid counts
// re-prompt; only input stream errors abort the cycle.
func (p *Prompter) Run() error {
	log.Print("TagCloud interactive mode")
	log.Print("answer the prompts to build a cloud (Ctrl+C to exit):")

	doc, err := p.askDocument()
	if err != nil {
		return err
	}
	count, err := p.askCount()
	if err != nil {
		return err
	}
	outName, err := p.ask("Name of the output HTML file: ")
	if err != nil {
		return err
	}
	outDir, err := p.ask("Folder to write it to: ")
	if err != nil {
		return err
	}

	start := time.Now()
	sub, err := p.generator.Subset(doc.Text, count)
	if err != nil {
		return err
	}
	markup := p.generator.Render(sub, doc.Title, len(sub.Entries))
	log.Debugf("Took [ %v ] for %q", time.Since(start), doc.Title)

	written, err := document.WriteHTML(outDir, outName, markup)
	if err != nil {
		return err
	}

	p.showEntries(sub)
	log.Printf("Wrote %s", written)
	return nil
}

// askDocument re-prompts until a readable source file is given
func (p *Prompter) askDocument() (document.Document, error) {
	for {
		path, err := p.ask("Path of the source text file: ")
		if err != nil {
			return document.Document{}, err
		}
		var opts []document.ReadOption
		if p.progress {
			opts = append(opts, document.WithProgress())
		}
		doc, err := document.Read(path, opts...)
		if err != nil {
			log.Errorf("Cannot read %s: %v", path, err)
			continue
		}
		return doc, nil
	}
}

// askCount re-prompts until a non-negative integer is read. An empty entry
// picks the configured default.
func (p *Prompter) askCount() (int, error) {
	prompt := fmt.Sprintf("How many words should the cloud show? [%d] ", p.defaultCount)
	for {
		raw, err := p.askAllowEmpty(prompt)
		if err != nil {
			return 0, err
		}
		if raw == "" {
			return p.defaultCount, nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			log.Errorf("Not a number: %s", raw)
			continue
		}
		if n < 0 {
			log.Errorf("Count must be non-negative: %d", n)
			continue
		}
		return n, nil
	}
}

// ask re-prompts until a non-empty answer is read
func (p *Prompter) ask(prompt string) (string, error) {
	for {
		answer, err := p.askAllowEmpty(prompt)
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
	}
}

func (p *Prompter) askAllowEmpty(prompt string) (string, error) {
	log.Print(prompt)
	answer, err := p.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// showEntries pretty prints the selected words with their counts
func (p *Prompter) showEntries(sub *cloud.Subset) {
	if len(sub.Entries) == 0 {
		log.Warnf("No words found in the document")
		return
	}
	scale := p.generator.Scale()
	log.Printf("Selected %d words (counts %s..%s):", len(sub.Entries),
		utils.FormatWithCommas(sub.MinCount), utils.FormatWithCommas(sub.MaxCount))
	for i, e := range sub.Entries {
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", e.Word)
		log.Printf("%2d. %-40s (count: %8s, font: %d)", i+1, clWord,
			utils.FormatWithCommas(e.Count), scale.Size(e.Count, sub.MinCount, sub.MaxCount))
	}
}
