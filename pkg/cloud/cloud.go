package cloud

import (
	"github.com/charmbracelet/log"

	"github.com/Lehman3D/Tag-Cloud-Generator/pkg/freq"
	"github.com/Lehman3D/Tag-Cloud-Generator/pkg/tokenize"
)

// Generator runs the full pipeline: tokenize, count, select, scale, render.
// It holds no per-document state, so one Generator can serve any number of
// texts sequentially.
type Generator struct {
	seps     *tokenize.SeparatorSet
	renderer Renderer
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeparators replaces the tokenization alphabet.
func WithSeparators(seps *tokenize.SeparatorSet) Option {
	return func(g *Generator) {
		if seps != nil {
			g.seps = seps
		}
	}
}

// WithScale replaces the font size range.
func WithScale(scale Scale) Option {
	return func(g *Generator) { g.renderer.Scale = scale }
}

// WithStylesheet replaces the linked stylesheet href.
func WithStylesheet(href string) Option {
	return func(g *Generator) {
		if href != "" {
			g.renderer.Stylesheet = href
		}
	}
}

// WithEscaping toggles HTML-escaping of words and title in the output.
func WithEscaping(on bool) Option {
	return func(g *Generator) { g.renderer.EscapeWords = on }
}

// NewGenerator returns a Generator with the default alphabet, scale and
// stylesheet, adjusted by opts.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		seps: tokenize.DefaultSeparators(),
		renderer: Renderer{
			Scale:      DefaultScale,
			Stylesheet: DefaultStylesheet,
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate renders the tag cloud page for text: its n most frequent words,
// alphabetized, with font sizes keyed to counts. title names the document in
// the page heading. A negative n returns ErrNegativeCount and no markup.
func (g *Generator) Generate(text, title string, n int) (string, error) {
	sub, err := g.Subset(text, n)
	if err != nil {
		return "", err
	}
	return g.renderer.Render(sub, title, len(sub.Entries)), nil
}

// Subset runs the pipeline up to selection, returning the alphabetized top-n
// entries together with their count bounds.
func (g *Generator) Subset(text string, n int) (*Subset, error) {
	table := freq.Build(text, g.seps)
	sub, err := Select(table, n)
	if err != nil {
		return nil, err
	}
	log.Debugf("selected %d of %d words (counts %d..%d)",
		len(sub.Entries), table.Len(), sub.MinCount, sub.MaxCount)
	return sub, nil
}

// Render produces the page markup for an already selected subset.
func (g *Generator) Render(sub *Subset, title string, count int) string {
	return g.renderer.Render(sub, title, count)
}

// Scale returns the font mapping the Generator renders with.
func (g *Generator) Scale() Scale {
	return g.renderer.Scale
}

// Separators returns the tokenization alphabet the Generator scans with.
func (g *Generator) Separators() *tokenize.SeparatorSet {
	return g.seps
}
