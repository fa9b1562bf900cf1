// Package cloud is the core, turning raw document text into a ranked,
// font-scaled tag cloud and rendering it as an HTML page.
package cloud

import (
	"github.com/Lehman3D/Tag-Cloud-Generator/pkg/tokenize"
)

// IGenerator is the pipeline surface consumed by the CLI and IPC layers.
type IGenerator interface {
	// Generate runs the full pipeline over text and returns the page markup.
	Generate(text, title string, n int) (string, error)
	// Subset runs the pipeline up to selection.
	Subset(text string, n int) (*Subset, error)
	// Render produces the page for an already selected subset.
	Render(sub *Subset, title string, count int) string
	// Scale exposes the font mapping used for rendering.
	Scale() Scale
	// Separators exposes the tokenization alphabet.
	Separators() *tokenize.SeparatorSet
}
