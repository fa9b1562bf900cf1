package cloud

import (
	"fmt"
	"html"
	"strings"
)

// DefaultStylesheet is the stylesheet linked from generated pages. Its
// classes f11 through f48 correspond to the sizes produced by DefaultScale.
const DefaultStylesheet = "http://cse.osu.edu/software/2231/web-sw2/assignments/projects/tag-cloud-generator/data/tagcloud.css"

// Renderer emits the tag cloud page. The zero value renders with
// DefaultScale, DefaultStylesheet and words inserted verbatim; set
// EscapeWords to HTML-escape words and the title instead.
type Renderer struct {
	Scale       Scale
	Stylesheet  string
	EscapeWords bool
}

// Render produces the complete HTML page for sub. title names the source
// document in the heading and count is the number of words the heading
// reports, already clamped by selection. Words appear in the subset's
// alphabetical order, each span carrying a font size class and an occurrence
// tooltip.
func (r Renderer) Render(sub *Subset, title string, count int) string {
	scale := r.Scale
	if scale.MaxFont == 0 {
		scale = DefaultScale
	}
	href := r.Stylesheet
	if href == "" {
		href = DefaultStylesheet
	}
	if r.EscapeWords {
		title = html.EscapeString(title)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<html><head><title>Top %d words in %s</title>"+
		"<link href=\"%s\" rel=\"stylesheet\" type=\"text/css\"></head>\n",
		count, title, href)
	fmt.Fprintf(&b, "<body><h2>Top %d words in %s</h2><hr></hr>\n", count, title)
	b.WriteString("<div class=\"cdiv\">\n")
	b.WriteString("<p class=\"cbox\">\n")
	for _, e := range sub.Entries {
		word := e.Word
		if r.EscapeWords {
			word = html.EscapeString(word)
		}
		size := scale.Size(e.Count, sub.MinCount, sub.MaxCount)
		fmt.Fprintf(&b, "<span style=\"cursor:default\" class=\"f%d\" title=\"count: %d\">%s</span>\n",
			size, e.Count, word)
	}
	b.WriteString("</p></div></body></html>\n")
	return b.String()
}
