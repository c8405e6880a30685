// Package export builds the artifacts the shell can save: the visible plain
// text of the wrapped page and a paginated PDF rendition of it. Everything
// here is pure so the command actions can be tested without a webview.
package export

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// elements whose contents are never visible text.
var skipElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"head":     true,
	"svg":      true,
}

// elements that terminate a line of visible text.
var blockElements = map[string]bool{
	"p": true, "div": true, "li": true, "tr": true, "br": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"pre": true, "blockquote": true, "section": true, "article": true,
	"header": true, "footer": true, "ul": true, "ol": true, "table": true,
}

// VisibleText extracts the rendered document's visible plain text. An empty
// or text-free document yields "", not an error.
func VisibleText(pageHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return "", fmt.Errorf("parse document: %w", err)
	}

	body := doc.Find("body")
	if body.Length() == 0 {
		return "", nil
	}

	w := &textWriter{}
	for _, node := range body.Nodes {
		w.walk(node)
	}
	return collapseBlankLines(w.b.String()), nil
}

// textWriter accumulates visible text, separating inline runs with single
// spaces and block elements with newlines.
type textWriter struct {
	b       strings.Builder
	atStart bool
}

func (w *textWriter) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		if text := strings.Join(strings.Fields(n.Data), " "); text != "" {
			if w.b.Len() > 0 && !w.atStart {
				w.b.WriteByte(' ')
			}
			w.b.WriteString(text)
			w.atStart = false
		}
		return
	case html.ElementNode:
		if skipElements[n.Data] {
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}

	if n.Type == html.ElementNode && blockElements[n.Data] {
		if w.b.Len() > 0 && !w.atStart {
			w.b.WriteByte('\n')
			w.atStart = true
		}
	}
}

func collapseBlankLines(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
