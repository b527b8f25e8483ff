// Package richtext turns stored rich text into sanitized, read-only HTML.
//
// Input is either the HTML produced by the editor or Markdown. Markdown is
// converted first; both paths then go through the same whitelist sanitizer.
package richtext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/russross/blackfriday/v2"
	"golang.org/x/net/html"
)

// Format is the markup of the stored content
type Format string

const (
	FormatAuto     Format = "auto"
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// Document is a rendered preview
type Document struct {
	HTML  string `json:"html"`
	Text  string `json:"text"`
	Empty bool   `json:"empty"`
}

var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "hr": true, "li": true, "pre": true, "blockquote": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true, "tr": true,
}

// Render sanitizes src. An empty editor document such as "<p><br></p>"
// renders as Empty.
func Render(src string, format Format) (*Document, error) {
	if format == FormatAuto || format == "" {
		format = Detect(src)
	}

	markup := src
	switch format {
	case FormatMarkdown:
		markup = string(blackfriday.Run([]byte(src), blackfriday.WithExtensions(blackfriday.CommonExtensions)))
	case FormatHTML:
	default:
		return nil, fmt.Errorf("unknown rich text format %q", format)
	}

	root, err := sanitizeFragment(markup)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rich text: %w", err)
	}

	var buf bytes.Buffer
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return nil, fmt.Errorf("failed to render rich text: %w", err)
		}
	}

	text := plainText(root)
	return &Document{
		HTML:  strings.TrimSpace(buf.String()),
		Text:  text,
		Empty: text == "" && !hasMedia(root),
	}, nil
}

// Detect guesses the format: content starting with a tag is HTML.
func Detect(src string) Format {
	trimmed := strings.TrimSpace(src)
	if strings.HasPrefix(trimmed, "<") && strings.Contains(trimmed, ">") {
		return FormatHTML
	}
	return FormatMarkdown
}

func plainText(root *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(n.Data)
		case html.ElementNode:
			if blockTags[n.Data] {
				sb.WriteByte('\n')
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
			if blockTags[n.Data] {
				sb.WriteByte('\n')
			}
		}
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}

	lines := strings.Split(sb.String(), "\n")
	out := lines[:0]
	for _, line := range lines {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

func hasMedia(n *html.Node) bool {
	if n.Type == html.ElementNode && (n.Data == "img" || n.Data == "iframe") {
		return true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if hasMedia(c) {
			return true
		}
	}
	return false
}
