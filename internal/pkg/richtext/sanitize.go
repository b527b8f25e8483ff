package richtext

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Tags whose content is removed along with the tag
var droppedTags = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true,
	"object": true, "embed": true, "applet": true, "frame": true, "frameset": true,
	"textarea": true, "select": true, "button": true, "input": true, "form": true,
	"head": true, "title": true, "meta": true, "link": true, "base": true, "svg": true, "math": true,
}

// allowedTags maps every kept tag to its allowed attributes. Tags not listed
// here and not dropped are unwrapped: their children are kept.
var allowedTags = map[string][]string{
	"p": {"class"}, "br": nil, "hr": nil, "div": {"class"}, "span": {"class"},
	"strong": nil, "b": nil, "em": nil, "i": nil, "u": nil, "s": nil, "strike": nil, "del": nil,
	"sub": nil, "sup": nil, "code": nil, "pre": {"class"}, "blockquote": {"class"},
	"h1": {"class"}, "h2": {"class"}, "h3": {"class"}, "h4": {"class"}, "h5": {"class"}, "h6": {"class"},
	"ol": {"class"}, "ul": {"class"}, "li": {"class", "data-list"},
	"table": nil, "thead": nil, "tbody": nil, "tr": nil, "th": nil, "td": nil,
	"a":      {"href", "target", "rel", "title"},
	"img":    {"src", "alt", "title", "width", "height"},
	"iframe": {"src", "class", "allowfullscreen", "frameborder"},
}

var urlAttrs = map[string]bool{"href": true, "src": true}

var dataImagePrefixes = []string{"data:image/png;", "data:image/jpeg;", "data:image/gif;", "data:image/webp;"}

// sanitizeFragment parses src as the content of a <body> and returns a copy of
// the tree that only holds whitelisted tags and attributes.
func sanitizeFragment(src string) (*html.Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(src), context)
	if err != nil {
		return nil, err
	}

	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	for _, n := range nodes {
		appendClean(root, n)
	}
	return root, nil
}

func appendClean(dst, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		dst.AppendChild(&html.Node{Type: html.TextNode, Data: n.Data})

	case html.ElementNode:
		tag := strings.ToLower(n.Data)
		if droppedTags[tag] {
			return
		}

		allowed, ok := allowedTags[tag]
		if !ok {
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				appendClean(dst, c)
			}
			return
		}

		el := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
		el.Attr = cleanAttrs(tag, n.Attr, allowed)
		if (tag == "img" || tag == "iframe") && !hasAttr(el, "src") {
			return
		}
		dst.AppendChild(el)

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			appendClean(el, c)
		}
	}
}

func cleanAttrs(tag string, attrs []html.Attribute, allowed []string) []html.Attribute {
	out := make([]html.Attribute, 0, len(attrs))
	blankTarget := false

	for _, a := range attrs {
		key := strings.ToLower(a.Key)
		if a.Namespace != "" || !contains(allowed, key) {
			continue
		}
		if urlAttrs[key] && !safeURL(tag, a.Val) {
			continue
		}
		if tag == "a" && key == "rel" {
			continue
		}
		if tag == "a" && key == "target" {
			if a.Val != "_blank" {
				continue
			}
			blankTarget = true
		}
		out = append(out, html.Attribute{Key: key, Val: a.Val})
	}

	if blankTarget {
		out = append(out, html.Attribute{Key: "rel", Val: "noopener noreferrer"})
	}
	return out
}

// safeURL accepts relative URLs, http(s) and mailto links. Images may also be
// inline data URLs; iframes must be https.
func safeURL(tag, raw string) bool {
	v := strings.ToLower(strings.TrimSpace(raw))
	v = strings.Map(func(r rune) rune {
		if r < ' ' {
			return -1
		}
		return r
	}, v)
	if v == "" {
		return false
	}

	if tag == "iframe" {
		return strings.HasPrefix(v, "https://")
	}
	if tag == "img" {
		for _, p := range dataImagePrefixes {
			if strings.HasPrefix(v, p) {
				return true
			}
		}
	}

	colon := strings.IndexByte(v, ':')
	if colon < 0 {
		return true
	}
	// a colon after the first slash, ? or # is part of the path
	if i := strings.IndexAny(v, "/?#"); i >= 0 && i < colon {
		return true
	}

	switch v[:colon] {
	case "http", "https", "mailto":
		return true
	}
	return false
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
