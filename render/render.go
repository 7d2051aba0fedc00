package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/cssattr/component"
	"github.com/npillmayer/cssattr/resolve"
	"github.com/npillmayer/cssattr/scan"
	"github.com/npillmayer/cssattr/value"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultTag is the tag name of components not declaring one.
const DefaultTag = "div"

// ChildContent is implemented by components with child nodes.
type ChildContent interface {
	ChildContent() []*html.Node
}

// Element builds the HTML element for a component: the element carries the
// class and style attributes, the attribute bag and the attribute-bound
// properties, in this order, followed by the child content.
//
// Each call is a rendering pass and consumes the component's accumulators.
func Element(c component.Component) *html.Node {
	d := component.Describe(c)
	tag := DefaultTag
	if d != nil && d.Tag() != "" {
		tag = d.Tag()
	}
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	if class := component.BuildClass(c); class != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
	}
	if style := component.BuildStyle(c); style != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: style})
	}
	n.Attr = append(n.Attr, bag(c.Presentation().Attributes)...)
	n.Attr = append(n.Attr, bound(d, component.Values(c))...)
	if cc, ok := c.(ChildContent); ok {
		for _, ch := range cc.ChildContent() {
			if ch != nil {
				n.AppendChild(ch)
			}
		}
	}
	tracer().P("tag", tag).Debugf("render: element with %d attributes", len(n.Attr))
	return n
}

// bag passes the attribute bag through, sorted by key. Keys "class" and
// "style" have already been consumed by the build operations.
func bag(attrs map[string]any) []html.Attribute {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		if k == "class" || k == "style" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var r []html.Attribute
	for _, k := range keys {
		if v, ok := attributeValue(attrs[k]); ok {
			r = append(r, html.Attribute{Key: k, Val: v})
		}
	}
	return r
}

func bound(d *scan.Descriptor, values resolve.Accessor) []html.Attribute {
	if d == nil {
		return nil
	}
	var r []html.Attribute
	for _, a := range resolve.Attributes(scan.Scan(d)) {
		if v, ok := attributeValue(values.Lookup(a.Property)); ok {
			r = append(r, html.Attribute{Key: a.Name, Val: v})
		}
	}
	return r
}

// attributeValue renders a value as attribute value. Absent values and false
// drop the attribute, true renders as an empty (boolean) attribute.
func attributeValue(x any) (string, bool) {
	var (
		flag   bool
		member value.Member
		items  []string
		text   string
	)
	switch m := value.Of(x).Match(); m {
	case m.Null():
		return "", false
	case m.Bool(&flag):
		return "", flag
	case m.Enum(&member):
		return member.CSSToken(), true
	case m.Collection(&items):
		return strings.Join(items, " "), true
	case m.Scalar(&text):
		return text, true
	}
	return "", false
}

// Text creates a text node, to be used as child content.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// String renders a component as HTML markup.
func String(c component.Component) (string, error) {
	var b strings.Builder
	if err := html.Render(&b, Element(c)); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return b.String(), nil
}

// Matches renders a component and checks the element against a CSS
// selector.
func Matches(c component.Component, selector string) (bool, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return false, fmt.Errorf("render: %w", err)
	}
	return sel.Match(Element(c)), nil
}
