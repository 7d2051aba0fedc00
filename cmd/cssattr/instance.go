package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cssattr/component"
	"github.com/npillmayer/cssattr/compose"
	"github.com/npillmayer/cssattr/render"
	"github.com/npillmayer/cssattr/ruleset"
	"github.com/npillmayer/cssattr/style"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
)

// instanceOptions are the flags shared by the commands which build a
// component instance.
type instanceOptions struct {
	component string
	set       []string
	attrs     []string
	class     string
	addClass  string
	style     string
	addStyle  string
	text      string
}

func (opts *instanceOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&opts.component, "component", "c", "", "Name of the component")
	cmd.Flags().StringArrayVarP(&opts.set, "set", "s", nil, "Set a parameter, as Property=value")
	cmd.Flags().StringArrayVar(&opts.attrs, "attr", nil, "Add an HTML attribute, as name=value")
	cmd.Flags().StringVar(&opts.class, "class", "", "Replace the computed class attribute")
	cmd.Flags().StringVar(&opts.addClass, "add-class", "", "Append classes to the computed class attribute")
	cmd.Flags().StringVar(&opts.style, "style", "", "Replace the computed style attribute")
	cmd.Flags().StringVar(&opts.addStyle, "add-style", "", "Merge style entries into the computed style attribute")
	_ = cmd.MarkFlagRequired("component")
}

// element is a component instance created from a rule set.
type element struct {
	*component.Base
	text string
}

func (e *element) ChildContent() []*html.Node {
	if e.text == "" {
		return nil
	}
	return []*html.Node{render.Text(e.text)}
}

func newElement(flags *rootFlags, opts *instanceOptions) (*element, error) {
	reg, err := ruleset.LoadFile(flags.rules)
	if err != nil {
		return nil, err
	}
	params, err := reg.Params(opts.component, opts.set...)
	if err != nil {
		return nil, err
	}
	b, err := reg.Instance(opts.component, params)
	if err != nil {
		return nil, err
	}
	b.Class = compose.ParseClassList(opts.class)
	b.AdditionalClass = compose.ParseClassList(opts.addClass)
	if b.Styles, err = parseStyle("--style", opts.style); err != nil {
		return nil, err
	}
	if b.AdditionalStyles, err = parseStyle("--add-style", opts.addStyle); err != nil {
		return nil, err
	}
	if len(opts.attrs) > 0 {
		b.Attributes = make(map[string]any, len(opts.attrs))
		for _, a := range opts.attrs {
			name, val, _ := strings.Cut(a, "=")
			if name = strings.TrimSpace(name); name == "" {
				return nil, fmt.Errorf("attribute %q has no name", a)
			}
			b.Attributes[name] = val
		}
	}
	return &element{Base: b, text: opts.text}, nil
}

func parseStyle(flag, text string) (*style.Map, error) {
	if text == "" {
		return nil, nil
	}
	m, err := style.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", flag, err)
	}
	return m, nil
}
