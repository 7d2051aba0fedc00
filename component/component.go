package component

import (
	"fmt"
	"reflect"

	"github.com/npillmayer/cssattr/compose"
	"github.com/npillmayer/cssattr/resolve"
	"github.com/npillmayer/cssattr/scan"
	"github.com/npillmayer/cssattr/style"
)

// Component is implemented by every component embedding Base.
type Component interface {
	Presentation() *Base
}

// ClassContributor is implemented by components adding class names
// programmatically. Contributed names follow the resolved tokens.
type ClassContributor interface {
	ContributeClasses(*compose.Classes)
}

// StyleContributor is implemented by components adding style entries
// programmatically.
type StyleContributor interface {
	ContributeStyles(*compose.Styles)
}

// Base carries the presentation parameters every component shares. It is
// meant to be embedded:
//
//	type Button struct {
//	    component.Base
//	    _     struct{} `css:"btn" html:"button"`
//	    Color Color    `css:"btn-"`
//	}
type Base struct {
	// Class replaces the computed class string completely, if non-empty.
	Class compose.ClassList
	// AdditionalClass is appended to the computed class string.
	AdditionalClass compose.ClassList
	// Styles replaces the computed style string completely, if non-empty.
	Styles *style.Map
	// AdditionalStyles is merged into the computed style string.
	AdditionalStyles *style.Map
	// Attributes collects unmatched HTML attributes. Keys "class" and
	// "style" override everything else.
	Attributes map[string]any

	// Descriptor is the rule table of the component. If nil, it is derived
	// from the struct tags of the component type.
	Descriptor *scan.Descriptor
	// Values gives access to the live parameter values. If nil, the exported
	// fields of the component are used.
	Values resolve.Accessor

	classes *compose.Classes
	styles  *compose.Styles
}

// Presentation makes Base (and every type embedding it) a Component.
func (b *Base) Presentation() *Base {
	return b
}

// Describe returns the rule table of c.
func Describe(c Component) *scan.Descriptor {
	b := c.Presentation()
	if b.Descriptor != nil {
		return b.Descriptor
	}
	d, err := scan.FromStruct(reflect.TypeOf(c))
	if err != nil {
		tracer().Errorf("component: %v", err)
		return nil
	}
	return d
}

// Values returns the accessor for the live parameter values of c.
func Values(c Component) resolve.Accessor {
	if b := c.Presentation(); b.Values != nil {
		return b.Values
	}
	return resolve.Struct(c)
}

// BuildClass computes the class attribute value of c for one rendering pass.
//
// A "class" entry in the attribute bag is returned verbatim, then a
// non-empty Class override. Otherwise the class rules of c are resolved,
// contributions of a ClassContributor and AdditionalClass are appended.
// The empty string means "no class attribute".
func BuildClass(c Component) string {
	b := c.Presentation()
	if raw, ok := b.Attributes["class"]; ok && raw != nil {
		tracer().Debugf("component: class attribute overrides class rules")
		return fmt.Sprint(raw)
	}
	if len(b.Class) > 0 {
		return b.Class.String()
	}
	if b.classes == nil {
		b.classes = compose.NewClasses()
	}
	b.classes.Reset()
	b.classes.Put(resolve.Classes(Describe(c), Values(c))...)
	if cc, ok := c.(ClassContributor); ok {
		cc.ContributeClasses(b.classes)
	}
	b.classes.AddList(b.AdditionalClass)
	return b.classes.String()
}

// BuildStyle computes the style attribute value of c for one rendering pass,
// with the same precedence as BuildClass.
func BuildStyle(c Component) string {
	b := c.Presentation()
	if raw, ok := b.Attributes["style"]; ok && raw != nil {
		tracer().Debugf("component: style attribute overrides style rules")
		return fmt.Sprint(raw)
	}
	if b.Styles.Len() > 0 {
		return b.Styles.String()
	}
	if b.styles == nil {
		b.styles = compose.NewStyles()
	}
	b.styles.Reset()
	b.styles.Put(resolve.Styles(Describe(c), Values(c))...)
	if sc, ok := c.(StyleContributor); ok {
		sc.ContributeStyles(b.styles)
	}
	b.styles.Put(b.AdditionalStyles.Properties()...)
	return b.styles.String()
}
