package scan

import (
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/cssattr/rule"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func mockDescriptors() (*Descriptor, *Descriptor, *Descriptor) {
	bordered := Declare("Bordered").
		Class("border", rule.Order(2)).
		Prop("Width", rule.Prefix("border-")).
		Capability()
	rounded := Declare("Rounded").
		Class("rounded", rule.Order(1)).
		Implements(bordered).
		Prop("RoundedStyles", rule.Prefix("rounded-")).
		Prop("Width", rule.Prefix("rounded-w-")).
		Capability()
	button := Declare("Button").Tag("button").
		Class("btn").
		Implements(rounded, bordered).
		Prop("Color", rule.Prefix("btn-")).
		Prop("Width").
		Style("MaxHeight", "max-height").
		Attr("Name", "title").
		Build()
	return button, rounded, bordered
}

func TestScanEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssattr.scan")
	defer teardown()
	//
	res := Scan(nil)
	if res.ClassRule != nil || len(res.Properties) != 0 || len(res.InterfaceRules) != 0 {
		t.Errorf("expected empty result for nil descriptor, is %+v", res)
	}
	res = Scan(Declare("Plain").Build())
	if res.ClassRule != nil || len(res.Properties) != 0 {
		t.Errorf("expected empty result for empty descriptor, is %+v", res)
	}
}

func TestScanConstructRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssattr.scan")
	defer teardown()
	//
	button, _, _ := mockDescriptors()
	res := Scan(button)
	if res.ClassRule == nil || res.ClassRule.Token != "btn" || res.ClassRule.Source != rule.ClassLevel {
		t.Fatalf("expected class rule 'btn', is %v", res.ClassRule)
	}
	if len(res.InterfaceRules) != 2 {
		t.Fatalf("expected 2 interface rules (capabilities visited once), have %d", len(res.InterfaceRules))
	}
	if res.InterfaceRules[0].Token != "rounded" || res.InterfaceRules[1].Token != "border" {
		t.Errorf("expected interface rules ordered by order field, are %v", res.InterfaceRules)
	}
	for _, r := range res.InterfaceRules {
		if r.Source != rule.InterfaceLevel {
			t.Errorf("expected interface rule source, is %s", r.Source)
		}
	}
}

func TestScanProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssattr.scan")
	defer teardown()
	//
	button, _, _ := mockDescriptors()
	res := Scan(button)
	want := []string{"Color", "Width", "MaxHeight", "Name", "RoundedStyles"}
	if !reflect.DeepEqual(res.Properties, want) {
		t.Errorf("expected properties %v, are %v", want, res.Properties)
	}
	if len(res.Inherited) != 2 || res.Inherited[0].Capability != "Bordered" ||
		res.Inherited[1].Capability != "Rounded" {
		t.Errorf("expected scan order Bordered, Rounded; is %+v", res.Inherited)
	}
	if p := res.Own["Width"]; p.CSS != nil {
		t.Errorf("expected own property Width to carry no rule, has %v", p.CSS)
	}
	if p := res.Own["MaxHeight"]; p.Style == nil || p.Style.StyleName != "max-height" {
		t.Errorf("expected style rule for MaxHeight, is %+v", p)
	}
}

func TestBuilderMergesProps(t *testing.T) {
	d := Declare("X").
		Prop("P", rule.Prefix("p-")).
		Prop("P", rule.Style("padding")).
		Build()
	p, ok := d.Property("P")
	if !ok || p.CSS == nil || p.Style == nil {
		t.Errorf("expected property P with css and style rule, is %+v", p)
	}
	if len(d.Properties()) != 1 {
		t.Errorf("expected 1 property, have %d", len(d.Properties()))
	}
}

func TestTree(t *testing.T) {
	button, _, _ := mockDescriptors()
	tree := button.Tree()
	t.Logf("\n%s", tree)
	for _, s := range []string{"Button <button>", `class "btn"`, "implements Rounded",
		`property "rounded-"`, `style "max-height"`, `attr "title"`} {
		if !strings.Contains(tree, s) {
			t.Errorf("expected tree to contain %q", s)
		}
	}
}

// --- Struct tags -----------------------------------------------------------

type Rounded struct {
	_             struct{} `css:"rounded,order=1"`
	RoundedStyles []string `css:"rounded-"`
}

type Untagged struct {
	Foo string
}

type testComponent struct {
	Untagged
	Rounded
	_         struct{} `css:"comp" html:"section"`
	Margin    *int     `css:"m-" cssnull:"m-0"`
	Text      *bool    `cssbool:"text,text-0"`
	Size      int      `css:"-lg,suffix,order=3"`
	MaxHeight *int     `style:"max-height"`
	Name      string   `html:"title"`
	Label     string   `html:""`
	Plain     string
	hidden    string `css:"h-"`
}

func TestFromStruct(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssattr.scan")
	defer teardown()
	//
	d, err := FromStruct(reflect.TypeOf(&testComponent{}))
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", d.Tree())
	if d.Tag() != "section" {
		t.Errorf("expected tag section, is %q", d.Tag())
	}
	if r, ok := d.Rule(); !ok || r.Token != "comp" || r.Source != rule.ClassLevel {
		t.Errorf("expected class rule comp, is %v", r)
	}
	if len(d.Capabilities()) != 1 || d.Capabilities()[0].Name() != "Rounded" {
		t.Fatalf("expected exactly capability Rounded, have %v", d.Capabilities())
	}
	if r, ok := d.Capabilities()[0].Rule(); !ok || r.Source != rule.InterfaceLevel || r.Order != 1 {
		t.Errorf("expected interface rule of order 1, is %v", r)
	}
	m, _ := d.Property("Margin")
	if m.CSS == nil || m.CSS.Token != "m-" || m.CSS.NullToken != "m-0" {
		t.Errorf("unexpected Margin rule %v", m.CSS)
	}
	tx, _ := d.Property("Text")
	if tx.CSS == nil || tx.CSS.TrueToken != "text" || tx.CSS.FalseToken != "text-0" {
		t.Errorf("unexpected Text rule %v", tx.CSS)
	}
	sz, _ := d.Property("Size")
	if sz.CSS == nil || !sz.CSS.Suffix || sz.CSS.Order != 3 {
		t.Errorf("unexpected Size rule %v", sz.CSS)
	}
	mh, _ := d.Property("MaxHeight")
	if mh.Style == nil || mh.Style.StyleName != "max-height" || mh.CSS != nil {
		t.Errorf("unexpected MaxHeight rules %+v", mh)
	}
	if n, _ := d.Property("Name"); n.Attr == nil || *n.Attr != "title" {
		t.Errorf("expected Name to be bound to attribute title")
	}
	if l, _ := d.Property("Label"); l.Attr == nil || *l.Attr != "" {
		t.Errorf("expected Label to be bound to default attribute")
	}
	if p, ok := d.Property("Plain"); !ok || p.HasRules() {
		t.Errorf("expected Plain to be a plain property")
	}
	if _, ok := d.Property("hidden"); ok {
		t.Errorf("expected unexported field to be ignored")
	}
	d2 := MustFromStruct(reflect.TypeOf(testComponent{}))
	if d != d2 {
		t.Errorf("expected descriptors to be cached per type")
	}
}

type badOrder struct {
	X int `css:"x-,order=first"`
}

type badOption struct {
	X int `css:"x-,bogus"`
}

func TestFromStructErrors(t *testing.T) {
	if _, err := FromStruct(reflect.TypeOf(badOrder{})); err == nil {
		t.Error("expected error for illegal order")
	}
	if _, err := FromStruct(reflect.TypeOf(badOption{})); err == nil {
		t.Error("expected error for unknown option")
	}
	if _, err := FromStruct(reflect.TypeOf(7)); err == nil {
		t.Error("expected error for non-struct type")
	}
	if _, err := Of(nil); err == nil {
		t.Error("expected error for nil")
	}
}

// --- Cyclic embedding ------------------------------------------------------

type node struct {
	*node
	X *int `css:"x-"`
}

type left struct {
	*right
	A *int `css:"a-"`
}

type right struct {
	*left
	B *int `css:"b-"`
}

func TestFromStructSelfEmbedding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssattr.scan")
	defer teardown()
	//
	d, err := FromStruct(reflect.TypeOf(node{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Capabilities()) != 0 {
		t.Errorf("expected self-embedding to be skipped, have %d capabilities", len(d.Capabilities()))
	}
	if _, ok := d.Property("X"); !ok {
		t.Errorf("expected property X")
	}
}

func TestFromStructMutualEmbedding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssattr.scan")
	defer teardown()
	//
	d, err := FromStruct(reflect.TypeOf(&left{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Capabilities()) != 1 || d.Capabilities()[0].Name() != "right" {
		t.Fatalf("expected left to implement right, have %v", d.Capabilities())
	}
	if len(d.Capabilities()[0].Capabilities()) != 0 {
		t.Errorf("expected cycle back to left to be cut")
	}
	res := Scan(d)
	if strings.Join(res.Properties, ",") != "A,B" {
		t.Errorf("expected properties A,B, have %v", res.Properties)
	}
	again, _ := FromStruct(reflect.TypeOf(left{}))
	if again.Tree() != d.Tree() {
		t.Errorf("expected repeated scans to agree:\n%s\n%s", d.Tree(), again.Tree())
	}
	r, err := FromStruct(reflect.TypeOf(right{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Capabilities()) != 1 || r.Capabilities()[0].Name() != "left" {
		t.Errorf("expected right to implement left, have %v", r.Capabilities())
	}
}
