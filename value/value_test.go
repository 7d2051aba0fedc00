package value_test

import (
	"testing"

	"github.com/npillmayer/cssattr/value"
)

type size int

const (
	sm size = iota
	lg
	xl
)

var sizes = value.Enumeration[size]{
	{Name: "SM", Token: "sm"},
	{Name: "LG", Token: "lg"},
	{Name: "XL"},
}

func (s size) EnumMember() value.Member { return sizes.Member(s) }

type words []string

func (w words) TokenList() []string { return w }

type color struct{ value.Class }

var primary = color{value.NewClass("primary")}

type flag bool

type toggle bool

func (t toggle) String() string {
	if t {
		return "on"
	}
	return "off"
}

func TestClassifyNull(t *testing.T) {
	var p *int
	var s []string
	for _, x := range []any{nil, p, s} {
		if k := value.Of(x).Kind(); k != value.Null {
			t.Errorf("expected %#v to be classified Null, is %s", x, k)
		}
	}
}

func TestClassifyBool(t *testing.T) {
	yes := true
	var b bool
	switch m := value.Of(&yes).Match(); m {
	case m.Bool(&b):
		t.Logf("bool = %v", b)
	default:
		t.Fatalf("expected *bool to be classified Bool")
	}
	if !b {
		t.Errorf("expected flag to be true")
	}
	if k := value.Of(flag(false)).Kind(); k != value.Bool {
		t.Errorf("expected named bool type to be classified Bool, is %s", k)
	}
}

func TestClassifyBoolStringer(t *testing.T) {
	off := toggle(false)
	for _, x := range []any{off, &off} {
		var b bool
		switch m := value.Of(x).Match(); m {
		case m.Bool(&b):
			if b {
				t.Errorf("expected %v to be false", x)
			}
		default:
			t.Errorf("expected bool with String method to be classified Bool, is %s", value.Of(x).Kind())
		}
	}
}

func TestClassifyEnum(t *testing.T) {
	var member value.Member
	switch m := value.Of(lg).Match(); m {
	case m.Enum(&member):
		t.Logf("member = %v", member)
	default:
		t.Fatalf("expected enum to be classified Enum")
	}
	if member.CSSToken() != "lg" {
		t.Errorf("expected token lg, is %q", member.CSSToken())
	}
	if tok := xl.EnumMember().CSSToken(); tok != "xl" {
		t.Errorf("expected member without token to fall back to lower-cased name, is %q", tok)
	}
	if tok := size(42).EnumMember().CSSToken(); tok != "" {
		t.Errorf("expected out-of-range member to have empty token, is %q", tok)
	}
}

func TestClassifyCollection(t *testing.T) {
	var items []string
	for _, x := range []any{words{"a", "b"}, []string{"a", "b"}} {
		switch m := value.Of(x).Match(); m {
		case m.Collection(&items):
		default:
			t.Fatalf("expected %#v to be classified Collection", x)
		}
		if len(items) != 2 || items[0] != "a" || items[1] != "b" {
			t.Errorf("unexpected items %v", items)
		}
	}
}

func TestClassifyScalar(t *testing.T) {
	one := 1
	cases := []struct {
		x    any
		want string
	}{
		{1, "1"},
		{&one, "1"},
		{"primary", "primary"},
		{primary, "primary"},
		{value.NewClass(lg), "lg"},
		{120.5, "120.5"},
	}
	for _, c := range cases {
		var s string
		switch m := value.Of(c.x).Match(); m {
		case m.Scalar(&s):
		default:
			t.Errorf("expected %#v to be classified Scalar, is %s", c.x, value.Of(c.x))
			continue
		}
		if s != c.want {
			t.Errorf("expected %#v to stringify to %q, is %q", c.x, c.want, s)
		}
	}
}

func TestEnumerationLookup(t *testing.T) {
	s, ok := sizes.Lookup("lg")
	if !ok || s != lg {
		t.Errorf("expected lookup of 'lg' to find LG, found %v/%v", s, ok)
	}
	if _, ok := sizes.Lookup("huge"); ok {
		t.Error("expected lookup of unknown member to fail")
	}
}
