package rule_test

import (
	"testing"

	"github.com/npillmayer/cssattr/rule"
)

func TestCombine(t *testing.T) {
	p := rule.Prefix("m-")
	if s := p.Combine("1"); s != "m-1" {
		t.Errorf("expected prefix rule to produce m-1, is %q", s)
	}
	s := rule.Suffix("-lg")
	if x := s.Combine("btn"); x != "btn-lg" {
		t.Errorf("expected suffix rule to produce btn-lg, is %q", x)
	}
	empty := rule.Prefix("")
	if x := empty.Combine("primary"); x != "primary" {
		t.Errorf("expected rule without token to pass value through, is %q", x)
	}
}

func TestOptions(t *testing.T) {
	r := rule.Prefix("m-", rule.Order(3), rule.Null("m-0"), rule.AsSuffix())
	if r.Order != 3 || r.NullToken != "m-0" || !r.Suffix {
		t.Errorf("options not applied: %#v", r)
	}
	b := rule.Bool("text", "text-0", rule.Order(1))
	if b.Token != "text" || b.TrueToken != "text" || b.FalseToken != "text-0" {
		t.Errorf("unexpected boolean rule %#v", b)
	}
	w := rule.Prefix("x-", rule.WithBool("on", "off"))
	if w.TrueToken != "on" || w.FalseToken != "off" {
		t.Errorf("unexpected boolean tokens %#v", w)
	}
}

func TestKind(t *testing.T) {
	if rule.Style("max-height").Kind() != rule.KindStyle {
		t.Error("expected style rule to be of kind Style")
	}
	if rule.Construct("btn").Kind() != rule.KindCSS {
		t.Error("expected construct rule to be of kind CSS")
	}
	if rule.Construct("btn").Source != rule.ClassLevel {
		t.Error("expected construct rule to default to class level")
	}
	if !(rule.Rule{}).IsZero() {
		t.Error("expected empty rule to be zero")
	}
}

func TestString(t *testing.T) {
	r := rule.Prefix("m-", rule.Order(2), rule.Null("m-0"))
	if s := r.String(); s != `property "m-" order=2 null="m-0"` {
		t.Errorf("unexpected rule string %s", s)
	}
	if s := rule.Style("max-height").String(); s != `style "max-height"` {
		t.Errorf("unexpected style rule string %s", s)
	}
}
