package resolve

import (
	"github.com/npillmayer/cssattr/compose"
	"github.com/npillmayer/cssattr/rule"
	"github.com/npillmayer/cssattr/scan"
	"github.com/npillmayer/cssattr/style"
	"github.com/npillmayer/cssattr/value"
)

// Construct returns the unconditional tokens of construct-level rules:
// capability rules by order first, then the type's own class rule.
func Construct(res scan.Result) []compose.Token {
	tokens := make([]compose.Token, 0, len(res.InterfaceRules)+1)
	for _, r := range res.InterfaceRules {
		tokens = append(tokens, compose.Token{Name: r.Token, Order: r.Order})
	}
	if res.ClassRule != nil {
		tokens = append(tokens, compose.Token{Name: res.ClassRule.Token, Order: res.ClassRule.Order})
	}
	return tokens
}

// CSS resolves the class tokens a binding contributes for a live value:
//
//	absent        => NullToken, if declared
//	true          => TrueToken, falling back to Token
//	false         => FalseToken, if declared
//	enum member   => Token combined with the member's token
//	collection    => Token combined with every item
//	other scalars => Token combined with the stringified value
//
// Unsupported combinations contribute nothing.
func CSS(b Binding, live any) []compose.Token {
	r := b.Rule
	if r.Kind() != rule.KindCSS {
		return nil
	}
	var (
		flag   bool
		member value.Member
		items  []string
		text   string
	)
	switch m := value.Of(live).Match(); m {
	case m.Null():
		return token(r.NullToken, r.Order)
	case m.Bool(&flag):
		if !flag {
			return token(r.FalseToken, r.Order)
		}
		if r.TrueToken != "" {
			return token(r.TrueToken, r.Order)
		}
		return token(r.Token, r.Order)
	case m.Enum(&member):
		t := member.CSSToken()
		if t == "" {
			tracer().Debugf("resolve: %s has unknown enumeration member", b.Property)
			return nil
		}
		return token(r.Combine(t), r.Order)
	case m.Collection(&items):
		tokens := make([]compose.Token, 0, len(items))
		for _, item := range items {
			if item == "" {
				continue
			}
			tokens = append(tokens, compose.Token{Name: r.Combine(item), Order: r.Order})
		}
		return tokens
	case m.Scalar(&text):
		return token(r.Combine(text), r.Order)
	}
	return nil
}

func token(name string, order int) []compose.Token {
	if name == "" {
		return nil
	}
	return []compose.Token{{Name: name, Order: order}}
}

// Style resolves the style entry a binding contributes for a live value.
// Only non-null scalar values produce an entry.
func Style(b Binding, live any) (style.KeyValue, bool) {
	if b.Rule.Kind() != rule.KindStyle {
		return style.KeyValue{}, false
	}
	var text string
	switch m := value.Of(live).Match(); m {
	case m.Scalar(&text):
		return style.KeyValue{Key: b.Rule.StyleName, Value: style.Property(text)}, true
	}
	return style.KeyValue{}, false
}

// --- Resolution passes -----------------------------------------------------

// Classes runs a complete class resolution pass for a component type and
// its live values: construct-level tokens, then the tokens of every
// binding in property order.
func Classes(d *scan.Descriptor, a Accessor) []compose.Token {
	if a == nil {
		a = Params(nil)
	}
	res := scan.Scan(d)
	tokens := Construct(res)
	for _, b := range Bindings(res) {
		tokens = append(tokens, CSS(b, a.Lookup(b.Property))...)
	}
	tracer().P("type", res.Name).Debugf("resolve: %d class tokens", len(tokens))
	return tokens
}

// Styles runs a complete style resolution pass.
func Styles(d *scan.Descriptor, a Accessor) []style.KeyValue {
	if a == nil {
		a = Params(nil)
	}
	res := scan.Scan(d)
	var entries []style.KeyValue
	for _, b := range StyleBindings(res) {
		if kv, ok := Style(b, a.Lookup(b.Property)); ok {
			entries = append(entries, kv)
		}
	}
	return entries
}
