package ruleset

// Set is the YAML document describing rule tables:
//
//	enums:
//	  - name: Size
//	    members: [{name: Small, token: sm}, {name: Large, token: lg}]
//	capabilities:
//	  - name: Spacing
//	    properties:
//	      - name: Margin
//	        css: {token: "m-", null_token: "m-0"}
//	components:
//	  - name: Button
//	    tag: button
//	    class: {token: btn}
//	    implements: [Spacing]
//	    properties:
//	      - name: Size
//	        enum: Size
//	        css: {token: "btn-"}
type Set struct {
	Enums        []EnumSpec      `yaml:"enums,omitempty" validate:"dive"`
	Capabilities []ComponentSpec `yaml:"capabilities,omitempty" validate:"dive"`
	Components   []ComponentSpec `yaml:"components" validate:"required,min=1,dive"`
}

// ComponentSpec declares a component type or a capability.
type ComponentSpec struct {
	Name       string         `yaml:"name" validate:"required,identifier"`
	Tag        string         `yaml:"tag,omitempty" validate:"omitempty,tagname"`
	Class      *RuleSpec      `yaml:"class,omitempty"`
	Implements []string       `yaml:"implements,omitempty" validate:"dive,required"`
	Properties []PropertySpec `yaml:"properties,omitempty" validate:"dive"`
}

// PropertySpec declares a property and its rules. Style holds the name of
// the style property the value is rendered to, Attr the name of an HTML
// attribute. Enum names the enumeration raw values are looked up in.
type PropertySpec struct {
	Name  string    `yaml:"name" validate:"required,identifier"`
	CSS   *RuleSpec `yaml:"css,omitempty"`
	Style string    `yaml:"style,omitempty" validate:"cssident"`
	Attr  *string   `yaml:"attr,omitempty"`
	Enum  string    `yaml:"enum,omitempty"`
}

// RuleSpec declares a class rule.
type RuleSpec struct {
	Token      string `yaml:"token" validate:"cssident"`
	Order      int    `yaml:"order,omitempty"`
	Suffix     bool   `yaml:"suffix,omitempty"`
	TrueToken  string `yaml:"true_token,omitempty" validate:"cssident"`
	FalseToken string `yaml:"false_token,omitempty" validate:"cssident"`
	NullToken  string `yaml:"null_token,omitempty" validate:"cssident"`
}

// EnumSpec declares an enumeration.
type EnumSpec struct {
	Name    string       `yaml:"name" validate:"required,identifier"`
	Members []MemberSpec `yaml:"members" validate:"required,min=1,dive"`
}

// MemberSpec declares an enumeration member. An empty token stands for the
// lower-cased member name.
type MemberSpec struct {
	Name  string `yaml:"name" validate:"required,identifier"`
	Token string `yaml:"token,omitempty" validate:"cssident"`
}
