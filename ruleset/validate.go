package ruleset

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	tagNamePattern    = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
	cssIdentPattern   = regexp.MustCompile(`^[^\s:;]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
			return identifierPattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("tagname", func(fl validator.FieldLevel) bool {
			return tagNamePattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("cssident", func(fl validator.FieldLevel) bool {
			return cssIdentPattern.MatchString(fl.Field().String())
		})
		validateInst = v
	})
	return validateInst
}

// Validate checks a rule set against the schema and checks that every name
// it references is declared. Capabilities must not implement themselves,
// directly or indirectly.
func Validate(set *Set) error {
	if set == nil {
		return newValidationError("", "rule set is nil", nil)
	}
	if err := validatorInstance().Struct(set); err != nil {
		return convertValidationError(err)
	}
	enums := make(map[string]bool, len(set.Enums))
	for i, e := range set.Enums {
		if enums[e.Name] {
			return newValidationError(fmt.Sprintf("enums[%d].name", i),
				fmt.Sprintf("duplicate enumeration %q", e.Name), nil)
		}
		enums[e.Name] = true
	}
	caps := make(map[string]bool, len(set.Capabilities))
	if err := checkSpecs("capabilities", set.Capabilities, caps, enums); err != nil {
		return err
	}
	if err := checkSpecs("components", set.Components, make(map[string]bool), enums); err != nil {
		return err
	}
	for i, c := range set.Capabilities {
		if err := checkImplements(fmt.Sprintf("capabilities[%d]", i), c, caps); err != nil {
			return err
		}
	}
	for i, c := range set.Components {
		if err := checkImplements(fmt.Sprintf("components[%d]", i), c, caps); err != nil {
			return err
		}
	}
	if cycle := detectCycle(set.Capabilities); len(cycle) > 0 {
		return newValidationError("capabilities",
			fmt.Sprintf("capabilities implement each other: %s", strings.Join(cycle, " -> ")), nil)
	}
	return nil
}

func checkSpecs(section string, specs []ComponentSpec, seen, enums map[string]bool) error {
	for i, c := range specs {
		if seen[c.Name] {
			return newValidationError(fmt.Sprintf("%s[%d].name", section, i),
				fmt.Sprintf("duplicate name %q", c.Name), nil)
		}
		seen[c.Name] = true
		props := make(map[string]bool, len(c.Properties))
		for j, p := range c.Properties {
			field := fmt.Sprintf("%s[%d].properties[%d]", section, i, j)
			if props[p.Name] {
				return newValidationError(field+".name", fmt.Sprintf("duplicate property %q", p.Name), nil)
			}
			props[p.Name] = true
			if p.Enum != "" && !enums[p.Enum] {
				return newValidationError(field+".enum", fmt.Sprintf("unknown enumeration %q", p.Enum), nil)
			}
			if p.CSS == nil && p.Style == "" && p.Attr == nil {
				return newValidationError(field, fmt.Sprintf("property %q has no rules", p.Name), nil)
			}
		}
	}
	return nil
}

func checkImplements(field string, c ComponentSpec, caps map[string]bool) error {
	for k, name := range c.Implements {
		if !caps[name] {
			return newValidationError(fmt.Sprintf("%s.implements[%d]", field, k),
				fmt.Sprintf("unknown capability %q", name), nil)
		}
	}
	return nil
}

// convertValidationError normalizes validator errors into validation errors.
func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := yamlishFieldName(fe)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
		return newValidationError(field, msg, err)
	}
	return newValidationError("", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:] // drop the type name of the root struct
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

// detectCycle returns the capabilities participating in a cycle of
// implements-relations, or nil if there is none.
func detectCycle(caps []ComponentSpec) []string {
	graph := make(map[string][]string, len(caps))
	for _, c := range caps {
		graph[c.Name] = c.Implements
	}
	visiting := make(map[string]bool, len(caps))
	visited := make(map[string]bool, len(caps))
	var stack, cycle []string
	var dfs func(string) bool
	dfs = func(node string) bool {
		visiting[node] = true
		stack = append(stack, node)
		for _, dep := range graph[node] {
			if visited[dep] {
				continue
			}
			if visiting[dep] {
				for i, n := range stack {
					if n == dep {
						cycle = append(append([]string{}, stack[i:]...), dep)
						break
					}
				}
				return true
			}
			if dfs(dep) {
				return true
			}
		}
		visiting[node] = false
		visited[node] = true
		stack = stack[:len(stack)-1]
		return false
	}
	names := make([]string, 0, len(graph))
	for name := range graph {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !visited[name] && dfs(name) {
			break
		}
	}
	return cycle
}
