package browser

import (
	"context"
	"fmt"
	"strings"
)

// LookupStrategy turns a locator into an XPath evaluated relative to a scope node.
type LookupStrategy struct {
	Name  string
	XPath func(literal string) string
}

// LookupStrategies are tried in order; the first match wins.
type LookupStrategies []LookupStrategy

const (
	fieldTags   = "self::input | self::textarea | self::select"
	fieldFilter = "[not(./@type = 'submit' or ./@type = 'image' or ./@type = 'hidden')]"
	fieldXPath  = ".//*[" + fieldTags + "]" + fieldFilter
	labelXPath  = ".//label[normalize-space(string(.)) = %s]"
)

var FieldStrategies = LookupStrategies{
	{
		Name: "id",
		XPath: func(literal string) string {
			return fmt.Sprintf("%s[./@id = %s]", fieldXPath, literal)
		},
	},
	{
		Name: "name",
		XPath: func(literal string) string {
			return fmt.Sprintf("%s[./@name = %s]", fieldXPath, literal)
		},
	},
	{
		Name: "label",
		XPath: func(literal string) string {
			byFor := fmt.Sprintf("%s[./@id = //label[normalize-space(string(.)) = %s]/@for]", fieldXPath, literal)
			nested := fmt.Sprintf(labelXPath, literal) + "//*[" + fieldTags + "]" + fieldFilter
			return byFor + " | " + nested
		},
	},
	{
		Name: "value",
		XPath: func(literal string) string {
			return fmt.Sprintf("%s[./@value = %s]", fieldXPath, literal)
		},
	},
}

var OptionStrategies = LookupStrategies{
	{
		Name: "value",
		XPath: func(literal string) string {
			return fmt.Sprintf(".//option[./@value = %s]", literal)
		},
	},
	{
		Name: "text",
		XPath: func(literal string) string {
			return fmt.Sprintf(".//option[normalize-space(string(.)) = %s]", literal)
		},
	},
}

func (s LookupStrategies) Names() []string {
	names := make([]string, 0, len(s))
	for _, strategy := range s {
		names = append(names, strategy.Name)
	}
	return names
}

// Resolve returns the first node matched by any strategy together with the
// name of the matching strategy. A nil node means nothing matched.
func (s LookupStrategies) Resolve(ctx context.Context, scope Scope, locator string) (Node, string, error) {
	literal := XPathLiteral(locator)
	for _, strategy := range s {
		node, err := scope.FindXPath(ctx, strategy.XPath(literal))
		if err != nil {
			return nil, "", fmt.Errorf("failed to look up %q by %s: %w", locator, strategy.Name, err)
		}
		if node != nil {
			return node, strategy.Name, nil
		}
	}
	return nil, "", nil
}

// XPathLiteral quotes s as an XPath 1.0 string literal. XPath has no escape
// sequences so strings holding both quote kinds are built with concat().
func XPathLiteral(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}

	parts := strings.Split(s, "'")
	args := make([]string, 0, len(parts)*2)
	for i, part := range parts {
		if i > 0 {
			args = append(args, `"'"`)
		}
		if part != "" {
			args = append(args, "'"+part+"'")
		}
	}
	return "concat(" + strings.Join(args, ", ") + ")"
}
