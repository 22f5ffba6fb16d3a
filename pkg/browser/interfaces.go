// Package browser is the page model the step definitions work against.
//
// Drivers only implement Document and Node: locating a node by XPath,
// evaluating a javascript function against it and filling it. NewPage turns
// a Document into the higher level Page, Field and Option abstractions,
// including the ordered lookup strategies used to resolve fields and options.
package browser

import (
	"context"
)

// Capability is an optional driver feature that steps query before use.
type Capability string

const (
	CapabilityResizeWindow Capability = "resize_window"
	CapabilityScreenshot   Capability = "screenshot"
	CapabilityScript       Capability = "script"
)

// Session is the browser session shared by the scenarios of a suite.
//
//go:generate moq -out session_moq.go . Session
type Session interface {
	Page() Page
	Driver() Driver
}

//go:generate moq -out page_moq.go . Page
type Page interface {
	Visit(ctx context.Context, url string) error
	// FindField resolves a form control by id, name, label or value. A nil
	// Field with a nil error means no strategy matched.
	FindField(ctx context.Context, locator string) (Field, error)
	Content(ctx context.Context) (string, error)
}

//go:generate moq -out field_moq.go . Field
type Field interface {
	// FindOption resolves an option of this field by value or text. A nil
	// Option with a nil error means no strategy matched.
	FindOption(ctx context.Context, locator string) (Option, error)
	Options(ctx context.Context) ([]OptionInfo, error)
	Value(ctx context.Context) (Value, error)
	Attribute(ctx context.Context, name string) (string, error)
	Fill(ctx context.Context, value string) error
}

//go:generate moq -out option_moq.go . Option
type Option interface {
	Attribute(ctx context.Context, name string) (string, error)
	Text(ctx context.Context) (string, error)
}

// OptionInfo is the label and value of an option as rendered on the page.
type OptionInfo struct {
	Label string
	Value string
}

//go:generate moq -out driver_moq.go . Driver
type Driver interface {
	Supports(capability Capability) bool
	// ExecuteScript runs code in the page. Its result is discarded.
	ExecuteScript(ctx context.Context, code string) error
	Screenshot(ctx context.Context) ([]byte, error)
	ResizeWindow(ctx context.Context, width, height int) error
}

// Scope is something nodes can be looked up from.
type Scope interface {
	// FindXPath returns the first node matching xpath evaluated relative to
	// the scope, or nil when nothing matches.
	FindXPath(ctx context.Context, xpath string) (Node, error)
}

// Node is an element of the live page as seen by a driver.
type Node interface {
	Scope
	// Evaluate calls the javascript function fn with the element and arg and
	// returns its json decoded result.
	Evaluate(ctx context.Context, fn string, arg interface{}) (interface{}, error)
	Fill(ctx context.Context, value string) error
}

// Document is the root of the live page.
type Document interface {
	Scope
	Visit(ctx context.Context, url string) error
	Content(ctx context.Context) (string, error)
}
