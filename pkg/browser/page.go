package browser

import (
	"context"
	"fmt"
)

// NewPage builds the page model over a driver document.
func NewPage(doc Document) Page {
	return &page{doc: doc}
}

type page struct {
	doc Document
}

var _ Page = &page{}

func (p *page) Visit(ctx context.Context, url string) error {
	return p.doc.Visit(ctx, url)
}

func (p *page) Content(ctx context.Context) (string, error) {
	return p.doc.Content(ctx)
}

func (p *page) FindField(ctx context.Context, locator string) (Field, error) {
	node, _, err := FieldStrategies.Resolve(ctx, p.doc, locator)
	if err != nil || node == nil {
		return nil, err
	}
	return &field{element{node: node}}, nil
}

type element struct {
	node Node
}

func (e element) Attribute(ctx context.Context, name string) (string, error) {
	raw, err := e.node.Evaluate(ctx, attributeFunction, name)
	if err != nil {
		return "", fmt.Errorf("failed to read attribute %q: %w", name, err)
	}
	return stringResult(raw)
}

type field struct {
	element
}

var _ Field = &field{}

func (f *field) FindOption(ctx context.Context, locator string) (Option, error) {
	node, _, err := OptionStrategies.Resolve(ctx, f.node, locator)
	if err != nil || node == nil {
		return nil, err
	}
	return &option{element{node: node}}, nil
}

func (f *field) Options(ctx context.Context) ([]OptionInfo, error) {
	raw, err := f.node.Evaluate(ctx, optionsFunction, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read options: %w", err)
	}
	if raw == nil {
		return []OptionInfo{}, nil
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected options result of type %T", raw)
	}

	options := make([]OptionInfo, 0, len(items))
	for _, item := range items {
		pair, ok := item.([]interface{})
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("unexpected option entry %v", item)
		}
		label, _ := pair[0].(string)
		value, _ := pair[1].(string)
		options = append(options, OptionInfo{Label: label, Value: value})
	}
	return options, nil
}

func (f *field) Value(ctx context.Context) (Value, error) {
	raw, err := f.node.Evaluate(ctx, valueFunction, nil)
	if err != nil {
		return Value{}, fmt.Errorf("failed to read field value: %w", err)
	}
	return ValueFromJS(raw)
}

func (f *field) Fill(ctx context.Context, value string) error {
	return f.node.Fill(ctx, value)
}

type option struct {
	element
}

var _ Option = &option{}

func (o *option) Text(ctx context.Context) (string, error) {
	raw, err := o.node.Evaluate(ctx, textFunction, nil)
	if err != nil {
		return "", fmt.Errorf("failed to read option text: %w", err)
	}
	return stringResult(raw)
}

func stringResult(raw interface{}) (string, error) {
	switch x := raw.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	default:
		return "", fmt.Errorf("unexpected result %v of type %T", raw, raw)
	}
}
