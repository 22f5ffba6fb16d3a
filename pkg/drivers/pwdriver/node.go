package pwdriver

import (
	"context"

	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/browser"
	"github.com/playwright-community/playwright-go"
)

type document struct {
	page playwright.Page
}

var _ browser.Document = &document{}

func (d *document) FindXPath(ctx context.Context, xpath string) (browser.Node, error) {
	return first(ctx, d.page.Locator(xpathSelector(xpath)))
}

func (d *document) Visit(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := d.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
		Timeout:   timeoutMillis(ctx),
	})
	return err
}

func (d *document) Content(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return d.page.Content()
}

type node struct {
	locator playwright.Locator
}

var _ browser.Node = &node{}

func (n *node) FindXPath(ctx context.Context, xpath string) (browser.Node, error) {
	return first(ctx, n.locator.Locator(xpathSelector(xpath)))
}

func (n *node) Evaluate(ctx context.Context, fn string, arg interface{}) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return n.locator.Evaluate(fn, arg, playwright.LocatorEvaluateOptions{
		Timeout: timeoutMillis(ctx),
	})
}

func (n *node) Fill(ctx context.Context, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return n.locator.Fill(value, playwright.LocatorFillOptions{
		Timeout: timeoutMillis(ctx),
	})
}

// first narrows locator to its first match, or returns nil when there is none.
func first(ctx context.Context, locator playwright.Locator) (browser.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	locator = locator.First()
	count, err := locator.Count()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	return &node{locator: locator}, nil
}

func xpathSelector(xpath string) string {
	return "xpath=" + xpath
}
