package cdpdriver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/browser"
	"github.com/chromedp/chromedp"
)

// resolveFunction walks a chain of XPath expressions, each evaluated relative
// to the node found by the previous one.
const resolveFunction = `function (paths) {
	var node = document;
	for (var i = 0; i < paths.length && node; i++) {
		node = document.evaluate(paths[i], node, null, XPathResult.FIRST_ORDERED_NODE_TYPE, null).singleNodeValue;
	}
	return node;
}`

type document struct {
	session *Session
}

var _ browser.Document = &document{}

func (d *document) FindXPath(ctx context.Context, xpath string) (browser.Node, error) {
	return find(ctx, d.session, []string{xpath})
}

func (d *document) Visit(ctx context.Context, url string) error {
	return d.session.run(ctx, chromedp.Navigate(url))
}

func (d *document) Content(ctx context.Context) (string, error) {
	var html string
	if err := d.session.run(ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", err
	}
	return html, nil
}

// node is addressed by the chain of XPath expressions that located it, so it
// is resolved again on every call.
type node struct {
	session *Session
	path    []string
}

var _ browser.Node = &node{}

func (n *node) FindXPath(ctx context.Context, xpath string) (browser.Node, error) {
	path := append(append([]string{}, n.path...), xpath)
	return find(ctx, n.session, path)
}

func (n *node) Evaluate(ctx context.Context, fn string, arg interface{}) (interface{}, error) {
	expression, err := evaluateExpression(n.path, fn, arg)
	if err != nil {
		return nil, err
	}

	var res interface{}
	if err := n.session.run(ctx, chromedp.Evaluate(expression, &res)); err != nil {
		return nil, err
	}
	return res, nil
}

func (n *node) Fill(ctx context.Context, value string) error {
	_, err := n.Evaluate(ctx, browser.FillFunction, value)
	return err
}

func find(ctx context.Context, session *Session, path []string) (browser.Node, error) {
	expression, err := existsExpression(path)
	if err != nil {
		return nil, err
	}

	var found bool
	if err := session.run(ctx, chromedp.Evaluate(expression, &found)); err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &node{session: session, path: path}, nil
}

func existsExpression(path []string) (string, error) {
	paths, err := json.Marshal(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(%s)(%s) !== null", resolveFunction, paths), nil
}

func evaluateExpression(path []string, fn string, arg interface{}) (string, error) {
	paths, err := json.Marshal(path)
	if err != nil {
		return "", err
	}
	encodedArg, err := json.Marshal(arg)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`(function (el, arg) {
	if (!el) {
		throw new Error('element is no longer attached to the page');
	}
	return (%s)(el, arg);
})((%s)(%s), %s)`, fn, resolveFunction, paths, encodedArg), nil
}
