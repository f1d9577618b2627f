package browser

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// Element is a node on the page that was current when it was found.
type Element struct {
	browser *Browser
	page    *page
	node    *html.Node
}

// TagName returns the lowercase tag name.
func (e *Element) TagName() string {
	return e.node.Data
}

// Text returns the element's visible text with whitespace collapsed.
func (e *Element) Text() string {
	return textContent(e.node)
}

// Attribute returns the named attribute, or "" when absent. For form controls
// "value" reflects what has been typed with SendKeys.
func (e *Element) Attribute(name string) string {
	if name == "value" {
		return e.value()
	}
	return attr(e.node, name)
}

// FindElementsByTagName returns all descendants with the given tag, in document order.
func (e *Element) FindElementsByTagName(tag string) []*Element {
	tag = strings.ToLower(tag)
	var out []*Element
	walk(e.node, func(n *html.Node) bool {
		if n != e.node && isElement(n, tag) {
			out = append(out, &Element{browser: e.browser, page: e.page, node: n})
		}
		return false
	})
	return out
}

// SendKeys types keys into an input or textarea. In an input KeyEnter submits
// the enclosing form and anything after it is dropped because the page is
// replaced; in a textarea it is a line break.
func (e *Element) SendKeys(ctx context.Context, keys string) error {
	if err := e.checkStale(); err != nil {
		return err
	}
	if !isElement(e.node, "input") && !isElement(e.node, "textarea") {
		return fmt.Errorf("cannot type into <%s>", e.node.Data)
	}

	if isElement(e.node, "textarea") {
		e.page.values[e.node] = e.value() + strings.ReplaceAll(keys, KeyEnter, "\n")
		return nil
	}

	typed, _, enter := strings.Cut(keys, KeyEnter)
	e.page.values[e.node] = e.value() + typed
	if enter {
		return e.Submit(ctx)
	}
	return nil
}

// Submit submits the form that contains the element and loads the response.
func (e *Element) Submit(ctx context.Context) error {
	if err := e.checkStale(); err != nil {
		return err
	}

	form := e.node
	for form != nil && !isElement(form, "form") {
		form = form.Parent
	}
	if form == nil {
		return ErrNoForm
	}

	target, err := e.browser.resolve(attr(form, "action"))
	if err != nil {
		return err
	}
	values := e.page.formValues(form)

	method := strings.ToUpper(attr(form, "method"))
	var req *http.Request
	if method == http.MethodPost {
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, target.String(), strings.NewReader(values.Encode()))
		if err == nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	} else {
		target.RawQuery = values.Encode()
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	}
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return e.browser.load(req)
}

func (e *Element) checkStale() error {
	if e.browser.page != e.page {
		return ErrStaleElement
	}
	return nil
}

func (e *Element) value() string {
	return e.page.value(e.node)
}

func (p *page) value(n *html.Node) string {
	if v, ok := p.values[n]; ok {
		return v
	}
	if isElement(n, "textarea") {
		return textContent(n)
	}
	return attr(n, "value")
}

// formValues collects the successful controls of form the way a browser encodes them.
func (p *page) formValues(form *html.Node) url.Values {
	values := url.Values{}
	walk(form, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		name := attr(n, "name")
		if name == "" || hasAttr(n, "disabled") {
			return false
		}

		switch n.Data {
		case "input":
			switch strings.ToLower(attr(n, "type")) {
			case "submit", "button", "image", "reset", "file":
				return false
			case "checkbox", "radio":
				if !hasAttr(n, "checked") {
					return false
				}
				v := attr(n, "value")
				if v == "" {
					v = "on"
				}
				values.Add(name, v)
				return false
			}
			values.Add(name, p.value(n))
		case "textarea":
			values.Add(name, p.value(n))
			return true
		case "select":
			if opt := findFirst(n, func(o *html.Node) bool { return isElement(o, "option") && hasAttr(o, "selected") }); opt != nil {
				values.Add(name, optionValue(opt))
			} else if opt := findFirst(n, func(o *html.Node) bool { return isElement(o, "option") }); opt != nil {
				values.Add(name, optionValue(opt))
			}
			return true
		}
		return false
	})
	return values
}

func optionValue(n *html.Node) string {
	if hasAttr(n, "value") {
		return attr(n, "value")
	}
	return textContent(n)
}
