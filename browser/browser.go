// Package browser is a small headless browser for driving server-rendered pages in
// end-to-end tests: it loads HTML, finds elements by id or tag, types into inputs and
// submits forms, keeping cookies and following redirects like a real browser would.
package browser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
)

var (
	ErrNoPage        = errors.New("no page loaded")
	ErrNoSuchElement = errors.New("no such element")
	ErrStaleElement  = errors.New("stale element reference")
	ErrNoForm        = errors.New("element is not inside a form")
)

// KeyEnter submits the enclosing form when passed to SendKeys.
const KeyEnter = "\ue007"

// StatusError is returned when a page load ends in a non-2xx response.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Option configures a Browser.
type Option func(*Browser)

// WithHTTPClient replaces the underlying client. A cookie jar is added when it has none.
func WithHTTPClient(client *http.Client) Option {
	return func(b *Browser) {
		b.client = client
	}
}

// WithTimeout bounds each page load.
func WithTimeout(d time.Duration) Option {
	return func(b *Browser) {
		b.client.Timeout = d
	}
}

// Browser holds one tab: the current page plus the cookies collected so far.
// It is not safe for concurrent use.
type Browser struct {
	client *http.Client
	page   *page
}

type page struct {
	url  *url.URL
	root *html.Node

	// values typed into form controls, keyed by node
	values map[*html.Node]string
}

// New creates a Browser with its own cookie jar.
func New(opts ...Option) (*Browser, error) {
	b := &Browser{
		client: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.client.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create cookie jar: %w", err)
		}
		b.client.Jar = jar
	}
	return b, nil
}

// Get loads rawURL, resolved against the current page when relative.
func (b *Browser) Get(ctx context.Context, rawURL string) error {
	target, err := b.resolve(rawURL)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return b.load(req)
}

// URL returns the address of the current page after redirects, or "" before the first load.
func (b *Browser) URL() string {
	if b.page == nil {
		return ""
	}
	return b.page.url.String()
}

// Title returns the text of the current page's <title>.
func (b *Browser) Title() string {
	if b.page == nil {
		return ""
	}
	n := findFirst(b.page.root, func(n *html.Node) bool { return isElement(n, "title") })
	if n == nil {
		return ""
	}
	return textContent(n)
}

// FindElementByID returns the first element whose id attribute equals id.
func (b *Browser) FindElementByID(id string) (*Element, error) {
	if b.page == nil {
		return nil, ErrNoPage
	}
	n := findFirst(b.page.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && attr(n, "id") == id
	})
	if n == nil {
		return nil, fmt.Errorf("%w: id=%q", ErrNoSuchElement, id)
	}
	return b.element(n), nil
}

// FindElementByTagName returns the first element with the given tag.
func (b *Browser) FindElementByTagName(tag string) (*Element, error) {
	if b.page == nil {
		return nil, ErrNoPage
	}
	tag = strings.ToLower(tag)
	n := findFirst(b.page.root, func(n *html.Node) bool { return isElement(n, tag) })
	if n == nil {
		return nil, fmt.Errorf("%w: tag=%q", ErrNoSuchElement, tag)
	}
	return b.element(n), nil
}

func (b *Browser) element(n *html.Node) *Element {
	return &Element{browser: b, page: b.page, node: n}
}

func (b *Browser) resolve(ref string) (*url.URL, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", ref, err)
	}
	if b.page != nil {
		u = b.page.url.ResolveReference(u)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("invalid url %q: no page to resolve it against", ref)
	}
	return u, nil
}

// load performs req, following redirects, and replaces the current page with the result.
func (b *Browser) load(req *http.Request) error {
	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Method: req.Method, URL: resp.Request.URL.String(), StatusCode: resp.StatusCode}
	}

	root, err := html.Parse(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", resp.Request.URL, err)
	}

	b.page = &page{
		url:    resp.Request.URL,
		root:   root,
		values: make(map[*html.Node]string),
	}
	return nil
}
