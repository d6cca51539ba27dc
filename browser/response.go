package browser

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// Response is one fetched page. Every Response is bound to the Browser that
// produced it, so navigation methods started from a Response get the same URL
// canonicalization and identity handling as direct Browser calls.
type Response struct {
	browser    *Browser
	StatusCode int
	Header     http.Header
	Body       string
	url        *url.URL
}

// Goto fetches another page, resolving href the same way the browser does.
func (r *Response) Goto(href string) (*Response, error) {
	return r.browser.Get(href)
}

// Form parses the first HTML form in the page. The returned form submits
// through the same browser.
func (r *Response) Form() (*Form, error) {
	node, err := html.Parse(strings.NewReader(r.Body))
	if err != nil {
		return nil, fmt.Errorf("parsing page at %s: %w", r.url, err)
	}
	formNode := findElement(node, "form")
	if formNode == nil {
		return nil, fmt.Errorf("no form found in page at %s", r.url)
	}
	form := &Form{
		Action: attr(formNode, "action"),
		Method: attr(formNode, "method"),
		fields: url.Values{},
	}
	if form.Action == "" {
		form.Action = r.url.RequestURI()
	}
	if form.Method == "" {
		form.Method = http.MethodGet
	}
	collectFields(formNode, form.fields)
	return form, nil
}

// ClickTarget returns the href of the first link whose text contains name.
func (r *Response) ClickTarget(name string) (string, error) {
	node, err := html.Parse(strings.NewReader(r.Body))
	if err != nil {
		return "", fmt.Errorf("parsing page at %s: %w", r.url, err)
	}
	var href string
	walk(node, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "a" && strings.Contains(text(n), name) {
			href = attr(n, "href")
			return false
		}
		return true
	})
	if href == "" {
		return "", fmt.Errorf("no link matching %q in page at %s", name, r.url)
	}
	return href, nil
}

// walk does a depth-first traversal, stopping when fn returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

func findElement(root *html.Node, tag string) *html.Node {
	var found *html.Node
	walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == tag {
			found = n
			return false
		}
		return true
	})
	return found
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func text(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		return true
	})
	return sb.String()
}
