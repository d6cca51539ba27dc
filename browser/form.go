package browser

import (
	"net/url"

	"golang.org/x/net/html"
)

// Form is a parsed HTML form. Fields start out with the values present in
// the page; tests overwrite the ones they care about with Set, then submit
// through Browser.Submit.
type Form struct {
	Action string
	Method string
	fields url.Values
}

// Set overwrites the value of one form field.
func (f *Form) Set(name, value string) {
	f.fields.Set(name, value)
}

// Get returns the current value of one form field.
func (f *Form) Get(name string) string {
	return f.fields.Get(name)
}

// Values returns a copy of the form's current field values.
func (f *Form) Values() url.Values {
	out := url.Values{}
	for k, vs := range f.fields {
		out[k] = append([]string(nil), vs...)
	}
	return out
}

func collectFields(formNode *html.Node, fields url.Values) {
	walk(formNode, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}
		switch n.Data {
		case "input":
			if name := attr(n, "name"); name != "" {
				fields.Set(name, attr(n, "value"))
			}
		case "textarea":
			if name := attr(n, "name"); name != "" {
				fields.Set(name, text(n))
			}
		case "select":
			if name := attr(n, "name"); name != "" {
				if opt := findElement(n, "option"); opt != nil {
					fields.Set(name, attr(opt, "value"))
				}
			}
		}
		return true
	})
}
