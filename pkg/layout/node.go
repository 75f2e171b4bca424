// Package layout models page layouts as a tree of tagged components. Every
// interactive component carries a stable identity used to route updates.
package layout

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Kind tags the variant of a node.
type Kind string

// Supported node variants.
const (
	KindContainer   Kind = "Div"
	KindHeading     Kind = "Heading"
	KindText        Kind = "P"
	KindRule        Kind = "Hr"
	KindNav         Kind = "Nav"
	KindLink        Kind = "Link"
	KindGraph       Kind = "Graph"
	KindChecklist   Kind = "Checklist"
	KindRangeSlider Kind = "RangeSlider"
)

// Node is one element of the layout tree. Variant specific properties live
// in the Checklist and Slider fields.
type Node struct {
	Kind      Kind              `json:"type"`
	ID        string            `json:"id,omitempty"`
	Text      string            `json:"text,omitempty"`
	Level     int               `json:"level,omitempty"`
	Class     string            `json:"className,omitempty"`
	Style     map[string]string `json:"style,omitempty"`
	Href      string            `json:"href,omitempty"`
	Children  []Node            `json:"children,omitempty"`
	Checklist *ChecklistProps   `json:"checklist,omitempty"`
	Slider    *RangeSliderProps `json:"rangeSlider,omitempty"`
}

// ChecklistProps configures a multi-select checklist.
type ChecklistProps struct {
	Options []string `json:"options"`
	Value   []string `json:"value"`
	Inline  bool     `json:"inline"`
}

// Div groups children.
func Div(style map[string]string, children ...Node) Node {
	return Node{Kind: KindContainer, Style: style, Children: children}
}

// Heading is a h1-h6 title.
func Heading(level int, text, class string) Node {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return Node{Kind: KindHeading, Level: level, Text: text, Class: class}
}

// P is a paragraph of text.
func P(text string) Node {
	return Node{Kind: KindText, Text: text}
}

// Hr is a horizontal rule.
func Hr() Node {
	return Node{Kind: KindRule}
}

// Nav is a navigation bar made of links.
func Nav(links ...Node) Node {
	return Node{Kind: KindNav, Children: links}
}

// Link points to href. The id is optional and only used for styling.
func Link(id, text, href string) Node {
	return Node{Kind: KindLink, ID: id, Text: text, Href: href}
}

// Graph is a placeholder replaced by a chart on every update.
func Graph(id string) Node {
	return Node{Kind: KindGraph, ID: id}
}

// Checklist is a multi-select control.
func Checklist(id string, options, value []string, inline bool) Node {
	return Node{
		Kind: KindChecklist,
		ID:   id,
		Checklist: &ChecklistProps{
			Options: append([]string(nil), options...),
			Value:   append([]string(nil), value...),
			Inline:  inline,
		},
	}
}

// IsControl tells whether node produces values routed to update functions.
func (n Node) IsControl() bool {
	return n.Kind == KindChecklist || n.Kind == KindRangeSlider
}

// DefaultValue returns initial control value as JSON.
func (n Node) DefaultValue() (json.RawMessage, error) {
	switch {
	case n.Kind == KindChecklist && n.Checklist != nil:
		return json.Marshal(n.Checklist.Value)
	case n.Kind == KindRangeSlider && n.Slider != nil:
		return json.Marshal(n.Slider.Value)
	}
	return nil, errors.Errorf("node %q of kind %s has no value", n.ID, n.Kind)
}

// Walk visits node and its descendants depth first until visit returns false.
func (n Node) Walk(visit func(Node) bool) bool {
	if !visit(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(visit) {
			return false
		}
	}
	return true
}

// Find returns the node with given identity.
func (n Node) Find(id string) (Node, bool) {
	var found Node
	ok := false
	n.Walk(func(node Node) bool {
		if node.ID == id {
			found, ok = node, true
			return false
		}
		return true
	})
	return found, ok
}

// IDs returns identities of nodes of given kinds, in document order.
func (n Node) IDs(kinds ...Kind) []string {
	ids := []string{}
	n.Walk(func(node Node) bool {
		if node.ID == "" {
			return true
		}
		for _, kind := range kinds {
			if node.Kind == kind {
				ids = append(ids, node.ID)
				break
			}
		}
		return true
	})
	return ids
}

// Validate checks that identities are unique and controls are well formed.
func (n Node) Validate() error {
	seen := map[string]bool{}
	var err error
	n.Walk(func(node Node) bool {
		if node.ID != "" {
			if seen[node.ID] {
				err = errors.Errorf("duplicate component id %q", node.ID)
				return false
			}
			seen[node.ID] = true
		}
		if node.IsControl() && node.ID == "" {
			err = errors.Errorf("%s control without id", node.Kind)
			return false
		}
		if node.Kind == KindRangeSlider {
			if err = node.Slider.validate(); err != nil {
				err = errors.Wrapf(err, "range slider %q", node.ID)
				return false
			}
		}
		return true
	})
	return err
}
