// Package page describes one routable dashboard page: its path, its layout
// and the callbacks recomputing charts when a control changes.
package page

import (
	"encoding/json"
	"strings"

	"github.com/bosco-l/multipage-dashboard/pkg/chart"
	"github.com/bosco-l/multipage-dashboard/pkg/layout"
	"github.com/pkg/errors"
)

// UpdateFunc computes a chart from the JSON encoded value of a control.
type UpdateFunc func(value json.RawMessage) (chart.Figure, error)

// Callback binds a control to the graph it redraws.
type Callback struct {
	// Output is the identity of the graph placeholder replaced by Update.
	Output string
	Update UpdateFunc
}

// Descriptor is immutable once registered in the shell.
type Descriptor struct {
	Path      string
	Name      string
	Title     string
	Layout    func() layout.Node
	Callbacks map[string]Callback
}

// Validate checks that every callback is wired to controls and graphs
// existing in the layout.
func (d Descriptor) Validate() error {
	if d.Path == "" || strings.HasPrefix(d.Path, "_") || strings.ContainsAny(d.Path, "/?#") {
		return errors.Errorf("invalid page path %q", d.Path)
	}
	if d.Layout == nil {
		return errors.Errorf("page %q has no layout", d.Path)
	}
	root := d.Layout()
	if err := root.Validate(); err != nil {
		return errors.Wrapf(err, "page %q", d.Path)
	}
	for id, callback := range d.Callbacks {
		node, ok := root.Find(id)
		if !ok || !node.IsControl() {
			return errors.Errorf("page %q: callback bound to unknown control %q", d.Path, id)
		}
		graph, ok := root.Find(callback.Output)
		if !ok || graph.Kind != layout.KindGraph {
			return errors.Errorf("page %q: control %q outputs to unknown graph %q", d.Path, id, callback.Output)
		}
		if callback.Update == nil {
			return errors.Errorf("page %q: control %q has no update function", d.Path, id)
		}
	}
	return nil
}

// Owns tells whether controlID is routed to this page.
func (d Descriptor) Owns(controlID string) bool {
	_, ok := d.Callbacks[controlID]
	return ok
}

// ControlIDs returns identities of controls with a callback, in layout order.
func (d Descriptor) ControlIDs() []string {
	ids := []string{}
	for _, id := range d.Layout().IDs(layout.KindChecklist, layout.KindRangeSlider) {
		if d.Owns(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// Default returns the initial value of a control as declared in the layout.
func (d Descriptor) Default(controlID string) (json.RawMessage, error) {
	node, ok := d.Layout().Find(controlID)
	if !ok {
		return nil, errors.Errorf("page %q has no control %q", d.Path, controlID)
	}
	return node.DefaultValue()
}
