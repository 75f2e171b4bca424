package layout

import (
	"bytes"
	"encoding/json"
	"html/template"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

const nodeTemplate = `
{{- define "attrs"}}{{with .ID}} id="{{.}}"{{end}}{{with .Class}} class="{{.}}"{{end}}{{with .Style}} style="{{css .}}"{{end}}{{end}}
{{- define "children"}}{{range .Children}}{{template "node" .}}{{end}}{{end}}
{{- define "node"}}
{{- if eq .Kind "Div"}}<div{{template "attrs" .}}>{{template "children" .}}</div>
{{- else if eq .Kind "Heading"}}
{{- if eq .Level 1}}<h1{{template "attrs" .}}>{{.Text}}</h1>
{{- else if eq .Level 2}}<h2{{template "attrs" .}}>{{.Text}}</h2>
{{- else if eq .Level 3}}<h3{{template "attrs" .}}>{{.Text}}</h3>
{{- else if eq .Level 4}}<h4{{template "attrs" .}}>{{.Text}}</h4>
{{- else if eq .Level 5}}<h5{{template "attrs" .}}>{{.Text}}</h5>
{{- else}}<h6{{template "attrs" .}}>{{.Text}}</h6>{{end}}
{{- else if eq .Kind "P"}}<p{{template "attrs" .}}>{{.Text}}</p>
{{- else if eq .Kind "Hr"}}<hr{{template "attrs" .}}>
{{- else if eq .Kind "Nav"}}<nav class="navbar navbar-expand navbar-light bg-light">{{template "children" .}}</nav>
{{- else if eq .Kind "Link"}}<a class="nav-link"{{with .ID}} id="{{.}}"{{end}} href="{{.Href}}">{{.Text}}</a>
{{- else if eq .Kind "Graph"}}<div id="{{.ID}}" class="dash-graph" data-graph="{{.ID}}"></div>
{{- else if eq .Kind "Checklist"}}{{$node := .}}<div id="{{.ID}}" class="dash-checklist" data-control="checklist">
{{- range .Checklist.Options}}<label class="form-check{{if $node.Checklist.Inline}} form-check-inline{{end}}"><input class="form-check-input" type="checkbox" name="{{$node.ID}}" value="{{.}}"{{if contains $node.Checklist.Value .}} checked{{end}}> {{.}}</label>{{end -}}
</div>
{{- else if eq .Kind "RangeSlider"}}<div id="{{.ID}}" class="dash-range-slider" data-control="range-slider" data-value="{{json .Slider.Value}}">
{{- $slider := .Slider}}{{range $i, $v := .Slider.Value}}<input type="range" class="form-range" data-handle="{{$i}}" min="{{$slider.Min}}" max="{{$slider.Max}}" step="{{$slider.Step}}" value="{{$v}}" list="{{$.ID}}-marks">{{end}}<datalist id="{{$.ID}}-marks">
{{- range .Slider.Ticks}}<option value="{{.}}"{{with $slider.Label .}} label="{{.}}"{{end}}></option>{{end -}}
</datalist></div>
{{- end}}
{{- end}}
{{- template "node" .}}`

var nodeTmpl = template.Must(template.New("layout").Funcs(template.FuncMap{
	"css":      styleAttr,
	"json":     jsonAttr,
	"contains": contains,
}).Parse(nodeTemplate))

// Render writes node as HTML to w.
func Render(w io.Writer, node Node) error {
	return errors.Wrap(nodeTmpl.Execute(w, node), "cannot render layout")
}

// HTML renders node into a fragment which can be embedded in other templates.
func HTML(node Node) (template.HTML, error) {
	var buf bytes.Buffer
	if err := Render(&buf, node); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func styleAttr(style map[string]string) template.CSS {
	keys := make([]string, 0, len(style))
	for key := range style {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	declarations := make([]string, 0, len(keys))
	for _, key := range keys {
		declarations = append(declarations, key+": "+style[key])
	}
	return template.CSS(strings.Join(declarations, "; "))
}

func jsonAttr(value interface{}) (string, error) {
	encoded, err := json.Marshal(value)
	return string(encoded), err
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
