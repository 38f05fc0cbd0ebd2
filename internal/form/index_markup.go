package form

import (
	"bytes"
	"html/template"

	"github.com/metafind/metafind/internal/index"
)

const shortIndexTemplate = `{{- range $i, $l := .Links}}{{if $i}} {{end}}<a href="{{$.Action}}?{{$l.Query}}">{{$l.Label}}</a>{{end}}
`

const mediumIndexTemplate = `<ul class="infofind-index">
{{- range .Links}}
<li><a href="{{$.Action}}?{{.Query}}">{{.Label}}</a></li>
{{- end}}
</ul>
`

const longIndexTemplate = `{{- range .Groups}}
<h3>{{.Letter}}</h3>
<ul class="infofind-index">
{{- range .Links}}
<li><a href="{{$.Action}}?{{.Query}}">{{.Label}}</a></li>
{{- end}}
</ul>
{{- end}}
`

var (
	shortIndex  = template.Must(template.New("shortindex").Parse(shortIndexTemplate))
	mediumIndex = template.Must(template.New("mediumindex").Parse(mediumIndexTemplate))
	longIndex   = template.Must(template.New("longindex").Parse(longIndexTemplate))
)

type indexData struct {
	Action string
	Links  []index.Link
	Groups []index.Group
}

// Index renders the markup for a built index against the given form action.
// An index with no values renders its style-appropriate empty container.
func Index(idx *index.Index, action string) (string, error) {
	data := indexData{Action: action, Links: idx.Links, Groups: idx.Groups}

	tmpl := mediumIndex
	switch idx.Style {
	case index.StyleShort:
		tmpl = shortIndex
	case index.StyleLong:
		tmpl = longIndex
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
