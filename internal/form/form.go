// Package form renders the search form and index markup. It is presentation
// glue only: pure functions from configuration and built structures to HTML,
// with no reach into matching or indexing.
package form

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/metafind/metafind/internal/config"
)

const searchFormTemplate = `<form method="get" action="{{.Action}}">
<table class="infofind">
{{- range .Fields}}
<tr><td>{{.Label}}</td><td>
{{- if eq .Kind "limited"}}<select name="{{.Param}}"><option value=""></option>
{{- range .Allowed}}<option value="{{.}}">{{.}}</option>{{end}}</select>
{{- else if eq .Kind "text"}}<textarea name="{{.Param}}" rows="4" cols="40"></textarea>
{{- else}}<input type="text" name="{{.Param}}" />
{{- end}}</td></tr>
{{- end}}
</table>
<input type="submit" name="{{.Trigger}}" value="Find" />
</form>
`

type formField struct {
	Label   string
	Param   string
	Kind    string
	Allowed []string
}

type formData struct {
	Action  string
	Trigger string
	Fields  []formField
}

var searchForm = template.Must(template.New("searchform").Parse(searchFormTemplate))

// Action joins the configured site base and info path into the form's submit
// target.
func Action(cfg *config.Config) string {
	base := strings.TrimSuffix(cfg.BaseURL, "/")
	path := strings.TrimPrefix(cfg.InfoPath, "/")
	if path == "" {
		return base + "/"
	}
	return base + "/" + path
}

// Search renders the field-based search form for every declared field in
// display order.
func Search(cfg *config.Config) (string, error) {
	data := formData{
		Action:  Action(cfg),
		Trigger: cfg.TriggerParam,
	}

	for _, name := range cfg.FieldNames() {
		spec := cfg.Spec(name)
		data.Fields = append(data.Fields, formField{
			Label:   name,
			Param:   cfg.FieldParam(name),
			Kind:    string(spec.Type),
			Allowed: spec.Allowed,
		})
	}

	var buf bytes.Buffer
	if err := searchForm.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
