package render

import (
	"html/template"
	"io"
)

var tableTemplate = template.Must(template.New("table").Parse(`<section class="table">
{{- with .Title}}
<h2>{{.}}</h2>
{{- end}}
<table>
<thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{- range .Rows}}
<tr>{{range .}}<td{{with .Mark.String}} class="{{.}}"{{end}}>{{.Text}}</td>{{end}}</tr>
{{- end}}
</tbody>
{{- with .Footer}}
<tfoot><tr>{{range .}}<td{{with .Mark.String}} class="{{.}}"{{end}}>{{.Text}}</td>{{end}}</tr></tfoot>
{{- end}}
</table>
{{- with .Note}}
<p class="note">{{.}}</p>
{{- end}}
</section>
`))

// WriteHTML writes the table as an HTML fragment. Marked cells carry the
// mark's name as their class.
func (t *Table) WriteHTML(w io.Writer) error {
	return tableTemplate.Execute(w, t)
}
