package typescript

import (
	"io"

	"github.com/EpicYoshiMaster/reducer-code-generator/internal/codegen/meta"
)

const actionsTemplateTS = `{{range .Properties}}type {{.ActionName}} = {
	type: typeof {{.Constant}},
	payload: {
		{{.Name}}: {{.Type}};
	};
};

{{end}}export type {{.ActionUnionName}} = 
{{$props := .Properties}}{{range $i, $p := $props}}	{{$p.ActionName}}{{if last $i $props}};{{else}} |{{end}}
{{end}}
`

var actionsTmpl = parse("actions", actionsTemplateTS)

// GenerateActions writes a record type per property followed by the union
// alias of all of them.
func GenerateActions(w io.Writer, t *meta.Template) error {
	return execute(w, actionsTmpl, t)
}
