package typescript

import (
	"io"

	"github.com/EpicYoshiMaster/reducer-code-generator/internal/codegen/meta"
)

const inputsTemplateTS = `{{$t := .}}{{range .Properties}}				<InputRow>
					<label htmlFor="{{.Name}}">{{.Label}}</label>
{{if .IsBoolean}}					<Checkbox id="{{.Name}}" data-checked={{"{"}}{{$t.StatePath .}}} onClick={{"{"}}{{.HandlerName}}} />
{{else}}					<input id="{{.Name}}" type="{{.Type}}" value={{"{"}}{{$t.StatePath .}}} onChange={{"{"}}{{.HandlerName}}} />
{{end}}				</InputRow>

{{end}}
`

var inputsTmpl = parse("inputs", inputsTemplateTS)

// GenerateInputRows writes an InputRow per property: a checkbox for boolean
// properties, a typed input otherwise.
func GenerateInputRows(w io.Writer, t *meta.Template) error {
	return execute(w, inputsTmpl, t)
}
