package typescript

import (
	"io"

	"github.com/EpicYoshiMaster/reducer-code-generator/internal/codegen/meta"
)

const reducerTemplateTS = `	switch(action.type) {
{{range .Properties}}		case {{.Constant}}:
			return {
				...state,
				{{.Name}}: action.payload.{{.Name}}
			};
{{end}}		default:
			return state;
	}

`

var reducerTmpl = parse("reducer", reducerTemplateTS)

// GenerateReducerCases writes the reducer switch with one case per property.
func GenerateReducerCases(w io.Writer, t *meta.Template) error {
	return execute(w, reducerTmpl, t)
}
