package typescript

import (
	"io"

	"github.com/EpicYoshiMaster/reducer-code-generator/internal/codegen/meta"
)

const creatorsTemplateTS = `{{$ret := .CreatorReturnType}}{{range .Properties}}export function {{.CreatorName}}({{.Name}}: {{.Type}}): {{$ret}} {
	return {
		type: {{.Constant}},
		payload: { {{.Name}} },
	};
};

{{end}}
`

var creatorsTmpl = parse("creators", creatorsTemplateTS)

// GenerateActionCreators writes an exported creator function per property.
func GenerateActionCreators(w io.Writer, t *meta.Template) error {
	return execute(w, creatorsTmpl, t)
}
