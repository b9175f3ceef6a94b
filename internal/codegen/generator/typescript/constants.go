package typescript

import (
	"io"

	"github.com/EpicYoshiMaster/reducer-code-generator/internal/codegen/meta"
)

const constantsTemplateTS = `{{range .Properties}}export const {{.Constant}} = '{{.Constant}}';
{{end}}
`

var constantsTmpl = parse("constants", constantsTemplateTS)

// GenerateConstants writes one action tag constant per property.
func GenerateConstants(w io.Writer, t *meta.Template) error {
	return execute(w, constantsTmpl, t)
}
