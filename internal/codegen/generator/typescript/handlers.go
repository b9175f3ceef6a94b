package typescript

import (
	"io"

	"github.com/EpicYoshiMaster/reducer-code-generator/internal/codegen/meta"
)

const handlersTemplateTS = `{{$t := .}}{{range .Properties}}	const {{.HandlerName}} = useCallback(() => dispatch({{.CreatorName}}
{{- if .IsBoolean}}(!{{$t.StatePath .}})), [{{$t.StatePath .}}, dispatch]);
{{else}}(Number(event?.target.value))), [dispatch]);
{{end}}{{end}}
`

var handlersTmpl = parse("handlers", handlersTemplateTS)

// GenerateHandlers writes a memoized callback per property. Boolean
// properties toggle the current state; everything else dispatches the
// numeric value of the change event.
func GenerateHandlers(w io.Writer, t *meta.Template) error {
	return execute(w, handlersTmpl, t)
}
