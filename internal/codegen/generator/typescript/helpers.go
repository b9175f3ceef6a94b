package typescript

import (
	"fmt"
	"io"
	"text/template"

	"github.com/EpicYoshiMaster/reducer-code-generator/internal/codegen/meta"
)

func last(i int, props []meta.Property) bool { return i == len(props)-1 }

func parse(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(template.FuncMap{
		"last": last,
	}).Parse(text))
}

func execute(w io.Writer, tmpl *template.Template, t *meta.Template) error {
	if err := tmpl.Execute(w, t); err != nil {
		return fmt.Errorf("execute %s template: %w", tmpl.Name(), err)
	}
	return nil
}
