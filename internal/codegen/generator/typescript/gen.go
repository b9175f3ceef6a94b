package typescript

import (
	"fmt"
	"io"

	"github.com/EpicYoshiMaster/reducer-code-generator/internal/codegen/meta"
)

// Emitter writes one block of generated text for a template.
type Emitter func(w io.Writer, t *meta.Template) error

// Section is a named emitter.
type Section struct {
	Name string
	Emit Emitter
}

// Sections returns every emitter in output order.
func Sections() []Section {
	return []Section{
		{Name: "constants", Emit: GenerateConstants},
		{Name: "actions", Emit: GenerateActions},
		{Name: "reducer", Emit: GenerateReducerCases},
		{Name: "creators", Emit: GenerateActionCreators},
		{Name: "handlers", Emit: GenerateHandlers},
		{Name: "inputs", Emit: GenerateInputRows},
	}
}

// SectionNames lists the names accepted by SelectSections.
func SectionNames() []string {
	all := Sections()
	names := make([]string, 0, len(all))
	for _, s := range all {
		names = append(names, s.Name)
	}
	return names
}

// SelectSections returns the named sections in output order, regardless of
// the order they were requested in. No names selects everything.
func SelectSections(names []string) ([]Section, error) {
	all := Sections()
	if len(names) == 0 {
		return all, nil
	}

	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	for _, n := range names {
		if !isSection(all, n) {
			return nil, fmt.Errorf("unknown section '%s' (supported: %v)", n, SectionNames())
		}
	}

	var out []Section
	for _, s := range all {
		if want[s.Name] {
			out = append(out, s)
		}
	}
	return out, nil
}

func isSection(all []Section, name string) bool {
	for _, s := range all {
		if s.Name == name {
			return true
		}
	}
	return false
}

// Generate writes every section to w in output order.
func Generate(w io.Writer, t *meta.Template) error {
	for _, s := range Sections() {
		if err := s.Emit(w, t); err != nil {
			return fmt.Errorf("generate %s: %w", s.Name, err)
		}
	}
	return nil
}
