package meta

import (
	"fmt"
	"strings"

	"github.com/EpicYoshiMaster/reducer-code-generator/internal/codegen/common"
)

// Template holds the parsed reducer description shared by every emission
// routine. It is read once and never mutated.
type Template struct {
	RootReducer string
	SubReducer  string
	Properties  []Property // insertion order of the source mapping
}

// Property is one state field of the sub-reducer.
type Property struct {
	Name string // e.g. "is_alive"
	Type string // passed through literally, e.g. "boolean", "number"
}

// PropertyKind classifies a property type string.
type PropertyKind int

const (
	KindOther PropertyKind = iota
	KindBoolean
	KindNumber
	KindText
)

func (k PropertyKind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	default:
		return "other"
	}
}

// Kind reports the property's kind. Only an exact "boolean" selects the
// boolean code paths.
func (p Property) Kind() PropertyKind {
	switch p.Type {
	case "boolean":
		return KindBoolean
	case "number":
		return KindNumber
	case "string":
		return KindText
	default:
		return KindOther
	}
}

func (p Property) IsBoolean() bool { return p.Kind() == KindBoolean }

// Identifier is the Pascal case suffix used for per-property names.
func (p Property) Identifier() string { return common.ToPascalCase(p.Name, false) }

// Label is the Title Case name shown to a user.
func (p Property) Label() string { return common.ToTitleCase(p.Name) }

// Constant is the action tag constant, e.g. SET_IS_ALIVE.
func (p Property) Constant() string { return common.ToConstantName(p.Name) }

// ActionName is the per-property action record type, e.g. SetIsAliveAction.
func (p Property) ActionName() string { return "Set" + p.Identifier() + "Action" }

// CreatorName is the action creator function, e.g. setIsAlive.
func (p Property) CreatorName() string { return "set" + p.Identifier() }

// HandlerName is the UI callback, e.g. handleSetIsAlive.
func (p Property) HandlerName() string { return "handleSet" + p.Identifier() }

// ActionUnionName is the alias listing every per-property action.
func (t *Template) ActionUnionName() string {
	return common.ToPascalCase(t.SubReducer, false) + "Action"
}

// CreatorReturnType is the declared return type of the action creators.
// Falls back to the union alias when no root reducer is named.
func (t *Template) CreatorReturnType() string {
	if t.RootReducer == "" {
		return t.ActionUnionName()
	}
	return common.ToPascalCase(t.RootReducer, false) + "Action"
}

// StatePath returns the expression reading a property from UI state,
// e.g. state.player.is_alive.
func (t *Template) StatePath(p Property) string {
	return "state." + t.SubReducer + "." + p.Name
}

// FieldError is a single template problem.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Message
}

// ValidationError lists every problem found in a template.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.String())
	}
	return fmt.Sprintf("invalid template: %s", strings.Join(parts, "; "))
}

// Validate checks the fields every emission routine relies on.
func (t *Template) Validate() error {
	var errs []FieldError
	if strings.TrimSpace(t.SubReducer) == "" {
		errs = append(errs, FieldError{Field: "sub_reducer", Message: "is required"})
	}
	if len(t.Properties) == 0 {
		errs = append(errs, FieldError{Field: "properties", Message: "must contain at least one property"})
	}
	for i, p := range t.Properties {
		if strings.TrimSpace(p.Name) == "" {
			errs = append(errs, FieldError{Field: fmt.Sprintf("properties[%d]", i), Message: "name is empty"})
		}
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
