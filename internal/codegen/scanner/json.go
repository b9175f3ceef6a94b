package scanner

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/EpicYoshiMaster/reducer-code-generator/internal/codegen/meta"
)

// parseJSON walks the token stream so property order and duplicate keys
// are visible, which a decode into a map would lose.
func parseJSON(data []byte) (*meta.Template, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty document")
	}
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("offset %d: expected an object at top level", dec.InputOffset())
	}

	t := &meta.Template{}
	for dec.More() {
		key, err := objectKey(dec)
		if err != nil {
			return nil, err
		}
		switch key {
		case keyRootReducer:
			t.RootReducer, err = jsonString(dec, key)
		case keySubReducer:
			t.SubReducer, err = jsonString(dec, key)
		case keyProperties:
			t.Properties, err = jsonProperties(dec)
		default:
			err = skipValue(dec)
		}
		if err != nil {
			return nil, err
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		return nil, fmt.Errorf("offset %d: unexpected data after top-level object", dec.InputOffset())
	}
	return t, nil
}

func objectKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("offset %d: expected an object key", dec.InputOffset())
	}
	return key, nil
}

// jsonString reads a scalar field. Numbers and booleans keep their literal
// text; null reads as empty.
func jsonString(dec *json.Decoder, field string) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	if tok == nil {
		return "", nil
	}
	s, ok := scalarLiteral(tok)
	if !ok {
		return "", fmt.Errorf("offset %d: %s must be a string", dec.InputOffset(), field)
	}
	return s, nil
}

func jsonProperties(dec *json.Decoder) ([]meta.Property, error) {
	offset := dec.InputOffset()
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if tok == nil {
		return nil, nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("offset %d: %s must be an object of name to type", offset, keyProperties)
	}

	var props []meta.Property
	seen := map[string]int64{}
	for dec.More() {
		keyOffset := dec.InputOffset()
		name, err := objectKey(dec)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[name]; dup {
			return nil, fmt.Errorf("offset %d: duplicate property %q (first defined at offset %d)", keyOffset, name, prev)
		}
		seen[name] = keyOffset

		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		// Types pass through as written, null included.
		typ := "null"
		if tok != nil {
			s, ok := scalarLiteral(tok)
			if !ok {
				return nil, fmt.Errorf("offset %d: %s.%s must be a string", dec.InputOffset(), keyProperties, name)
			}
			typ = s
		}
		props = append(props, meta.Property{Name: name, Type: typ})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return props, nil
}

func scalarLiteral(tok json.Token) (string, bool) {
	switch v := tok.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

// skipValue consumes one value of any shape.
func skipValue(dec *json.Decoder) error {
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
		if depth == 0 {
			return nil
		}
	}
}
