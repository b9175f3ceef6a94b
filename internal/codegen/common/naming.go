package common

import (
	"regexp"
	"strings"
)

// spaceClass is the ECMAScript \s set: ASCII whitespace plus \v, NBSP,
// the Unicode space separators, line/paragraph separators and BOM.
const spaceClass = `\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

var (
	separatorRun = regexp.MustCompile(`[-_]+`)
	nonWordChar  = regexp.MustCompile(`[^\w` + spaceClass + `]`)
	wordStart    = regexp.MustCompile(`[` + spaceClass + `]+([^\n\r\x{2028}\x{2029}])(\w*)`)
	firstWord    = regexp.MustCompile(`\w`)
)

// ToPascalCase converts snake, kebab or space separated identifiers to Pascal case.
//
//	ToPascalCase("my_cool_property", false) -> "MyCoolProperty"
//	ToPascalCase("my_cool_property", true)  -> "My Cool Property"
//
// The input is lower-cased first, so multi-word Pascal input collapses to a
// single capitalised word unless preserveSpaces is set.
func ToPascalCase(s string, preserveSpaces bool) string {
	if s == "" {
		return ""
	}

	out := strings.ToLower(s)
	out = separatorRun.ReplaceAllString(out, " ")
	out = nonWordChar.ReplaceAllString(out, "")
	out = wordStart.ReplaceAllStringFunc(out, func(m string) string {
		sub := wordStart.FindStringSubmatch(m)
		var b strings.Builder
		if preserveSpaces {
			b.WriteByte(' ')
		}
		b.WriteString(strings.ToUpper(sub[1]))
		b.WriteString(sub[2])
		return b.String()
	})

	if loc := firstWord.FindStringIndex(out); loc != nil {
		out = out[:loc[0]] + strings.ToUpper(out[loc[0]:loc[1]]) + out[loc[1]:]
	}
	return out
}

// ToTitleCase is ToPascalCase with word separators kept as single spaces.
// Used for labels shown to a user.
func ToTitleCase(s string) string {
	return ToPascalCase(s, true)
}

// ToConstantName returns the action tag constant for a property: the name
// upper-cased with its separators untouched, prefixed with SET_.
func ToConstantName(property string) string {
	return "SET_" + strings.ToUpper(property)
}

