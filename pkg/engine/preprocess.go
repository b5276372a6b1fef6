package engine

import "strings"

// kwPrefix marks keyword strings produced by preprocessSource.
const kwPrefix = "__kw_"

// preprocessSource rewrites box DSL source into something zygomys accepts:
//
//   - :keyword becomes the string "__kw_keyword", so keywords never collide
//     with user-defined globals. := is left alone.
//   - A hyphen between an identifier character and a letter becomes an
//     underscore (resize-edge -> resize_edge). zygomys reads a bare hyphen
//     as subtraction.
//   - ; and ;; line comments become // comments.
//
// String literals, both "..." and `...`, pass through untouched.
func preprocessSource(source string) string {
	var out strings.Builder
	out.Grow(len(source) + len(source)/4)

	b := source
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c == '"' || c == '`':
			j := skipString(b, i)
			out.WriteString(b[i:j])
			i = j

		case c == ';':
			out.WriteString("//")
			i++
			for i < len(b) && b[i] == ';' {
				i++
			}
			j := i
			for j < len(b) && b[j] != '\n' {
				j++
			}
			out.WriteString(b[i:j])
			i = j

		case c == ':' && i+1 < len(b) && b[i+1] == '=':
			out.WriteString(":=")
			i += 2

		case c == ':' && i+1 < len(b) && isLetter(b[i+1]):
			j := i + 1
			for j < len(b) && isKWChar(b[j]) {
				j++
			}
			out.WriteByte('"')
			out.WriteString(kwPrefix)
			out.WriteString(b[i+1 : j])
			out.WriteByte('"')
			i = j

		case c == '-' && i > 0 && i+1 < len(b) && isIdentChar(b[i-1]) && isLetter(b[i+1]):
			out.WriteByte('_')
			i++

		default:
			out.WriteByte(c)
			i++
		}
	}
	return out.String()
}

// skipString returns the index just past the string literal opening at i.
// Backslash escapes only apply inside double quotes. An unterminated literal
// runs to the end of the source.
func skipString(b string, i int) int {
	quote := b[i]
	j := i + 1
	for j < len(b) && b[j] != quote {
		if quote == '"' && b[j] == '\\' && j+1 < len(b) {
			j += 2
			continue
		}
		j++
	}
	if j < len(b) {
		j++
	}
	return j
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isKWChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}
