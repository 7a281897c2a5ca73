package source

import (
	"regexp"
	"strings"
	"unicode"

	"treemark/pkg/errors"
	"treemark/pkg/tree"
)

// LoadConst reads a TS or JS source file and parses the object literal bound
// to the named constant.
func LoadConst(path, name string) (*tree.Node, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	literal, err := ExtractConst(string(data), name)
	if err != nil {
		return nil, err
	}
	return ParseLiteral(literal)
}

// ExtractConst locates the first top-level `const <name> = { ... }`
// declaration (optionally `export const`) in src and returns the substring
// spanning the balanced braces, outer braces included. Later declarations
// with the same name are ignored.
//
// Brace counting skips braces inside single/double/backtick string literals
// and inside line or block comments, so interpolated text cannot throw the
// depth off.
func ExtractConst(src, name string) (string, error) {
	if err := errors.ValidateConstName(name); err != nil {
		return "", err
	}

	re := regexp.MustCompile(`(?m)^[ \t]*(?:export\s+)?const\s+` + regexp.QuoteMeta(name) + `\s*=`)
	loc := re.FindStringIndex(src)
	if loc == nil {
		return "", errors.New(errors.ErrCodeConstNotFound, "constant %q not found", name)
	}

	rest := src[loc[1]:]
	open := -1
	for i, r := range rest {
		if unicode.IsSpace(r) {
			continue
		}
		if r == '{' {
			open = i
		}
		break
	}
	if open < 0 {
		return "", errors.New(errors.ErrCodeUnbalancedBrace, "constant %q is not assigned an object literal", name)
	}

	body, ok := balancedBraces(rest[open:])
	if !ok {
		return "", errors.New(errors.ErrCodeUnbalancedBrace, "unbalanced braces in literal for constant %q", name)
	}
	return body, nil
}

// balancedBraces returns the prefix of text spanning the balanced braces
// starting at text[0] == '{'. It reports false when the depth never returns
// to zero.
func balancedBraces(text string) (string, bool) {
	var (
		depth   int
		quote   rune // active string delimiter, 0 when outside strings
		escaped bool
		inLine  bool // inside a // comment
		inBlock bool // inside a /* */ comment
	)

	for i, r := range text {
		switch {
		case escaped:
			escaped = false
		case inLine:
			if r == '\n' {
				inLine = false
			}
		case inBlock:
			if r == '/' && i > 0 && text[i-1] == '*' {
				inBlock = false
			}
		case quote != 0:
			if r == '\\' {
				escaped = true
			} else if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'' || r == '`':
			quote = r
		case r == '/' && i+1 < len(text) && text[i+1] == '/':
			inLine = true
		case r == '/' && i+1 < len(text) && text[i+1] == '*':
			inBlock = true
		case r == '{':
			depth++
		case r == '}':
			depth--
			if depth == 0 {
				return text[:i+1], true
			}
		}
	}
	return "", false
}

// splitStructural rewrites literal text into one structural token per line:
// a newline follows every `{`, `[` and `,` and precedes every `}` and `]`,
// counting only characters outside strings. Comments are dropped. The result
// parses identically whether the source literal was single-line or indented.
func splitStructural(text string) []string {
	var (
		b       strings.Builder
		quote   rune
		escaped bool
	)

	for i := 0; i < len(text); i++ {
		c := text[i]

		if quote != 0 {
			b.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case rune(c) == quote:
				quote = 0
			}
			continue
		}

		switch c {
		case '"', '\'', '`':
			quote = rune(c)
			b.WriteByte(c)
		case '/':
			if i+1 < len(text) && text[i+1] == '/' {
				for i < len(text) && text[i] != '\n' {
					i++
				}
				b.WriteByte('\n')
			} else if i+1 < len(text) && text[i+1] == '*' {
				end := strings.Index(text[i+2:], "*/")
				if end < 0 {
					i = len(text)
				} else {
					i += 2 + end + 1
				}
			} else {
				b.WriteByte(c)
			}
		case '{', '[':
			b.WriteByte(c)
			b.WriteByte('\n')
		case '}', ']':
			b.WriteByte('\n')
			b.WriteByte(c)
		case ',':
			b.WriteByte(c)
			b.WriteByte('\n')
		default:
			b.WriteByte(c)
		}
	}

	return strings.Split(b.String(), "\n")
}
