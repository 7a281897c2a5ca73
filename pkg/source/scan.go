package source

import (
	"regexp"
	"strings"

	"treemark/pkg/errors"
	"treemark/pkg/tree"
)

// lineKind classifies one structural line of an object literal.
type lineKind int

const (
	lineBlank lineKind = iota
	lineComment
	lineOpenMapping  // `key: {` or a bare `{`
	lineOpenSequence // `key: [` or a bare `[`
	lineClose        // `}`, `]`, optionally with commas or semicolons
	lineKeyValue     // `key: value`, or a bare sequence item
)

// scannedLine is the scanner's view of a single line: its classification
// plus the pieces the parser needs.
type scannedLine struct {
	kind   lineKind
	key    string // mapping key, empty for bare items and openers
	value  string // scalar source text for lineKeyValue
	closes int    // number of levels a close line pops
	number int    // 1-based line number, for diagnostics
	raw    string
}

var (
	identKeyRe  = regexp.MustCompile(`^([A-Za-z0-9_$]+)\s*:\s*(.*)$`)
	quotedKeyRe = regexp.MustCompile(`^(["'` + "`" + `])(.*?)` + `(["'` + "`" + `])\s*:\s*(.*)$`)
)

// scanLine classifies one line of normalized literal text.
func scanLine(raw string, number int) scannedLine {
	s := scannedLine{number: number, raw: raw}
	trimmed := strings.TrimSpace(raw)

	switch {
	case trimmed == "":
		s.kind = lineBlank
		return s
	case strings.HasPrefix(trimmed, "//"), strings.HasPrefix(trimmed, "/*"), strings.HasPrefix(trimmed, "*"):
		s.kind = lineComment
		return s
	}

	if closes, ok := closeCount(trimmed); ok {
		s.kind = lineClose
		s.closes = closes
		return s
	}

	key, rest := splitKey(trimmed)
	s.key = key

	value := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rest), ","))
	if i := commentIndex(value); i >= 0 {
		value = strings.TrimSpace(value[:i])
	}

	switch value {
	case "{":
		s.kind = lineOpenMapping
	case "[":
		s.kind = lineOpenSequence
	default:
		// keyed lines are `key: value`; unkeyed lines are bare sequence
		// items, with the whole line as the value
		s.kind = lineKeyValue
		s.value = value
	}
	return s
}

// closeCount reports whether trimmed consists only of closing markers and
// separators, and how many levels it pops.
func closeCount(trimmed string) (int, bool) {
	n := 0
	for _, r := range trimmed {
		switch r {
		case '}', ']':
			n++
		case ',', ';', ' ', '\t':
			// separators after a close are tolerated
		default:
			return 0, false
		}
	}
	if n == 0 {
		return 0, false
	}
	return n, true
}

// splitKey splits a `key: rest` line. It handles unquoted identifier keys
// and quoted keys; anything else is a bare value with an empty key.
func splitKey(trimmed string) (key, rest string) {
	if m := identKeyRe.FindStringSubmatch(trimmed); m != nil {
		return m[1], m[2]
	}
	if m := quotedKeyRe.FindStringSubmatch(trimmed); m != nil && m[1] == m[3] {
		return m[2], m[4]
	}
	return "", trimmed
}

// commentIndex finds the start of an inline // comment outside any string
// literal, or -1.
func commentIndex(value string) int {
	var quote rune
	escaped := false
	for i, r := range value {
		switch {
		case escaped:
			escaped = false
		case quote != 0:
			if r == '\\' {
				escaped = true
			} else if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'' || r == '`':
			quote = r
		case r == '/' && i+1 < len(value) && value[i+1] == '/':
			return i
		}
	}
	return -1
}

// ParseLiteral converts brace-delimited object-literal text (as returned by
// ExtractConst, outer braces included) into a Node tree.
//
// The text is first normalized to one structural token per line, then fed
// through the line scanner; a container stack tracks nesting, so source
// indentation is irrelevant and single-line literals parse the same as
// formatted ones. Scalar values keep their exact source text. A closing
// marker with no open level fails with MALFORMED_LITERAL naming the line.
func ParseLiteral(text string) (*tree.Node, error) {
	root := tree.Mapping()
	stack := []*tree.Node{root}
	opened := false // outer `{` consumed
	closed := false // outer `}` consumed

	for i, raw := range splitStructural(text) {
		s := scanLine(raw, i+1)
		if s.kind == lineBlank || s.kind == lineComment {
			continue
		}
		if closed {
			return nil, malformed(s, "content after closing brace")
		}

		switch s.kind {
		case lineOpenMapping, lineOpenSequence:
			if !opened {
				if s.kind == lineOpenSequence || s.key != "" {
					return nil, malformed(s, "literal must start with an opening brace")
				}
				opened = true
				continue
			}
			child := tree.Mapping()
			if s.kind == lineOpenSequence {
				child = tree.Sequence()
			}
			attach(stack[len(stack)-1], s.key, child)
			stack = append(stack, child)

		case lineClose:
			for j := 0; j < s.closes; j++ {
				if len(stack) > 1 {
					stack = stack[:len(stack)-1]
					continue
				}
				if opened && !closed {
					closed = true
					continue
				}
				return nil, malformed(s, "closing marker with no open level")
			}

		case lineKeyValue:
			if !opened {
				return nil, malformed(s, "literal must start with an opening brace")
			}
			attach(stack[len(stack)-1], s.key, tree.Scalar(s.value))
		}
	}

	if !closed || len(stack) > 1 {
		return nil, errors.New(errors.ErrCodeMalformedLiteral, "literal ends with %d unclosed level(s)", len(stack))
	}
	return root, nil
}

// attach adds child to the open container. Inside a sequence the key is
// ignored; inside a mapping a keyless scalar is a stray token and dropped
// (best-effort parsing, never a hard failure).
func attach(parent *tree.Node, key string, child *tree.Node) {
	switch parent.Kind {
	case tree.KindSequence:
		parent.AddItem(child)
	case tree.KindMapping:
		if key == "" && child.Kind == tree.KindScalar {
			return
		}
		parent.AddMember(key, child)
	}
}

// malformed builds a MALFORMED_LITERAL error pointing at the offending line.
func malformed(s scannedLine, msg string) error {
	return errors.New(errors.ErrCodeMalformedLiteral, "%s at line %d: %q", msg, s.number, strings.TrimSpace(s.raw))
}
