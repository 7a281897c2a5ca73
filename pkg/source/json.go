// Package source loads nested data values from their on-disk forms: JSON
// documents, YAML documents, and TypeScript/JavaScript object literals bound
// to a named constant. Every loader produces the same tree.Node shape, so
// the renderer never cares where a tree came from.
package source

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"

	"treemark/pkg/errors"
	"treemark/pkg/tree"
)

// LoadJSON reads the file at path and parses it as a strict JSON document
// into a Node tree. Object key order is preserved. The root may be a
// mapping, a sequence, or a bare scalar.
func LoadJSON(path string) (*tree.Node, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if err := checkJSON(data, path); err != nil {
		return nil, err
	}
	return decodeOrdered(data, path)
}

// readFile reads the whole file, mapping missing files to FILE_NOT_FOUND.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "cannot read %s", path)
	}
	return data, nil
}

// checkJSON verifies strict JSON validity before the order-preserving decode,
// which accepts a superset. On failure the decoder's byte offset is turned
// into a line and column for the error message.
func checkJSON(data []byte, path string) error {
	if json.Valid(data) {
		return nil
	}
	var doc any
	err := json.Unmarshal(data, &doc)
	var syn *json.SyntaxError
	if stderrors.As(err, &syn) {
		line, col := offsetPosition(data, syn.Offset)
		return errors.New(errors.ErrCodeParse, "invalid JSON in %s at line %d, column %d: %v", path, line, col, syn)
	}
	return errors.Wrap(errors.ErrCodeParse, err, "invalid JSON in %s", path)
}

// offsetPosition converts a byte offset into a 1-based line and column.
func offsetPosition(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	head := data[:offset]
	line = bytes.Count(head, []byte{'\n'}) + 1
	if i := bytes.LastIndexByte(head, '\n'); i >= 0 {
		col = len(head) - i
	} else {
		col = len(head) + 1
	}
	return line, col
}

// decodeOrdered decodes data into a Node tree, keeping mapping keys in
// document order via yaml.MapSlice.
func decodeOrdered(data []byte, path string) (*tree.Node, error) {
	var doc any
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "cannot decode %s", path)
	}
	return fromValue(doc), nil
}

// fromValue converts a decoded document value into a Node.
func fromValue(v any) *tree.Node {
	switch t := v.(type) {
	case yaml.MapSlice:
		n := tree.Mapping()
		for _, item := range t {
			n.AddMember(fmt.Sprint(item.Key), fromValue(item.Value))
		}
		return n
	case map[string]any:
		// The ordered decoder should not produce plain maps; handled so a
		// future decoder change degrades to unordered output, not a panic.
		n := tree.Mapping()
		for k, val := range t {
			n.AddMember(k, fromValue(val))
		}
		return n
	case []any:
		n := tree.Sequence()
		for _, it := range t {
			n.AddItem(fromValue(it))
		}
		return n
	default:
		return tree.Scalar(scalarText(v))
	}
}

// scalarText renders a decoded scalar back to display text.
func scalarText(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}
