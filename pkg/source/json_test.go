package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"treemark/pkg/errors"
	"treemark/pkg/tree"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeTemp(t, "doc.json", `{"a": 1, "b": {"c": 2}}`)

	root, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("LoadJSON() error = %v", err)
	}

	if root.Kind != tree.KindMapping {
		t.Fatalf("root kind = %v, want mapping", root.Kind)
	}
	if len(root.Members) != 2 {
		t.Fatalf("root has %d members, want 2", len(root.Members))
	}
	if root.Members[0].Key != "a" || root.Members[1].Key != "b" {
		t.Errorf("keys = %q, %q; want a, b", root.Members[0].Key, root.Members[1].Key)
	}
	if got := root.Members[0].Value; got.Kind != tree.KindScalar || got.Value != "1" {
		t.Errorf("a = %+v, want scalar 1", got)
	}
	b := root.Members[1].Value
	if b.Kind != tree.KindMapping || len(b.Members) != 1 || b.Members[0].Key != "c" {
		t.Errorf("b = %+v, want mapping with single member c", b)
	}
}

func TestLoadJSONKeyOrder(t *testing.T) {
	path := writeTemp(t, "doc.json", `{"zulu": 1, "alpha": 2, "mike": 3}`)

	root, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("LoadJSON() error = %v", err)
	}

	want := []string{"zulu", "alpha", "mike"}
	for i, key := range want {
		if root.Members[i].Key != key {
			t.Errorf("member %d = %q, want %q (document order must be preserved)", i, root.Members[i].Key, key)
		}
	}
}

func TestLoadJSONScalars(t *testing.T) {
	path := writeTemp(t, "doc.json", `{"s": "text", "n": 1.5, "i": 7, "t": true, "z": null}`)

	root, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("LoadJSON() error = %v", err)
	}

	want := map[string]string{"s": "text", "n": "1.5", "i": "7", "t": "true", "z": "null"}
	for _, m := range root.Members {
		if m.Value.Value != want[m.Key] {
			t.Errorf("%s = %q, want %q", m.Key, m.Value.Value, want[m.Key])
		}
	}
}

func TestLoadJSONArray(t *testing.T) {
	path := writeTemp(t, "doc.json", `{"items": ["x", {"y": 2}]}`)

	root, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("LoadJSON() error = %v", err)
	}

	items := root.Members[0].Value
	if items.Kind != tree.KindSequence || len(items.Items) != 2 {
		t.Fatalf("items = %+v, want sequence of 2", items)
	}
	if items.Items[0].Kind != tree.KindScalar || items.Items[0].Value != "x" {
		t.Errorf("items[0] = %+v, want scalar x", items.Items[0])
	}
	if items.Items[1].Kind != tree.KindMapping {
		t.Errorf("items[1] kind = %v, want mapping", items.Items[1].Kind)
	}
}

func TestLoadJSONScalarDocument(t *testing.T) {
	path := writeTemp(t, "doc.json", `42`)

	root, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("LoadJSON() error = %v", err)
	}
	if root.Kind != tree.KindScalar || root.Value != "42" {
		t.Errorf("root = %+v, want scalar 42", root)
	}
}

func TestLoadJSONEmptyObject(t *testing.T) {
	path := writeTemp(t, "doc.json", `{}`)

	root, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("LoadJSON() error = %v", err)
	}
	if root.Kind != tree.KindMapping || len(root.Members) != 0 {
		t.Errorf("root = %+v, want empty mapping", root)
	}
}

func TestLoadJSONMissingFile(t *testing.T) {
	_, err := LoadJSON(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("LoadJSON() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadJSONInvalid(t *testing.T) {
	path := writeTemp(t, "doc.json", "{\n  \"a\": 1,\n  oops\n}")

	_, err := LoadJSON(path)
	if !errors.Is(err, errors.ErrCodeParse) {
		t.Fatalf("LoadJSON() error = %v, want PARSE_ERROR", err)
	}
	if !strings.Contains(err.Error(), "line") {
		t.Errorf("error %q should mention the line", err)
	}
}

func TestOffsetPosition(t *testing.T) {
	data := []byte("ab\ncde\nf")
	tests := []struct {
		offset    int64
		line, col int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 2, 1},
		{6, 2, 4},
		{7, 3, 1},
		{99, 3, 2},
	}
	for _, tt := range tests {
		line, col := offsetPosition(data, tt.offset)
		if line != tt.line || col != tt.col {
			t.Errorf("offsetPosition(%d) = %d:%d, want %d:%d", tt.offset, line, col, tt.line, tt.col)
		}
	}
}
