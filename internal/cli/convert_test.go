package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"treemark/pkg/errors"
)

func newTestCLI() *CLI {
	return New(io.Discard, LogInfo)
}

// execute runs the root command with args and returns the error.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	root := newTestCLI().RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	return root.Execute()
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommandSubcommands(t *testing.T) {
	root := newTestCLI().RootCommand()

	for _, name := range []string{"json", "yaml", "const", "completion"} {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}

func TestJSONCommand(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	in := writeInput(t, "doc.json", `{"a": {"b": 1}, "c": 2}`)
	out := filepath.Join(t.TempDir(), "doc.md")

	if err := execute(t, "json", "--file", in, "--output", out); err != nil {
		t.Fatalf("json command error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want := "```text\nroot\n├── a\n│   └── b\n└── c\n```\n"
	if string(data) != want {
		t.Errorf("output = %q, want %q", data, want)
	}
}

func TestConstCommand(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	in := writeInput(t, "msg.ts", `export const japanese = { swal: { title: "ok" } };`)
	out := filepath.Join(t.TempDir(), "msg.md")

	if err := execute(t, "const", "--file", in, "--const", "japanese", "--output", out); err != nil {
		t.Fatalf("const command error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want := "```text\njapanese\n└── swal\n    └── title\n```\n"
	if string(data) != want {
		t.Errorf("output = %q, want %q", data, want)
	}
}

func TestYAMLCommand(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	in := writeInput(t, "doc.yaml", "a:\n  b: 1\n")
	out := filepath.Join(t.TempDir(), "doc.md")

	if err := execute(t, "yaml", "--file", in, "--output", out); err != nil {
		t.Fatalf("yaml command error = %v", err)
	}

	data, _ := os.ReadFile(out)
	if !strings.Contains(string(data), "└── b") {
		t.Errorf("output = %q, want nested b entry", data)
	}
}

func TestJSONCommandMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	err := execute(t, "json", "--file", filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestConstCommandRequiresName(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	in := writeInput(t, "msg.ts", `const x = {};`)

	if err := execute(t, "const", "--file", in); err == nil {
		t.Error("const command should fail without --const")
	}
}

func TestDOTFormat(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	in := writeInput(t, "doc.json", `{"a": 1}`)
	out := filepath.Join(t.TempDir(), "doc.dot")

	if err := execute(t, "json", "--file", in, "--format", "dot", "--output", out); err != nil {
		t.Fatalf("json --format dot error = %v", err)
	}

	data, _ := os.ReadFile(out)
	if !strings.HasPrefix(string(data), "digraph G {") {
		t.Errorf("output = %q, want DOT source", data)
	}
}

func TestConfigFormatDefaultAndFlagWins(t *testing.T) {
	writeConfig(t, "format = \"dot\"\n")
	in := writeInput(t, "doc.json", `{"a": 1}`)

	// Config default applies when the flag is absent.
	out := filepath.Join(t.TempDir(), "a.out")
	if err := execute(t, "json", "--file", in, "--output", out); err != nil {
		t.Fatalf("json with config format error = %v", err)
	}
	data, _ := os.ReadFile(out)
	if !strings.HasPrefix(string(data), "digraph G {") {
		t.Errorf("output = %q, want DOT per config default", data)
	}

	// An explicit flag wins over the config value.
	out2 := filepath.Join(t.TempDir(), "b.out")
	if err := execute(t, "json", "--file", in, "--format", "text", "--output", out2); err != nil {
		t.Fatalf("json with explicit format error = %v", err)
	}
	data2, _ := os.ReadFile(out2)
	if !strings.HasPrefix(string(data2), "```text") {
		t.Errorf("output = %q, want fenced text per explicit flag", data2)
	}
}

func TestIndicesFlagDisablesLabels(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	in := writeInput(t, "doc.json", `{"items": ["x", "y"]}`)
	out := filepath.Join(t.TempDir(), "doc.md")

	if err := execute(t, "json", "--file", in, "--indices=false", "--output", out); err != nil {
		t.Fatalf("json --indices=false error = %v", err)
	}

	data, _ := os.ReadFile(out)
	if strings.Contains(string(data), "[0]") {
		t.Errorf("output = %q, want no index labels", data)
	}
}

func TestValuesFlag(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	in := writeInput(t, "doc.json", `{"a": "hello"}`)
	out := filepath.Join(t.TempDir(), "doc.md")

	if err := execute(t, "json", "--file", in, "--values", "--output", out); err != nil {
		t.Fatalf("json --values error = %v", err)
	}

	data, _ := os.ReadFile(out)
	if !strings.Contains(string(data), "└── a: hello") {
		t.Errorf("output = %q, want inline scalar value", data)
	}
}
