package eval

import (
	"testing"

	"github.com/l-donovan/wsh/parser"
)

func testContext(env map[string]string, home string) *Context {
	return &Context{
		Getenv: func(name string) string { return env[name] },
		Home:   func() string { return home },
		RunSubCommand: func(list *parser.CommandList) (string, error) {
			return "captured\n", nil
		},
	}
}

func TestExpandArgumentLiteralVarAndTilde(t *testing.T) {
	c := testContext(map[string]string{"X": "foo"}, "/home/wsh")
	list, err := parser.ParseLine(`echo {X}bar~`)
	if err != nil {
		t.Fatal(err)
	}
	argv, err := c.ExpandArgv(list.Commands[0].Args)
	if err != nil {
		t.Fatal(err)
	}
	if argv[1] != "foobar/home/wsh" {
		t.Fatalf("got %q", argv[1])
	}
}

func TestExpandArgumentSingleQuotedNoSubstitution(t *testing.T) {
	c := testContext(map[string]string{"X": "foo"}, "/home/wsh")
	list, err := parser.ParseLine(`echo '{X}~'`)
	if err != nil {
		t.Fatal(err)
	}
	argv, err := c.ExpandArgv(list.Commands[0].Args)
	if err != nil {
		t.Fatal(err)
	}
	if argv[1] != "{X}~" {
		t.Fatalf("got %q", argv[1])
	}
}

func TestExpandArgumentDoubleQuotedSubstitutes(t *testing.T) {
	c := testContext(map[string]string{"X": "foo"}, "/home/wsh")
	list, err := parser.ParseLine(`echo "{X}bar"`)
	if err != nil {
		t.Fatal(err)
	}
	argv, err := c.ExpandArgv(list.Commands[0].Args)
	if err != nil {
		t.Fatal(err)
	}
	if argv[1] != "foobar" {
		t.Fatalf("got %q", argv[1])
	}
}

func TestExpandArgumentSubCommandStripsTrailingNewline(t *testing.T) {
	c := testContext(nil, "/home/wsh")
	list, err := parser.ParseLine("echo `date`")
	if err != nil {
		t.Fatal(err)
	}
	argv, err := c.ExpandArgv(list.Commands[0].Args)
	if err != nil {
		t.Fatal(err)
	}
	if argv[1] != "captured" {
		t.Fatalf("got %q", argv[1])
	}
}

func TestExpandTextEscapes(t *testing.T) {
	c := testContext(nil, "/home/wsh")
	got, err := c.expandText(`a\nb`)
	if err != nil {
		t.Fatal(err)
	}
	if got != "a\nb" {
		t.Fatalf("got %q", got)
	}
}

func TestExpandTextUnrecognizedEscapePassesThrough(t *testing.T) {
	c := testContext(nil, "/home/wsh")
	got, err := c.expandText(`a\zb`)
	if err != nil {
		t.Fatal(err)
	}
	if got != `a\zb` {
		t.Fatalf("got %q", got)
	}
}
