package eval

import (
	"strings"

	"github.com/l-donovan/wsh/parser"
)

// ExpandArgument concatenates the evaluated value of every fragment in
// arg into the argument's final string (spec §4.4).
func (c *Context) ExpandArgument(arg parser.Argument) (string, error) {
	var b strings.Builder
	for _, frag := range arg.Fragments {
		v, err := c.expandFragment(frag)
		if err != nil {
			return "", err
		}
		b.WriteString(v)
	}
	return b.String(), nil
}

// ExpandArgv expands every argument of a command into its argv strings.
func (c *Context) ExpandArgv(args []parser.Argument) ([]string, error) {
	argv := make([]string, len(args))
	for i, arg := range args {
		v, err := c.ExpandArgument(arg)
		if err != nil {
			return nil, err
		}
		argv[i] = v
	}
	return argv, nil
}

func (c *Context) expandFragment(frag parser.Fragment) (string, error) {
	switch frag.Kind {
	case parser.Literal:
		return c.expandText(frag.Text)
	case parser.DoubleQuoted:
		// Strip the surrounding quote characters before substitution.
		inner := frag.Text
		if len(inner) >= 2 {
			inner = inner[1 : len(inner)-1]
		}
		return c.expandText(inner)
	case parser.SingleQuoted:
		inner := frag.Text
		if len(inner) >= 2 {
			inner = inner[1 : len(inner)-1]
		}
		return inner, nil
	case parser.SubCommand:
		if c.RunSubCommand == nil {
			return "", nil
		}
		out, err := c.RunSubCommand(frag.Sub)
		if err != nil {
			return "", err
		}
		return strings.TrimSuffix(out, "\n"), nil
	default:
		return frag.Text, nil
	}
}

// expandText applies variable substitution, tilde expansion, then
// escape processing, in that order (spec §4.4).
func (c *Context) expandText(s string) (string, error) {
	s = substituteVars(s, c.Getenv)
	s = substituteTilde(s, c.Home())
	return processEscapes(s)
}
