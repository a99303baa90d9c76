// Package shellfmt pretty-prints a wsh command line. No builtin calls
// it: the `history` and `alias` listings print their entries verbatim.
// It parses with mvdan.cc/sh/v3/syntax
// (the shfmt parser) purely as a tokenizer for operator chains — wsh's
// own grammar has no if/for/while/case/function forms, so only the
// simple-command and binary-operator-chain shapes are ever rendered.
package shellfmt

import (
	"bytes"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Option configures the formatter.
type Option func(*config)

type config struct {
	indent   int
	maxWidth int
}

func defaultConfig() *config {
	return &config{indent: 2, maxWidth: 80}
}

// WithIndent sets the indentation width in spaces (default: 2).
func WithIndent(n int) Option {
	return func(c *config) { c.indent = n }
}

// WithMaxWidth sets the line width up to which a chain of at most two
// elements is kept inline (default: 80).
func WithMaxWidth(n int) Option {
	return func(c *config) { c.maxWidth = n }
}

// Format parses a wsh one-liner and renders it with one element per
// line once it grows past the configured width or has more than two
// elements, operators leading each continuation line. On parse error
// the input is returned unchanged.
func Format(input string, opts ...Option) (string, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return "", nil
	}

	parser := syntax.NewParser(syntax.Variant(syntax.LangPOSIX))
	prog, err := parser.Parse(strings.NewReader(input), "")
	if err != nil {
		return input, nil
	}

	f := &formatter{
		width:   cfg.indent,
		maxW:    cfg.maxWidth,
		printer: syntax.NewPrinter(syntax.Indent(uint(cfg.indent))),
	}

	for i, stmt := range prog.Stmts {
		if i > 0 {
			f.buf.WriteByte('\n')
		}
		f.stmt(stmt)
	}

	return strings.TrimRight(f.buf.String(), "\n"), nil
}

type formatter struct {
	buf     bytes.Buffer
	width   int
	maxW    int
	printer *syntax.Printer
}

func (f *formatter) nodeStr(node syntax.Node) string {
	var buf bytes.Buffer
	f.printer.Print(&buf, node)
	return strings.TrimRight(buf.String(), "\n")
}

func (f *formatter) stmt(s *syntax.Stmt) {
	if cmd, ok := s.Cmd.(*syntax.BinaryCmd); ok {
		f.binaryCmd(cmd)
		if s.Background {
			f.buf.WriteString(" &")
		}
		return
	}

	f.buf.WriteString(f.nodeStr(s))
}

// chainElem is one element of a flattened left-associative operator
// chain: the operator that precedes it ("" for the first element) and
// the statement itself.
type chainElem struct {
	op   string
	stmt *syntax.Stmt
}

func flattenBinaryCmd(cmd *syntax.BinaryCmd) []chainElem {
	var chain []chainElem
	collectBinary(cmd, &chain)
	return chain
}

func collectBinary(cmd *syntax.BinaryCmd, chain *[]chainElem) {
	if left, ok := cmd.X.Cmd.(*syntax.BinaryCmd); ok && isBareBinaryStmt(cmd.X) {
		collectBinary(left, chain)
	} else {
		*chain = append(*chain, chainElem{stmt: cmd.X})
	}

	op := cmd.Op.String()

	if right, ok := cmd.Y.Cmd.(*syntax.BinaryCmd); ok && isBareBinaryStmt(cmd.Y) {
		var rightChain []chainElem
		collectBinary(right, &rightChain)
		if len(rightChain) > 0 {
			rightChain[0].op = op
			*chain = append(*chain, rightChain...)
		}
	} else {
		*chain = append(*chain, chainElem{op: op, stmt: cmd.Y})
	}
}

func isBareBinaryStmt(s *syntax.Stmt) bool {
	return !s.Negated && !s.Background && len(s.Redirs) == 0
}

func (f *formatter) binaryCmd(cmd *syntax.BinaryCmd) {
	chain := flattenBinaryCmd(cmd)

	total := 0
	for i, elem := range chain {
		if i > 0 {
			total += 1 + len(elem.op) + 1
		}
		total += len(f.nodeStr(elem.stmt))
	}

	if len(chain) <= 2 && total <= f.maxW {
		for i, elem := range chain {
			if i > 0 {
				f.buf.WriteByte(' ')
				f.buf.WriteString(elem.op)
				f.buf.WriteByte(' ')
			}
			f.buf.WriteString(f.nodeStr(elem.stmt))
		}
		return
	}

	for i, elem := range chain {
		if i > 0 {
			f.buf.WriteString(" \\\n")
			f.buf.WriteString(strings.Repeat(" ", f.width))
			f.buf.WriteString(elem.op)
			f.buf.WriteByte(' ')
		}
		f.buf.WriteString(f.nodeStr(elem.stmt))
	}
}
