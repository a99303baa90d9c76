package parser

import (
	"fmt"

	"github.com/l-donovan/wsh/lexer"
)

// ParseLine lexes and parses a full input line into a CommandList,
// including recursively parsing any backtick sub-commands it contains
// (spec §4.3). A trailing virtual ";" is simulated: whatever command is
// still accumulating when the token stream ends is appended as long as
// it carries at least one argument.
func ParseLine(line string) (*CommandList, error) {
	tokens, err := lexer.Lex(line)
	if err != nil {
		return nil, err
	}

	list := &CommandList{}
	var cur Command

	for _, tok := range tokens {
		switch tok.Kind {
		case lexer.Text:
			arg, err := parseArgument(tok.Text)
			if err != nil {
				return nil, err
			}
			cur.Args = append(cur.Args, arg)
		case lexer.Op:
			switch tok.Text {
			case ";":
				// sequential: no flag to set
			case "&&":
				cur.AndNext = true
			case "||":
				cur.OrNext = true
			case "|":
				cur.PipeNext = true
			case "&":
				cur.Background = true
			}
			list.Commands = append(list.Commands, cur)
			cur = Command{}
		}
	}

	if !cur.Empty() {
		list.Commands = append(list.Commands, cur)
	}

	return list, nil
}

// parseArgument turns one lexer text span into an Argument: a sequence
// of literal/single/double/sub-command fragments (spec §4.2).
func parseArgument(span string) (Argument, error) {
	var arg Argument
	var buf []byte

	flush := func() {
		if len(buf) > 0 {
			arg.Fragments = append(arg.Fragments, Fragment{Kind: Literal, Text: string(buf)})
			buf = nil
		}
	}

	n := len(span)
	i := 0
	for i < n {
		c := span[i]
		switch {
		case c == '\'':
			flush()
			text, next, err := scanQuoted(span, i, '\'')
			if err != nil {
				return Argument{}, err
			}
			arg.Fragments = append(arg.Fragments, Fragment{Kind: SingleQuoted, Text: text})
			i = next
		case c == '"':
			flush()
			text, next, err := scanQuoted(span, i, '"')
			if err != nil {
				return Argument{}, err
			}
			arg.Fragments = append(arg.Fragments, Fragment{Kind: DoubleQuoted, Text: text})
			i = next
		case c == '`':
			flush()
			inner, next, err := scanBacktick(span, i)
			if err != nil {
				return Argument{}, err
			}
			sub, err := ParseLine(inner)
			if err != nil {
				return Argument{}, err
			}
			arg.Fragments = append(arg.Fragments, Fragment{Kind: SubCommand, Sub: sub})
			i = next
		default:
			buf = append(buf, c)
			i++
		}
	}

	flush()
	return arg, nil
}

// scanQuoted scans a single/double-quoted region starting at span[start]
// (which must equal q). It returns the quoted text including both quote
// characters, and the index just past the closing quote.
func scanQuoted(span string, start int, q byte) (string, int, error) {
	n := len(span)
	i := start + 1
	for i < n {
		c := span[i]
		if c == '\\' && i+1 < n {
			i += 2
			continue
		}
		if c == q {
			return span[start : i+1], i + 1, nil
		}
		i++
	}
	return "", 0, fmt.Errorf("unterminated quote in argument")
}

// scanBacktick scans a backtick region starting at span[start] (which
// must equal '`'). It returns the inner text (excluding both backticks)
// and the index just past the closing backtick.
func scanBacktick(span string, start int) (string, int, error) {
	n := len(span)
	i := start + 1
	inner := start + 1
	for i < n {
		c := span[i]
		if c == '\\' && i+1 < n {
			i += 2
			continue
		}
		if c == '`' {
			return span[inner:i], i + 1, nil
		}
		i++
	}
	return "", 0, fmt.Errorf("unterminated backtick")
}
