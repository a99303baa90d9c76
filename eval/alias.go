package eval

import (
	"fmt"

	"github.com/l-donovan/wsh/parser"
)

// maxAliasDepth bounds the fixed-point alias-rewriting pass so that a
// cycle like "alias a b ; alias b a" fails instead of looping forever
// (spec §9 "Alias rewriting").
const maxAliasDepth = 32

// ResolveAliases rewrites every alias-headed command in list in place,
// re-parsing each alias's recorded text and splicing the original
// command's trailing arguments and terminator flags onto the last
// command of the expansion. It runs as a single pre-evaluation pass
// rather than by splicing into the command vector mid-walk (the
// approach spec §9 calls error-prone), iterating to a fixed point or
// returning an error once maxAliasDepth passes have run without
// settling.
func ResolveAliases(list *parser.CommandList, aliasMap map[string]string) error {
	for pass := 0; ; pass++ {
		if pass >= maxAliasDepth {
			return fmt.Errorf("alias resolution did not converge after %d passes (possible cycle)", maxAliasDepth)
		}

		changed := false
		var next []parser.Command

		for _, cmd := range list.Commands {
			head, ok := aliasHeadText(cmd)
			if !ok {
				next = append(next, cmd)
				continue
			}
			text, isAlias := aliasMap[head]
			if !isAlias {
				next = append(next, cmd)
				continue
			}

			expansion, err := parser.ParseLine(text)
			if err != nil {
				return fmt.Errorf("alias %q: %w", head, err)
			}
			if len(expansion.Commands) == 0 {
				next = append(next, cmd)
				continue
			}

			last := len(expansion.Commands) - 1
			expansion.Commands[last].Args = append(expansion.Commands[last].Args, cmd.Args[1:]...)
			expansion.Commands[last].AndNext = cmd.AndNext
			expansion.Commands[last].OrNext = cmd.OrNext
			expansion.Commands[last].PipeNext = cmd.PipeNext
			expansion.Commands[last].Background = cmd.Background

			next = append(next, expansion.Commands...)
			changed = true
		}

		list.Commands = next
		if !changed {
			return nil
		}
	}
}

// aliasHeadText extracts a command's zeroth argument as a bare string
// when it is eligible for alias lookup: a single literal fragment with
// no quoting or sub-command content, matching the plain-word aliases
// shown in spec examples ("alias ll \"ls -l\"").
func aliasHeadText(cmd parser.Command) (string, bool) {
	if len(cmd.Args) == 0 {
		return "", false
	}
	frags := cmd.Args[0].Fragments
	if len(frags) != 1 || frags[0].Kind != parser.Literal {
		return "", false
	}
	return frags[0].Text, true
}
