package builtin

import (
	"fmt"
	"sort"
)

// biAlias implements "alias [N [V]]": no args lists every alias, one
// arg prints that alias's value, two args defines it.
func biAlias(state State, argv []string) Result {
	switch len(argv) {
	case 1:
		names := make([]string, 0, len(state.Aliases()))
		for name := range state.Aliases() {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Println("Aliases:")
		for _, name := range names {
			fmt.Printf("  %s -> %s\n", name, state.Aliases()[name])
		}
		return ok()
	case 2:
		value, _ := state.Alias(argv[1])
		fmt.Println(value)
		return ok()
	default:
		state.SetAlias(argv[1], argv[2])
		return ok()
	}
}

// biUnalias implements "unalias N".
func biUnalias(state State, argv []string) Result {
	if len(argv) < 2 {
		return fail()
	}
	state.DeleteAlias(argv[1])
	return ok()
}

// biWhich implements "which N": prints how N would resolve per §4.5's
// order (alias, then builtin, then PATH), or "not found".
func biWhich(state State, argv []string) Result {
	if len(argv) < 2 {
		return fail()
	}
	kind, detail := state.Which(argv[1])
	switch kind {
	case "alias":
		fmt.Printf("%s: aliased to %s\n", argv[1], detail)
	case "builtin":
		fmt.Printf("%s: shell builtin\n", argv[1])
	case "path":
		fmt.Println(detail)
	default:
		fmt.Printf("%s: not found\n", argv[1])
		return Result{Code: 1}
	}
	return ok()
}
