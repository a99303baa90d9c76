package builtin

import (
	"fmt"
	"os"
)

// biCd implements "cd DIR" / "cd -". A bare "cd" with no argument is an
// arity error (exit 1), not a default to $HOME — the original's `bcd`
// returns CODE_FAIL when argc < 2.
func biCd(state State, argv []string) Result {
	if len(argv) < 2 {
		return fail()
	}

	cwd, err := state.Cwd()
	if err != nil {
		return fail()
	}

	target := argv[1]
	if target == "-" {
		target = state.PreviousDir()
		fmt.Println(target)
	}

	if err := state.Chdir(target); err != nil {
		return fail()
	}

	state.SetPreviousDir(cwd)
	return ok()
}

// biExists implements "exists [file|dir] PATH".
func biExists(state State, argv []string) Result {
	if len(argv) < 2 {
		return fail()
	}

	if len(argv) >= 3 {
		switch argv[1] {
		case "file":
			return existsResult(fileExists(argv[2]))
		case "dir":
			return existsResult(dirExists(argv[2]))
		}
	}

	return existsResult(fileExists(argv[1]) || dirExists(argv[1]))
}

func existsResult(exists bool) Result {
	if exists {
		return ok()
	}
	return Result{Code: 1}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
