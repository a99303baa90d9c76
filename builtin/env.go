package builtin

// biSet implements "set K V".
func biSet(state State, argv []string) Result {
	if len(argv) < 3 {
		return fail()
	}
	if err := state.Setenv(argv[1], argv[2]); err != nil {
		return fail()
	}
	return ok()
}

// biUnset implements "unset K".
func biUnset(state State, argv []string) Result {
	if len(argv) < 2 {
		return fail()
	}
	if err := state.Unsetenv(argv[1]); err != nil {
		return fail()
	}
	return ok()
}

// biLadd implements "ladd K V": K = V + getenv(K).
func biLadd(state State, argv []string) Result {
	if len(argv) < 3 {
		return fail()
	}
	if err := state.Setenv(argv[1], argv[2]+state.Getenv(argv[1])); err != nil {
		return fail()
	}
	return ok()
}

// biRadd implements "radd K V": K = getenv(K) + V.
func biRadd(state State, argv []string) Result {
	if len(argv) < 3 {
		return fail()
	}
	if err := state.Setenv(argv[1], state.Getenv(argv[1])+argv[2]); err != nil {
		return fail()
	}
	return ok()
}

// biWith implements "with K V ...": for each K/V pair, saves K's prior
// value and sets it to V. The with-scope spans exactly the next
// non-with/without command — the evaluator pops it there, not here.
func biWith(state State, argv []string) Result {
	if len(argv) < 3 || (len(argv)-1)%2 != 0 {
		return fail()
	}
	for i := 1; i+1 < len(argv); i += 2 {
		if err := state.PushWith(argv[i], argv[i+1]); err != nil {
			return fail()
		}
	}
	return ok()
}

// biWithout implements "without": restores every variable saved by the
// with-scope currently in effect.
func biWithout(state State, argv []string) Result {
	state.Without()
	return ok()
}
