package builtin

// biFg implements "fg": resumes the most recently suspended job in the
// foreground (spec §4.7). If the job is stopped again before exiting,
// the prompt simply returns with last_status unchanged; otherwise
// last_status becomes the job's real exit code.
func biFg(state State, argv []string) Result {
	code, suspended, err := state.ResumeForeground()
	if err != nil {
		return fail()
	}
	if suspended {
		return Result{Code: state.LastStatus()}
	}
	return Result{Code: code}
}

// biKill implements "kill PID|%N": sends SIGTERM to a numeric PID or to
// the job at the given "%N" suspended-table slot.
func biKill(state State, argv []string) Result {
	if len(argv) < 2 {
		return fail()
	}
	if err := state.Kill(argv[1]); err != nil {
		return fail()
	}
	return ok()
}
