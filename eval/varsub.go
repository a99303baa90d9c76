package eval

import "strings"

// substituteVars replaces every "{NAME}" run with getenv(NAME), or ""
// if NAME is unset or empty (spec §4.4). An unmatched "{" with no
// closing "}" is left verbatim.
func substituteVars(s string, getenv func(string) string) string {
	var b strings.Builder
	i := 0
	n := len(s)
	for i < n {
		if s[i] == '{' {
			if end := strings.IndexByte(s[i+1:], '}'); end >= 0 {
				name := s[i+1 : i+1+end]
				b.WriteString(getenv(name))
				i += end + 2
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// substituteTilde replaces every "~" with home (spec §4.4, §6). Unlike a
// POSIX shell it does not special-case "~user"; every "~" is replaced
// regardless of position or following text.
func substituteTilde(s string, home string) string {
	return strings.ReplaceAll(s, "~", home)
}
