package eval

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/l-donovan/wsh/version"
)

// processEscapes walks s looking for a backslash followed by one of the
// letters enumerated in spec §6, replacing each recognized pair with its
// mapped value. A backslash followed by an unrecognized character is
// left in the output verbatim (backslash and character both), and a
// trailing lone backslash is kept as-is.
func processEscapes(s string) (string, error) {
	var b strings.Builder
	n := len(s)
	i := 0
	for i < n {
		c := s[i]
		if c != '\\' || i+1 >= n {
			b.WriteByte(c)
			i++
			continue
		}
		repl, ok, err := escapeValue(s[i+1])
		if err != nil {
			return "", err
		}
		if !ok {
			b.WriteByte(c)
			b.WriteByte(s[i+1])
			i += 2
			continue
		}
		b.WriteString(repl)
		i += 2
	}
	return b.String(), nil
}

func escapeValue(c byte) (string, bool, error) {
	switch c {
	case '\\':
		return "\\", true, nil
	case '"':
		return "\"", true, nil
	case '\'':
		return "'", true, nil
	case 'n':
		return "\n", true, nil
	case 'r':
		return "\r", true, nil
	case 'e':
		return "\x1b", true, nil
	case 'a':
		return "\a", true, nil
	case 'h', 'H':
		host, err := os.Hostname()
		if err != nil {
			return "", false, fmt.Errorf("escape \\%c: %w", c, err)
		}
		if c == 'h' {
			if idx := strings.IndexByte(host, '.'); idx >= 0 {
				host = host[:idx]
			}
		}
		return host, true, nil
	case 'u':
		u, err := user.Current()
		if err != nil {
			return "", false, fmt.Errorf("escape \\u: %w", err)
		}
		return u.Username, true, nil
	case 's':
		return version.ShellName, true, nil
	case 'w':
		wd, err := os.Getwd()
		if err != nil {
			return "", false, fmt.Errorf("escape \\w: %w", err)
		}
		return wd, true, nil
	case 'W':
		wd, err := os.Getwd()
		if err != nil {
			return "", false, fmt.Errorf("escape \\W: %w", err)
		}
		return filepath.Base(wd), true, nil
	case '$':
		if os.Geteuid() == 0 {
			return "#", true, nil
		}
		return "$", true, nil
	case 't':
		return time.Now().Format("15:04:05"), true, nil
	case 'T':
		return time.Now().Format("03:04:05"), true, nil
	case '@':
		return time.Now().Format("03:04:05 PM"), true, nil
	case 'd':
		return time.Now().Format("Mon Jan 02"), true, nil
	case 'v':
		return version.Short(), true, nil
	case 'V':
		return version.Full(), true, nil
	default:
		return "", false, nil
	}
}

// PromptEscape renders the same §6 escape table for prompt rendering,
// where \$ and friends appear outside of any argument fragment. It is a
// thin wrapper so callers outside eval (the prompt renderer) don't need
// to know about fragment expansion.
func PromptEscape(s string) (string, error) {
	return processEscapes(s)
}
