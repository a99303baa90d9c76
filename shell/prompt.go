package shell

import "github.com/l-donovan/wsh/eval"

// RenderPrompt applies the §6 escape table to the configured prompt
// string (WSH_PROMPT, default "$ "). On an escape-processing error the
// raw template is shown rather than failing the prompt entirely.
func (sh *Shell) RenderPrompt() string {
	raw := sh.cfg.Prompt()
	rendered, err := eval.PromptEscape(raw)
	if err != nil {
		return raw
	}
	return rendered
}
