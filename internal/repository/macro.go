package repository

import (
	"fmt"
	"regexp"
	"strings"
)

// RendererTag is the fixed literal identifying this feature to the host's
// generic block-macro mechanism.
const RendererTag = ":project-gantt"

// macroPattern matches `{{renderer :project-gantt,<payload>}}` anywhere in
// a block, case-insensitive and whitespace-tolerant around the comma.
var macroPattern = regexp.MustCompile(`(?i)\{\{renderer\s+:project-gantt\s*,\s*([^\s}]+)\s*\}\}`)

// WrapMacro builds the macro token embedding a freshly encoded payload.
func WrapMacro(payload string) string {
	return fmt.Sprintf("{{renderer %s, %s}}", RendererTag, payload)
}

// ExtractMacroPayload pulls the transport payload out of a block's text.
// Returns false when the block carries no timeline macro.
func ExtractMacroPayload(content string) (string, bool) {
	m := macroPattern.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// ReplaceMacroPayload swaps the payload inside an existing macro token,
// preserving the surrounding block text. If the block has no macro, the
// macro is appended on its own line.
func ReplaceMacroPayload(content, payload string) string {
	if macroPattern.MatchString(content) {
		return macroPattern.ReplaceAllString(content, WrapMacro(payload))
	}
	if content == "" {
		return WrapMacro(payload)
	}
	return content + "\n" + WrapMacro(payload)
}
