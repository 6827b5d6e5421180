package ai

import (
	"regexp"
	"strings"
)

// ToolCall is one function invocation embedded in model output.
// Arguments are always strings; no coercion happens anywhere.
type ToolCall struct {
	FunctionName string
	Args         []string
}

// String renders the call for display in the confirmation prompt.
func (c ToolCall) String() string {
	return c.FunctionName + "(" + strings.Join(c.Args, ", ") + ")"
}

// callPattern matches [CALL:functionName(arg1,arg2)] markers.
// Anything that doesn't match, including unbalanced parens or a missing
// colon, is left in the display text verbatim.
var callPattern = regexp.MustCompile(`\[CALL:(\w+)\(([^)]*)\)\]`)

// ExtractCalls splits raw model output into user-visible prose and the
// ordered tool calls it carries. Extraction order is execution order.
func ExtractCalls(raw string) (displayText string, calls []ToolCall) {
	for _, match := range callPattern.FindAllStringSubmatch(raw, -1) {
		calls = append(calls, ToolCall{
			FunctionName: match[1],
			Args:         parseArgs(match[2]),
		})
	}
	displayText = strings.TrimSpace(callPattern.ReplaceAllString(raw, ""))
	return displayText, calls
}

// parseArgs splits a marker's argument list: comma-separated, trimmed,
// one layer of surrounding quotes stripped. No escaping, no nesting.
func parseArgs(argsString string) []string {
	if argsString == "" {
		return nil
	}
	parts := strings.Split(argsString, ",")
	args := make([]string, len(parts))
	for i, part := range parts {
		args[i] = stripQuotes(strings.TrimSpace(part))
	}
	return args
}

// stripQuotes removes one leading and one trailing quote character.
// The ends are handled independently, matching the original behavior.
func stripQuotes(s string) string {
	if len(s) > 0 && (s[0] == '\'' || s[0] == '"') {
		s = s[1:]
	}
	if len(s) > 0 && (s[len(s)-1] == '\'' || s[len(s)-1] == '"') {
		s = s[:len(s)-1]
	}
	return s
}
