package normalizer

import (
	"strings"
	"unicode/utf8"
)

// invalidInstructionTokens are JSON-LD structural field names that some
// extraction paths leak in place of real instruction text when a step
// object is malformed. A line equal to one of these is never a step.
var invalidInstructionTokens = map[string]struct{}{
	"@type":           {},
	"type":            {},
	"text":            {},
	"url":             {},
	"name":            {},
	"image":           {},
	"video":           {},
	"howtostep":       {},
	"howto":           {},
	"itemlistelement": {},
	"@context":        {},
	"position":        {},
}

// minInstructionLen is the minimum trimmed length for a line to count
// as a human-readable step.
const minInstructionLen = 10

// isValidInstruction reports whether a line is real instruction text
// rather than a leaked structural token or a fragment.
func isValidInstruction(step string) bool {
	s := strings.ToLower(strings.TrimSpace(step))
	if s == "" {
		return false
	}
	if _, reserved := invalidInstructionTokens[s]; reserved {
		return false
	}
	return utf8.RuneCountInString(s) >= minInstructionLen
}

// extractInstructions prefers the single-string accessor: its newline-
// separated lines are trimmed and filtered. Only when that path yields
// zero valid lines is the list accessor consulted, reading `text` then
// `name` from structured steps. The result is never nil.
func extractInstructions(src Source) []string {
	if raw, err := src.Instructions(); err == nil && raw != "" {
		var steps []string
		for _, line := range strings.Split(raw, "\n") {
			if isValidInstruction(line) {
				steps = append(steps, strings.TrimSpace(line))
			}
		}
		if len(steps) > 0 {
			return steps
		}
	}

	listed, err := src.InstructionSteps()
	if err != nil {
		return []string{}
	}
	steps := make([]string, 0, len(listed))
	for _, item := range listed {
		var text string
		switch v := item.(type) {
		case string:
			text = v
		case map[string]any:
			if s, ok := v["text"].(string); ok && s != "" {
				text = s
			} else if s, ok := v["name"].(string); ok {
				text = s
			}
		}
		if isValidInstruction(text) {
			steps = append(steps, strings.TrimSpace(text))
		}
	}
	return steps
}
