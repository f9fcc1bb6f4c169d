package keybinds

import (
	"fmt"
	"sort"
	"strings"
)

// Severity grades a binding issue
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one problem found in a registry
type Issue struct {
	Severity Severity
	Context  Context
	Key      string
	Message  string
}

func (i Issue) String() string {
	if i.Key == "" {
		return fmt.Sprintf("[%s] %s: %s", i.Severity, i.Context, i.Message)
	}
	return fmt.Sprintf("[%s] %s %s: %s", i.Severity, i.Context, i.Key, i.Message)
}

// Report is the outcome of Check
type Report []Issue

// HasErrors reports whether any issue makes the registry unusable
func (r Report) HasErrors() bool {
	for _, issue := range r {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (r Report) String() string {
	if len(r) == 0 {
		return "no issues"
	}
	lines := make([]string, len(r))
	for i, issue := range r {
		lines[i] = issue.String()
	}
	return strings.Join(lines, "\n")
}

// requiredActions must stay reachable in their context, or the user could
// get stuck in a mode with no way out
var requiredActions = map[Context][]Action{
	ContextEditor:      {ActionSave, ActionExit},
	ContextFindReplace: {ActionCloseModal},
	ContextPrompt:      {ActionTextSubmit, ActionTextCancel},
	ContextConfirm:     {ActionConfirm, ActionCancel},
	ContextModal:       {ActionCloseModal},
}

// Check inspects a registry after user overrides were applied.
// Unknown actions and unreachable required actions are errors; a context
// binding that hides a different global action is a warning.
func Check(r *Registry) Report {
	var report Report

	for context, bindings := range r.bindings {
		for key, action := range bindings {
			if !IsKnownAction(action) {
				report = append(report, Issue{
					Severity: SeverityError,
					Context:  context,
					Key:      key,
					Message:  fmt.Sprintf("unknown action %q", action),
				})
			}
		}
	}

	for context, actions := range requiredActions {
		for _, action := range actions {
			if len(r.GetBinding(context, action)) == 0 {
				report = append(report, Issue{
					Severity: SeverityError,
					Context:  context,
					Message:  fmt.Sprintf("%s is not bound to any key", action),
				})
			}
		}
	}

	for context, bindings := range r.bindings {
		if context == ContextGlobal {
			continue
		}
		for key, action := range bindings {
			global, ok := r.bindings[ContextGlobal][key]
			if !ok || global == action || isIntentionalShadow(context, key) {
				continue
			}
			report = append(report, Issue{
				Severity: SeverityWarning,
				Context:  context,
				Key:      key,
				Message:  fmt.Sprintf("hides global %s", global),
			})
		}
	}

	sort.Slice(report, func(i, j int) bool {
		a, b := report[i], report[j]
		if a.Severity != b.Severity {
			return a.Severity == SeverityError
		}
		if a.Context != b.Context {
			return a.Context < b.Context
		}
		return a.Key < b.Key
	})
	return report
}

// The editor takes ctrl+c for copy; force quit stays available elsewhere
func isIntentionalShadow(context Context, key string) bool {
	return context == ContextEditor && key == "ctrl+c"
}

// ValidateKey rejects empty keys and bare modifiers
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}
	for _, mod := range []string{"ctrl+", "alt+", "shift+"} {
		if key == mod {
			return fmt.Errorf("modifier without key: %s", key)
		}
	}
	return nil
}
