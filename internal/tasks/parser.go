package tasks

import (
	"regexp"
	"strings"
)

// taskLine matches a checklist task entry: an optional bullet, an optional
// checkbox, a hierarchical numeric ID, and a description. The checkbox is
// optional so that loosely formatted lists still parse; a missing marker
// means the task is not completed.
var taskLine = regexp.MustCompile(`^\s*(?:[-*]\s*)?(?:\[([ xX])\]\s*)?(\d+(?:\.\d+)*)\.?\s+(\S.*)$`)

// annotationPattern routes a recognized detail-line marker into a structured
// field instead of the generic details list. Patterns form a closed table so
// new annotation kinds can be added without touching the scan loop.
type annotationPattern struct {
	re    *regexp.Regexp
	apply func(t *Task, payload string)
}

var annotationPatterns = []annotationPattern{
	{
		re:    regexp.MustCompile(`(?i)^[\s>*-]*_?leverage:\s*(.+?)_?\s*$`),
		apply: func(t *Task, payload string) { t.Leverage = payload },
	},
	{
		re:    regexp.MustCompile(`(?i)^[\s>*-]*_?requirements:\s*(.+?)_?\s*$`),
		apply: func(t *Task, payload string) { t.Requirements = splitRequirements(payload) },
	},
}

// Parse converts the raw text of a tasks document into an ordered list of
// task records. It is a pure function: the same input always produces the
// same records, in document order.
//
// Parse never fails. Lines that match no pattern are skipped when no task
// has been seen yet and recorded as detail text otherwise. Blank lines are
// ignored. Fenced code blocks receive no special treatment, and duplicate
// or out-of-order IDs are accepted as-is; callers that care can check the
// returned records themselves.
func Parse(content string) []Task {
	var (
		parsed  []Task
		current *Task
	)

	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if m := taskLine.FindStringSubmatch(line); m != nil {
			parsed = append(parsed, Task{
				ID:          m[2],
				Description: strings.TrimSpace(m[3]),
				Completed:   m[1] == "x" || m[1] == "X",
			})
			current = &parsed[len(parsed)-1]
			continue
		}

		if current == nil {
			// Preamble text before the first task line.
			continue
		}

		if applyAnnotation(current, line) {
			continue
		}
		current.Details = append(current.Details, detailText(line))
	}

	return parsed
}

// applyAnnotation tries each recognized annotation pattern against the line
// and routes the payload into the matching field. Reports whether the line
// was consumed.
func applyAnnotation(t *Task, line string) bool {
	for _, p := range annotationPatterns {
		if m := p.re.FindStringSubmatch(line); m != nil {
			p.apply(t, strings.TrimSpace(m[1]))
			return true
		}
	}
	return false
}

// detailText strips indentation and a leading list bullet from a detail line.
func detailText(line string) string {
	s := strings.TrimSpace(line)
	s = strings.TrimPrefix(s, "- ")
	s = strings.TrimPrefix(s, "* ")
	return strings.TrimSpace(s)
}

// splitRequirements splits a requirements payload into trimmed, non-empty
// reference tokens. Both commas and semicolons separate tokens.
func splitRequirements(payload string) []string {
	var refs []string
	for _, tok := range strings.FieldsFunc(payload, func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		if tok = strings.TrimSpace(tok); tok != "" {
			refs = append(refs, tok)
		}
	}
	return refs
}
