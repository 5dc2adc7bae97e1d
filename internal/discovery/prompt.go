package discovery

import (
	"strings"

	"github.com/klauern/skillrouter/internal/model"
)

// BuildPrompt assembles the single Tier 3 classification prompt: the
// original (un-normalized) query, an itemized task listing labeled
// high-level/maps-to-multiple-skills, an itemized skill listing labeled
// low-level/direct-capabilities, instructions distinguishing the two, and a
// JSON-shaped response spec. Categories are deliberately excluded — the BDD
// this design is grounded on never shows them to the model, and nothing in
// spec.md asks for that to change.
func BuildPrompt(query string, tasks []model.Task, skills []model.Skill) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", &InvalidInputError{Reason: "request is empty"}
	}
	if len(tasks) == 0 && len(skills) == 0 {
		return "", &InvalidInputError{Reason: "catalog has no tasks or skills to list"}
	}

	var b strings.Builder

	b.WriteString("A user made the following request:\n\n")
	b.WriteString(query)
	b.WriteString("\n\n")

	if len(tasks) > 0 {
		b.WriteString("Available tasks (high-level, maps to multiple skills):\n")
		for _, t := range tasks {
			b.WriteString("- ")
			b.WriteString(t.Name)
			b.WriteString(": ")
			b.WriteString(t.Description)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(skills) > 0 {
		b.WriteString("Available skills (low-level, direct capabilities):\n")
		for _, s := range skills {
			b.WriteString("- ")
			b.WriteString(s.Name)
			b.WriteString(": ")
			b.WriteString(s.Description)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("Tasks represent high-level user goals that require multiple skills working " +
		"together. Skills represent specific, direct infrastructure or implementation capabilities. " +
		"Pick a task when the request describes a broad goal; pick a skill when it names a specific " +
		"capability directly.\n\n")

	b.WriteString("Respond with ONLY a JSON object or array of objects, no other text, in this shape:\n")
	b.WriteString(`{"type": "task"|"skill", "name": "<exact name from the lists above>", ` +
		`"confidence": <0.0-1.0>, "reasoning": "<short reason>"}`)
	b.WriteString("\n")

	return b.String(), nil
}
