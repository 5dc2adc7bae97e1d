// Package assemble renders a RouteResult into the single text block a
// caller injects into a model's context window: a header naming the match
// and execution order, followed by one section per skill in execution
// order, each labeled PRIMARY or DEPENDENCY.
package assemble

import (
	"fmt"
	"strings"

	"github.com/klauern/skillrouter/internal/model"
)

const (
	openTag  = "<skill_context>"
	closeTag = "</skill_context>"
	sectionSeparator = "---"
)

// ContentLoader resolves a skill's documentation body given its name and
// catalog path. *content.Loader satisfies this.
type ContentLoader interface {
	Load(name, relPath string) (string, *model.Warning)
}

// Assemble renders result against cat using loader to fetch each skill's
// documentation body. An Error route renders to the empty string — the
// caller writes nothing. A match with an empty execution order renders the
// header only, with no skill sections.
func Assemble(result model.RouteResult, cat *model.Catalog, loader ContentLoader) string {
	if result.Type == model.RouteError {
		return ""
	}

	primary := make(map[string]bool, len(result.Skills))
	for _, name := range result.Skills {
		primary[name] = true
	}

	var b strings.Builder
	b.WriteString(openTag)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Matched: %s '%s'\n", result.Type, result.Matched)
	if len(result.ExecutionOrder) > 0 {
		fmt.Fprintf(&b, "Execution order: %s\n", strings.Join(result.ExecutionOrder, " -> "))
	} else {
		b.WriteString("Execution order: (none)\n")
	}

	for _, name := range result.ExecutionOrder {
		b.WriteString("\n")
		label := "DEPENDENCY"
		if primary[name] {
			label = "PRIMARY"
		}
		fmt.Fprintf(&b, "## %s [%s]\n", name, label)

		skill, ok := cat.Skills[name]
		body := placeholderForUnknownSkill(name)
		if ok {
			loaded, _ := loader.Load(skill.Name, skill.Path)
			body = loaded
		}
		b.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(sectionSeparator)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(closeTag)

	return b.String()
}

func placeholderForUnknownSkill(name string) string {
	return fmt.Sprintf("(no catalog entry for %q)", name)
}
