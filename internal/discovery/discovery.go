package discovery

import (
	"context"

	"github.com/klauern/skillrouter/internal/model"
)

// Discoverer is the Tier 3 façade composing the prompt builder, provider
// client, and response parser. A call moves through an implicit
// Idle -> PromptBuilt -> Invoking -> {Parsed | Failed} progression: only
// Failed (prompt InvalidInput, or a Provider error) propagates to the
// caller as a typed error. Parsed is reached even when parsing itself
// failed — that degrades to an empty Result carrying the parse error as
// metadata, never an error return, so routing can still fall through to
// Error cleanly.
type Discoverer struct {
	Provider Provider
}

// New constructs a Discoverer backed by provider.
func New(provider Provider) *Discoverer {
	return &Discoverer{Provider: provider}
}

// Discover builds a prompt from query and the catalog's tasks/skills,
// invokes the provider, and parses the result.
func (d *Discoverer) Discover(ctx context.Context, query string, cat *model.Catalog) (Result, error) {
	prompt, err := BuildPrompt(query, cat.TaskList(), cat.SkillList())
	if err != nil {
		return Result{}, err
	}

	resp, err := d.Provider.Complete(ctx, prompt)
	if err != nil {
		return Result{}, err
	}

	result, parseErr := ParseResponse(resp)
	if parseErr != nil {
		result.Err = parseErr
		return result, nil
	}

	return result, nil
}
