// Package content loads a skill's SKILL.md documentation body given its
// catalog-declared path, and caches the result in memory until the
// catalog reloads. It never discovers skills itself — the catalog already
// declares every skill's path; this package only resolves and reads the
// one file a route result needs rendered.
package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauern/skillrouter/internal/logging"
	"github.com/klauern/skillrouter/internal/model"
)

// skillDocFile is the documentation artifact resolved under a skill's
// catalog path.
const skillDocFile = "SKILL.md"

// entry is one cached skill body, tagged with the generation it was read
// under so a stale read is never served after Invalidate.
type entry struct {
	content    string
	generation uint64
}

// Loader resolves and caches skill documentation bodies under a configured
// skills root. Safe for concurrent use.
type Loader struct {
	skillsRoot string

	mu         sync.RWMutex
	entries    map[string]entry
	generation uint64
}

// New constructs a Loader rooted at skillsRoot (e.g. "~/.claude/skills").
func New(skillsRoot string) *Loader {
	return &Loader{
		skillsRoot: skillsRoot,
		entries:    make(map[string]entry),
	}
}

// Invalidate discards every cached entry by bumping the generation counter.
// Call this in the same step a catalog reload swaps its snapshot.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.generation++
	l.entries = make(map[string]entry)
}

// Load resolves <skills_root>/<path>/SKILL.md for the named skill and
// returns its content. On a missing or unreadable file, it returns a
// human-readable placeholder naming the expected path, plus a non-nil
// Warning — never an error; the assembled context block must still be
// intelligible in a degraded deployment.
func (l *Loader) Load(name, relPath string) (string, *model.Warning) {
	l.mu.RLock()
	gen := l.generation
	if e, ok := l.entries[name]; ok && e.generation == gen {
		l.mu.RUnlock()
		return e.content, nil
	}
	l.mu.RUnlock()

	docPath := filepath.Join(l.skillsRoot, relPath, skillDocFile)
	data, err := os.ReadFile(docPath) //nolint:gosec // docPath is derived from the validated catalog
	if err != nil {
		logging.Default().Warn("skill documentation unreadable",
			logging.Skill(name),
			logging.Path(docPath),
			logging.Err(err),
		)
		return placeholder(name, docPath), &model.Warning{
			Kind:    "missing_content",
			Skill:   name,
			Related: docPath,
			Message: fmt.Sprintf("documentation for skill %q not found at %s", name, docPath),
		}
	}

	content := string(data)
	l.mu.Lock()
	l.entries[name] = entry{content: content, generation: gen}
	l.mu.Unlock()

	return content, nil
}

func placeholder(name, expectedPath string) string {
	return fmt.Sprintf("(documentation unavailable for %q — expected at %s)", name, expectedPath)
}
