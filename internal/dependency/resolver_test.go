package dependency

import (
	"testing"

	"github.com/klauern/skillrouter/internal/model"
)

func catalogOf(skills ...model.Skill) *model.Catalog {
	cat := &model.Catalog{Skills: map[string]model.Skill{}}
	for _, s := range skills {
		cat.Skills[s.Name] = s
		cat.SkillNames = append(cat.SkillNames, s.Name)
	}
	return cat
}

func TestResolveMulti_Empty(t *testing.T) {
	cat := catalogOf()
	result := ResolveMulti(cat, nil)
	if len(result.Order) != 0 {
		t.Fatalf("expected empty order, got %v", result.Order)
	}
	if result.HasCycle {
		t.Fatalf("expected no cycle")
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", result.Warnings)
	}
}

func TestResolve_NoDependencies(t *testing.T) {
	cat := catalogOf(model.Skill{Name: "terraform-base"})
	result := Resolve(cat, "terraform-base")
	if len(result.Order) != 1 || result.Order[0] != "terraform-base" {
		t.Fatalf("expected [terraform-base], got %v", result.Order)
	}
}

// TestResolve_TopologicalCorrectness is property §8.1: every dependency
// that exists appears at a strictly smaller index than its dependent.
func TestResolve_TopologicalCorrectness(t *testing.T) {
	cat := catalogOf(
		model.Skill{Name: "terraform-base"},
		model.Skill{Name: "ecr-setup", Dependencies: []string{"terraform-base"}},
		model.Skill{Name: "aws-ecs-deployment", Dependencies: []string{"terraform-base", "ecr-setup"}},
	)
	result := Resolve(cat, "aws-ecs-deployment")
	index := map[string]int{}
	for i, name := range result.Order {
		index[name] = i
	}
	want := []string{"terraform-base", "ecr-setup", "aws-ecs-deployment"}
	if len(result.Order) != len(want) {
		t.Fatalf("expected %v, got %v", want, result.Order)
	}
	for _, name := range want {
		if _, ok := index[name]; !ok {
			t.Fatalf("expected %q in result, got %v", name, result.Order)
		}
	}
	if index["terraform-base"] >= index["ecr-setup"] {
		t.Errorf("terraform-base must precede ecr-setup")
	}
	if index["ecr-setup"] >= index["aws-ecs-deployment"] {
		t.Errorf("ecr-setup must precede aws-ecs-deployment")
	}
}

// TestResolveMulti_ClosureCompleteness is property §8.2.
func TestResolveMulti_ClosureCompleteness(t *testing.T) {
	cat := catalogOf(
		model.Skill{Name: "a"},
		model.Skill{Name: "b", Dependencies: []string{"a"}},
		model.Skill{Name: "c", Dependencies: []string{"a"}},
	)
	result := ResolveMulti(cat, []string{"b", "c"})
	got := map[string]bool{}
	for _, n := range result.Order {
		got[n] = true
	}
	for _, want := range []string{"a", "b", "c"} {
		if !got[want] {
			t.Errorf("expected closure to contain %q, got %v", want, result.Order)
		}
	}
}

// TestResolveMulti_Dedup is property §8.3.
func TestResolveMulti_Dedup(t *testing.T) {
	cat := catalogOf(
		model.Skill{Name: "a"},
		model.Skill{Name: "b", Dependencies: []string{"a"}},
	)
	result := ResolveMulti(cat, []string{"a", "b", "a", "b"})
	seen := map[string]int{}
	for _, n := range result.Order {
		seen[n]++
	}
	for name, count := range seen {
		if count != 1 {
			t.Errorf("expected %q to appear once, appeared %d times", name, count)
		}
	}
}

func TestResolve_MissingDependency_Warns(t *testing.T) {
	cat := catalogOf(
		model.Skill{Name: "aws-ecs-deployment", Dependencies: []string{"terraform-base"}},
	)
	result := Resolve(cat, "aws-ecs-deployment")
	if len(result.Order) != 1 || result.Order[0] != "aws-ecs-deployment" {
		t.Fatalf("expected referring skill still included, got %v", result.Order)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected 1 missing-dependency warning, got %v", result.Warnings)
	}
	if result.Warnings[0].Kind != "missing_dependency" {
		t.Errorf("expected missing_dependency warning, got %q", result.Warnings[0].Kind)
	}
}

// TestResolve_CycleTolerance covers the spec's example: skill-a -> skill-b
// -> skill-a. Resolution never raises; both skills are present, HasCycle is
// true, and at least one cycle warning names a participating edge.
func TestResolve_CycleTolerance(t *testing.T) {
	cat := catalogOf(
		model.Skill{Name: "skill-a", Dependencies: []string{"skill-b"}},
		model.Skill{Name: "skill-b", Dependencies: []string{"skill-a"}},
	)
	result := Resolve(cat, "skill-a")
	if !result.HasCycle {
		t.Fatalf("expected HasCycle=true")
	}
	if len(result.Order) != 2 {
		t.Fatalf("expected both skills present despite cycle, got %v", result.Order)
	}
	foundCycleWarning := false
	for _, w := range result.Warnings {
		if w.Kind == "cycle" {
			foundCycleWarning = true
		}
	}
	if !foundCycleWarning {
		t.Errorf("expected at least one cycle warning, got %v", result.Warnings)
	}
}

func TestDetectCycles(t *testing.T) {
	cat := catalogOf(
		model.Skill{Name: "skill-a", Dependencies: []string{"skill-b"}},
		model.Skill{Name: "skill-b", Dependencies: []string{"skill-a"}},
		model.Skill{Name: "standalone"},
	)
	cycles := DetectCycles(cat)
	if len(cycles) == 0 {
		t.Fatalf("expected at least one cycle")
	}
}

func TestDetectCycles_NoCycle(t *testing.T) {
	cat := catalogOf(
		model.Skill{Name: "a"},
		model.Skill{Name: "b", Dependencies: []string{"a"}},
	)
	if cycles := DetectCycles(cat); len(cycles) != 0 {
		t.Fatalf("expected no cycles, got %v", cycles)
	}
}
