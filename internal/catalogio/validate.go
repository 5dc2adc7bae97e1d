package catalogio

import "github.com/klauern/skillrouter/internal/model"

// validate runs the three cross-reference checks from spec.md §4.A and
// returns every offender found — it never fail-fasts on the first problem.
func validate(cat *model.Catalog) []Offender {
	var offenders []Offender

	for _, name := range cat.SkillNames {
		skill := cat.Skills[name]
		for _, dep := range skill.Dependencies {
			if !cat.HasSkill(dep) {
				offenders = append(offenders, Offender{Kind: "skill_dependency", Owner: name, Reference: dep})
			}
		}
	}

	for _, name := range cat.TaskNames {
		task := cat.Tasks[name]
		for _, skillName := range task.Skills {
			if !cat.HasSkill(skillName) {
				offenders = append(offenders, Offender{Kind: "task_skill", Owner: name, Reference: skillName})
			}
		}
	}

	for catName, category := range cat.Categories {
		for _, taskName := range category.Tasks {
			if !cat.HasTask(taskName) {
				offenders = append(offenders, Offender{Kind: "category_task", Owner: catName, Reference: taskName})
			}
		}
		for _, skillName := range category.Skills {
			if !cat.HasSkill(skillName) {
				offenders = append(offenders, Offender{Kind: "category_skill", Owner: catName, Reference: skillName})
			}
		}
	}

	return offenders
}
