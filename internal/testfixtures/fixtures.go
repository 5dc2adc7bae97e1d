// Package testfixtures provides the BDD catalog fixture from spec.md's
// worked scenarios and a helper that writes its SKILL.md files. The
// router, assemble and hook tests in this tree build their own catalogs
// and do not import this package.
package testfixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauern/skillrouter/internal/model"
)

// BDDCatalog returns the terraform-base -> ecr-setup -> aws-ecs-deployment
// dependency chain plus the static-website task bundling nextjs-standards,
// aws-static-hosting and github-actions-cicd.
func BDDCatalog() *model.Catalog {
	skills := []model.Skill{
		{Name: "terraform-base", Description: "Terraform project scaffolding", Path: "terraform-base"},
		{Name: "ecr-setup", Description: "ECR repository setup", Path: "ecr-setup", Dependencies: []string{"terraform-base"}},
		{Name: "aws-ecs-deployment", Description: "ECS service deployment", Path: "aws-ecs-deployment", Dependencies: []string{"ecr-setup"}},
		{Name: "nextjs-standards", Description: "Next.js project conventions", Path: "nextjs-standards", Dependencies: []string{"terraform-base"}},
		{Name: "aws-static-hosting", Description: "S3/CloudFront static hosting", Path: "aws-static-hosting", Dependencies: []string{"terraform-base"}},
		{Name: "github-actions-cicd", Description: "GitHub Actions CI/CD pipelines", Path: "github-actions-cicd"},
	}
	tasks := []model.Task{
		{
			Name:        "static-website",
			Description: "Build and deploy a static website",
			Triggers:    []string{"build a static website", "deploy static site"},
			Skills:      []string{"nextjs-standards", "aws-static-hosting", "github-actions-cicd"},
		},
	}

	cat := &model.Catalog{
		Skills:     map[string]model.Skill{},
		Tasks:      map[string]model.Task{},
		Categories: map[string]model.Category{},
	}
	for _, s := range skills {
		cat.Skills[s.Name] = s
		cat.SkillNames = append(cat.SkillNames, s.Name)
	}
	for _, t := range tasks {
		cat.Tasks[t.Name] = t
		cat.TaskNames = append(cat.TaskNames, t.Name)
	}
	return cat
}

// WriteSkillDocs writes a SKILL.md under root for every skill in cat, with
// body "<name> docs" — enough for content.Loader and assemble.Assemble tests
// to verify real file content flows through the pipeline.
func WriteSkillDocs(t *testing.T, root string, cat *model.Catalog) {
	t.Helper()
	for _, s := range cat.SkillList() {
		dir := filepath.Join(root, s.Path)
		if err := os.MkdirAll(dir, 0o750); err != nil {
			t.Fatalf("failed to create skill dir %s: %v", dir, err)
		}
		body := s.Name + " docs"
		if err := os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte(body), 0o600); err != nil {
			t.Fatalf("failed to write SKILL.md for %s: %v", s.Name, err)
		}
	}
}
