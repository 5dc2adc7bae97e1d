// Package catalogio parses the YAML-shaped skill catalog into a validated
// model.Catalog, or a typed error describing exactly why it was rejected.
//
// Errors are returned in the precedence order the spec pins down: NotFound,
// Empty, ParseFailure, MissingSection, ValidationFailure. A catalog that
// fails validation is rejected in full — there is no partially-valid
// Catalog to observe.
package catalogio

import (
	"io/fs"
	"os"
	"regexp"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/klauern/skillrouter/internal/model"
)

// Load reads and validates the catalog file at path on the OS filesystem.
func Load(path string) (*model.Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is operator-supplied configuration
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, err
	}
	return parse(path, data)
}

// LoadFS reads and validates the catalog file at path within fsys, so the
// loader can be exercised against testing/fstest.MapFS without touching disk.
func LoadFS(fsys fs.FS, path string) (*model.Catalog, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, err
	}
	return parse(path, data)
}

func parse(path string, data []byte) (*model.Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseFailureError{Path: path, Line: lineHint(err), Err: err}
	}

	if len(doc.Content) == 0 {
		return nil, &EmptyError{Path: path}
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode || len(root.Content) == 0 {
		return nil, &EmptyError{Path: path}
	}

	skillsNode := findChild(root, "skills")
	if skillsNode == nil {
		return nil, &MissingSectionError{Section: "skills"}
	}

	cat := &model.Catalog{
		Skills:     map[string]model.Skill{},
		Tasks:      map[string]model.Task{},
		Categories: map[string]model.Category{},
		Source:     model.CatalogSource{Path: path},
		LoadedAt:   time.Now(),
	}

	if err := decodeSkills(skillsNode, cat); err != nil {
		return nil, &ParseFailureError{Path: path, Line: lineHint(err), Err: err}
	}

	if tasksNode := findChild(root, "tasks"); tasksNode != nil {
		if err := decodeTasks(tasksNode, cat); err != nil {
			return nil, &ParseFailureError{Path: path, Line: lineHint(err), Err: err}
		}
	}

	if catsNode := findChild(root, "categories"); catsNode != nil {
		if err := decodeCategories(catsNode, cat); err != nil {
			return nil, &ParseFailureError{Path: path, Line: lineHint(err), Err: err}
		}
	}

	if offenders := validate(cat); len(offenders) > 0 {
		return nil, &ValidationFailureError{Offenders: offenders}
	}

	return cat, nil
}

func decodeSkills(node *yaml.Node, cat *model.Catalog) error {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		var s model.Skill
		if err := node.Content[i+1].Decode(&s); err != nil {
			return err
		}
		s.Name = name
		cat.Skills[name] = s
		cat.SkillNames = append(cat.SkillNames, name)
	}
	return nil
}

func decodeTasks(node *yaml.Node, cat *model.Catalog) error {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		var t model.Task
		if err := node.Content[i+1].Decode(&t); err != nil {
			return err
		}
		t.Name = name
		cat.Tasks[name] = t
		cat.TaskNames = append(cat.TaskNames, name)
	}
	return nil
}

func decodeCategories(node *yaml.Node, cat *model.Catalog) error {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		var c model.Category
		if err := node.Content[i+1].Decode(&c); err != nil {
			return err
		}
		c.Name = name
		cat.Categories[name] = c
	}
	return nil
}

func findChild(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

var lineRE = regexp.MustCompile(`line (\d+)`)

// lineHint extracts a 1-indexed line number from a yaml error message when
// the parser supplies one (yaml.v3 embeds "line N:" in TypeError messages);
// returns 0 otherwise.
func lineHint(err error) int {
	if err == nil {
		return 0
	}
	m := lineRE.FindStringSubmatch(err.Error())
	if m == nil {
		return 0
	}
	n, convErr := strconv.Atoi(m[1])
	if convErr != nil {
		return 0
	}
	return n
}
