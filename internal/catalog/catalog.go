// Package catalog holds the guided exercise definitions: short,
// evidence-aligned coaching activities the chat assistant can walk a
// user through step by step. Entries are immutable reference data.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Skill is the resilience skill an exercise trains.
type Skill string

const (
	SkillEmotionalRegulation Skill = "Emotional Regulation"
	SkillCopingSkills        Skill = "Coping Skills"
	SkillGoalSetting         Skill = "Goal Setting"
	SkillStrengths           Skill = "Strengths"
	SkillFlexibleThinking    Skill = "Flexible Thinking"
	SkillProblemSolving      Skill = "Problem Solving"
	SkillSelfAcceptance      Skill = "Self-Acceptance"
	SkillOptimisticThinking  Skill = "Optimistic Thinking"
)

// Skills lists every skill category in display order.
var Skills = []Skill{
	SkillEmotionalRegulation,
	SkillCopingSkills,
	SkillGoalSetting,
	SkillStrengths,
	SkillFlexibleThinking,
	SkillProblemSolving,
	SkillSelfAcceptance,
	SkillOptimisticThinking,
}

// Exercise is one catalog entry.
type Exercise struct {
	ID          string   `yaml:"id" json:"id"`
	Skill       Skill    `yaml:"skill" json:"skill"`
	Title       string   `yaml:"title" json:"title"`
	DurationMin int      `yaml:"duration_min" json:"duration_min"`
	Summary     string   `yaml:"summary" json:"summary"`
	ScienceNote string   `yaml:"science_note" json:"science_note"`
	Steps       []string `yaml:"steps" json:"steps"` // 3-6 concise steps
	GoalTitle   string   `yaml:"goal_title" json:"goal_title"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Featured    bool     `yaml:"featured,omitempty" json:"featured,omitempty"`
}

// Catalog is an ordered, id-indexed set of exercises.
type Catalog struct {
	items []Exercise
	index map[string]int
}

// New builds a catalog from the given exercises. Duplicate ids and
// entries without steps are rejected.
func New(items []Exercise) (*Catalog, error) {
	c := &Catalog{
		items: items,
		index: make(map[string]int, len(items)),
	}
	for i, ex := range items {
		if ex.ID == "" {
			return nil, fmt.Errorf("exercise %d has no id", i)
		}
		if len(ex.Steps) == 0 {
			return nil, fmt.Errorf("exercise %q has no steps", ex.ID)
		}
		if _, dup := c.index[ex.ID]; dup {
			return nil, fmt.Errorf("duplicate exercise id %q", ex.ID)
		}
		c.index[ex.ID] = i
	}
	return c, nil
}

// Builtin returns the built-in exercise catalog.
func Builtin() *Catalog {
	c, err := New(builtinExercises)
	if err != nil {
		// The built-in set is validated by tests; reaching this is a bug.
		panic(err)
	}
	return c
}

// LoadFile loads a catalog from a YAML file, replacing the built-in set.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []Exercise
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return New(items)
}

// Get returns the exercise with the given id, or nil.
func (c *Catalog) Get(id string) *Exercise {
	i, ok := c.index[id]
	if !ok {
		return nil
	}
	return &c.items[i]
}

// List returns all exercises in catalog order.
func (c *Catalog) List() []Exercise {
	out := make([]Exercise, len(c.items))
	copy(out, c.items)
	return out
}

// Featured returns the exercises flagged for quick actions.
func (c *Catalog) Featured() []Exercise {
	var out []Exercise
	for _, ex := range c.items {
		if ex.Featured {
			out = append(out, ex)
		}
	}
	return out
}

// BySkill filters exercises by skill category.
func (c *Catalog) BySkill(skill Skill) []Exercise {
	var out []Exercise
	for _, ex := range c.items {
		if ex.Skill == skill {
			out = append(out, ex)
		}
	}
	return out
}

// ByMaxDuration filters exercises that fit in maxMin minutes.
func (c *Catalog) ByMaxDuration(maxMin int) []Exercise {
	if maxMin <= 0 {
		return c.List()
	}
	var out []Exercise
	for _, ex := range c.items {
		if ex.DurationMin <= maxMin {
			out = append(out, ex)
		}
	}
	return out
}
