package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinCatalogIsValid(t *testing.T) {
	cat := Builtin()
	list := cat.List()
	if len(list) == 0 {
		t.Fatal("builtin catalog is empty")
	}
	for _, ex := range list {
		if ex.ID == "" || ex.Title == "" || len(ex.Steps) == 0 {
			t.Errorf("exercise %+v incomplete", ex)
		}
		if ex.GoalTitle == "" {
			t.Errorf("exercise %s has no goal title", ex.ID)
		}
		if ex.DurationMin <= 0 {
			t.Errorf("exercise %s has duration %d", ex.ID, ex.DurationMin)
		}
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New([]Exercise{
		{ID: "a", Title: "A", Steps: []string{"one"}},
		{ID: "a", Title: "A again", Steps: []string{"one"}},
	})
	if err == nil {
		t.Fatal("New accepted duplicate ids")
	}
}

func TestNewRejectsStepless(t *testing.T) {
	if _, err := New([]Exercise{{ID: "a", Title: "A"}}); err == nil {
		t.Fatal("New accepted exercise without steps")
	}
}

func TestGetUnknownReturnsNil(t *testing.T) {
	if ex := Builtin().Get("nope"); ex != nil {
		t.Errorf("Get(nope) = %+v, want nil", ex)
	}
}

func TestFilters(t *testing.T) {
	cat := Builtin()

	for _, ex := range cat.BySkill(SkillCopingSkills) {
		if ex.Skill != SkillCopingSkills {
			t.Errorf("BySkill leaked %s (%s)", ex.ID, ex.Skill)
		}
	}
	for _, ex := range cat.ByMaxDuration(5) {
		if ex.DurationMin > 5 {
			t.Errorf("ByMaxDuration(5) leaked %s (%d min)", ex.ID, ex.DurationMin)
		}
	}
	for _, ex := range cat.Featured() {
		if !ex.Featured {
			t.Errorf("Featured leaked %s", ex.ID)
		}
	}
}

func TestLoadFileOverridesBuiltin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	yaml := `
- id: custom-1
  skill: Coping Skills
  title: Test exercise
  duration_min: 3
  summary: A test.
  science_note: n/a
  steps:
    - Do the thing.
    - Do it again.
  goal_title: 3-minute test
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(cat.List()) != 1 {
		t.Fatalf("loaded %d exercises, want 1", len(cat.List()))
	}
	ex := cat.Get("custom-1")
	if ex == nil || ex.Title != "Test exercise" || len(ex.Steps) != 2 {
		t.Errorf("Get(custom-1) = %+v", ex)
	}
}
