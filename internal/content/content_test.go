package content

import "testing"

func TestFindProjectHitsEveryCatalogEntry(t *testing.T) {
	for _, want := range Projects() {
		got, ok := FindProject(want.ID)
		if !ok {
			t.Fatalf("FindProject(%q) missed", want.ID)
		}
		if got.Title != want.Title {
			t.Fatalf("FindProject(%q): got %q, want %q", want.ID, got.Title, want.Title)
		}
	}
}

func TestFindProjectMiss(t *testing.T) {
	if _, ok := FindProject("nope"); ok {
		t.Fatal("expected miss for unknown id")
	}
	if _, ok := FindProject(""); ok {
		t.Fatal("expected miss for empty id")
	}
}

func TestFindProjectKnownRecord(t *testing.T) {
	p, ok := FindProject("rebranding")
	if !ok {
		t.Fatal("rebranding should resolve")
	}
	if p.Title != "Corporate Rebranding" {
		t.Fatalf("unexpected title: %q", p.Title)
	}
	if p.Category != "Branding" {
		t.Fatalf("unexpected category: %q", p.Category)
	}
}

func TestProjectIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Projects() {
		if seen[p.ID] {
			t.Fatalf("duplicate project id %q", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestProjectImagesNonEmpty(t *testing.T) {
	for _, p := range Projects() {
		if len(p.Images) == 0 {
			t.Fatalf("project %q has no images", p.ID)
		}
	}
}

func TestSkillExpertiseInRange(t *testing.T) {
	for _, s := range Skills() {
		if s.Expertise < 0 || s.Expertise > 100 {
			t.Fatalf("skill %q expertise out of range: %d", s.Name, s.Expertise)
		}
	}
}

func TestCatalogSizes(t *testing.T) {
	if n := len(Projects()); n != 4 {
		t.Fatalf("expected 4 projects, got %d", n)
	}
	if n := len(Achievements()); n != 4 {
		t.Fatalf("expected 4 achievements, got %d", n)
	}
	if n := len(Skills()); n != 5 {
		t.Fatalf("expected 5 skills, got %d", n)
	}
	if n := len(SocialLinks()); n != 4 {
		t.Fatalf("expected 4 social links, got %d", n)
	}
}
