package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexmorgan/folio/internal/content"
)

func TestToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")

	err := ToJSON(content.Me(), content.Projects(), content.Achievements(), content.Skills(), path)
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var doc jsonExport
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("invalid json: %v", err)
	}

	if doc.Profile.Name != "Alex Morgan" {
		t.Fatalf("unexpected profile name: %q", doc.Profile.Name)
	}
	if len(doc.Projects) != 4 {
		t.Fatalf("expected 4 projects, got %d", len(doc.Projects))
	}
	if doc.Projects[0].ID != "rebranding" || doc.Projects[0].Title != "Corporate Rebranding" {
		t.Fatalf("unexpected first project: %+v", doc.Projects[0])
	}
	if len(doc.Achievements) != 4 || len(doc.Skills) != 5 {
		t.Fatalf("unexpected catalog counts: %d achievements, %d skills", len(doc.Achievements), len(doc.Skills))
	}
	if doc.ExportedAt == "" {
		t.Fatal("exported_at should be set")
	}
}

func TestToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.csv")

	if err := ToCSV(content.Projects(), path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	if len(rows) != 5 { // header + 4 projects
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}
	if rows[0][0] != "ID" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "rebranding" || rows[1][1] != "Corporate Rebranding" {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
}

func TestToCSVBadPath(t *testing.T) {
	err := ToCSV(content.Projects(), filepath.Join(t.TempDir(), "missing", "out.csv"))
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
