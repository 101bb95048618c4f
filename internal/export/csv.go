package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/alexmorgan/folio/internal/content"
)

func ToCSV(projects []content.Project, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"ID", "Title", "Category", "Year", "Description", "Challenge", "Solution", "Results", "Images"}); err != nil {
		return err
	}

	for _, p := range projects {
		row := []string{
			p.ID,
			p.Title,
			p.Category,
			fmt.Sprintf("%d", p.Year),
			p.Description,
			p.Challenge,
			p.Solution,
			p.Results,
			strings.Join(p.Images, " "),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
