package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alexmorgan/folio/internal/content"
)

type jsonExport struct {
	ExportedAt   string            `json:"exported_at"`
	Profile      jsonProfile       `json:"profile"`
	Projects     []jsonProject     `json:"projects"`
	Achievements []jsonAchievement `json:"achievements"`
	Skills       []jsonSkill       `json:"skills"`
}

type jsonProfile struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Tagline  string `json:"tagline"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

type jsonProject struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Challenge   string   `json:"challenge"`
	Solution    string   `json:"solution"`
	Results     string   `json:"results"`
	Client      string   `json:"client"`
	Year        int      `json:"year"`
	Images      []string `json:"images"`
}

type jsonAchievement struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Year        int    `json:"year"`
}

type jsonSkill struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Expertise   int    `json:"expertise"`
	Description string `json:"description"`
}

func ToJSON(me content.Profile, projects []content.Project, achievements []content.Achievement, skills []content.Skill, path string) error {
	doc := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Profile: jsonProfile{
			Name:     me.Name,
			Role:     me.Role,
			Tagline:  me.Tagline,
			Email:    me.Email,
			Phone:    me.Phone,
			Location: me.Location,
		},
	}

	for _, p := range projects {
		doc.Projects = append(doc.Projects, jsonProject{
			ID:          p.ID,
			Title:       p.Title,
			Category:    p.Category,
			Description: p.Description,
			Challenge:   p.Challenge,
			Solution:    p.Solution,
			Results:     p.Results,
			Client:      p.Client,
			Year:        p.Year,
			Images:      p.Images,
		})
	}

	for _, a := range achievements {
		doc.Achievements = append(doc.Achievements, jsonAchievement{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Year:        a.Year,
		})
	}

	for _, s := range skills {
		doc.Skills = append(doc.Skills, jsonSkill{
			ID:          s.ID,
			Name:        s.Name,
			Expertise:   s.Expertise,
			Description: s.Description,
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
