// Package content holds the static portfolio catalogs. Everything here is
// fixed at compile time and read-only.
package content

// Project is one showcased campaign. Images is never empty; Images[0] is
// the cover used on the card.
type Project struct {
	ID          string
	Title       string
	Category    string
	Description string
	Challenge   string
	Solution    string
	Results     string
	Client      string
	Year        int
	Accent      string // hex accent color
	Images      []string
}

type Achievement struct {
	ID          int
	Title       string
	Description string
	Icon        string
	Year        int
}

// Skill has an expertise level in percent (0-100).
type Skill struct {
	ID          int
	Name        string
	Expertise   int
	Description string
}

type SocialLink struct {
	Name string
	URL  string
}

// Profile is the hero/footer identity block.
type Profile struct {
	Name     string
	Role     string
	Tagline  string
	Bio      string
	Email    string
	Phone    string
	Location string
	Note     string
	Avatar   string
}

// Projects returns the full ordered catalog.
func Projects() []Project {
	return projects
}

// FindProject does a linear scan over the catalog. The catalog has four
// entries; an index would be overkill.
func FindProject(id string) (Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

func Achievements() []Achievement {
	return achievements
}

func Skills() []Skill {
	return skills
}

func SocialLinks() []SocialLink {
	return socialLinks
}

func Me() Profile {
	return profile
}
