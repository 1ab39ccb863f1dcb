package catalog

import (
	"errors"
	"fmt"
)

// MaxCategories is the upper bound on categories per resource, enforced
// at selection time and again by Validate.
const MaxCategories = 3

// ErrTooManyCategories is returned by AddCategory when the cap is hit.
var ErrTooManyCategories = fmt.Errorf("at most %d categories allowed", MaxCategories)

// AllCategories is the closed set of subject categories offered by the
// upload form, matching what the Hub indexes.
var AllCategories = []string{
	"AI", "Web", "ML", "DL", "Blockchain", "Cybersecurity", "Cloud",
	"DevOps", "React", "Next.js", "Node.js", "Python", "Flask", "Django",
	"Java", "C++", "C", "JavaScript", "TypeScript", "Go", "Rust", "Kotlin",
	"Swift", "UI/UX", "Linux", "Data Science", "Big Data", "Database",
	"SQL", "NoSQL", "MongoDB", "Firebase", "Android", "iOS", "AR/VR",
	"Game Dev", "Networking", "Agile", "Git", "Open Source", "Math", "DSA",
}

// Draft collects upload form input. Validate gates the outbound request:
// any single violation aborts with no partial submission.
type Draft struct {
	Title       string
	Description string
	Categories  []string
	FileType    string
	Link        string
	UserID      string
}

// Validate checks all upload preconditions and returns the first
// violation. A nil result means the draft is ready to submit.
func (d *Draft) Validate() error {
	if d.Title == "" {
		return errors.New("title is required")
	}
	if d.Description == "" {
		return errors.New("description is required")
	}
	if d.FileType == "" {
		return errors.New("file type is required")
	}
	if d.Link == "" {
		return errors.New("link is required")
	}
	if len(d.Categories) < 1 || len(d.Categories) > MaxCategories {
		return fmt.Errorf("select between 1 and %d categories", MaxCategories)
	}
	if !ValidURL(d.Link) {
		return fmt.Errorf("link %q is not a valid URL", d.Link)
	}
	if d.UserID == "" {
		return errors.New("you must be logged in to upload a resource")
	}
	return nil
}

// AddCategory appends a category unless it is already selected or the
// cap is reached. The cap is refused here, at selection time, so
// Validate never sees more than MaxCategories.
func (d *Draft) AddCategory(c string) error {
	for _, existing := range d.Categories {
		if existing == c {
			return nil
		}
	}
	if len(d.Categories) >= MaxCategories {
		return ErrTooManyCategories
	}
	d.Categories = append(d.Categories, c)
	return nil
}

// ToggleCategory adds or removes a selection, honoring the cap.
func (d *Draft) ToggleCategory(c string) error {
	for i, existing := range d.Categories {
		if existing == c {
			d.Categories = append(d.Categories[:i], d.Categories[i+1:]...)
			return nil
		}
	}
	return d.AddCategory(c)
}
