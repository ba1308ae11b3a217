// Package seed provides the default data the store starts from when the
// data file is missing or empty.
package seed

import (
	"github.com/google/uuid"

	"github.com/notesync/notesync/internal/app/models"
)

// Courses returns the three example courses a fresh installation starts with.
func Courses() []models.Course {
	return []models.Course{
		{
			ID:          uuid.NewString(),
			Title:       "Calculus I",
			Icon:        "📐",
			Description: "Limits, derivatives and integrals of single-variable functions.",
			Notes:       "",
			Links:       []string{"https://ocw.mit.edu/courses/18-01-single-variable-calculus-fall-2006/"},
		},
		{
			ID:          uuid.NewString(),
			Title:       "Introduction to Programming",
			Icon:        "💻",
			Description: "Core programming concepts: variables, control flow, functions and data structures.",
			Notes:       "",
			Links:       []string{"https://cs50.harvard.edu/"},
		},
		{
			ID:          uuid.NewString(),
			Title:       "General Chemistry",
			Icon:        "🧪",
			Description: "Atomic structure, chemical bonding, stoichiometry and thermodynamics.",
			Notes:       "",
			Links:       []string{},
		},
	}
}
