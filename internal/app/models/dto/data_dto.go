package dto

import (
	"time"

	"github.com/notesync/notesync/internal/app/models"
)

// PublicUser is a user record with the password stripped, as returned by the
// full-data endpoint.
type PublicUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// DataResponse is the full document as served to clients.
type DataResponse struct {
	Courses        []models.Course        `json:"courses"`
	CommunityNotes []models.CommunityNote `json:"communityNotes"`
	Users          []PublicUser           `json:"users"`
	Analytics      models.Analytics       `json:"analytics"`
}

// NewDataResponse builds the client view of a document snapshot.
func NewDataResponse(doc models.Document) DataResponse {
	users := make([]PublicUser, len(doc.Users))
	for i, u := range doc.Users {
		users[i] = PublicUser{
			ID:        u.ID,
			Email:     u.Email,
			Name:      u.Name,
			CreatedAt: u.CreatedAt,
		}
	}
	return DataResponse{
		Courses:        doc.Courses,
		CommunityNotes: doc.CommunityNotes,
		Users:          users,
		Analytics:      doc.Analytics,
	}
}
