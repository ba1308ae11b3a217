package models

// Document is the single JSON object holding all persisted collections.
// The store owns the only live instance; everything handed out of the store
// is a copy.
type Document struct {
	Courses        []Course        `json:"courses"`
	Users          []User          `json:"users"`
	CommunityNotes []CommunityNote `json:"communityNotes"`
	Analytics      Analytics       `json:"analytics"`
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	out := Document{
		Courses:        make([]Course, len(d.Courses)),
		Users:          append([]User(nil), d.Users...),
		CommunityNotes: make([]CommunityNote, len(d.CommunityNotes)),
		Analytics: Analytics{
			Sessions: append([]Session(nil), d.Analytics.Sessions...),
		},
	}
	for i, c := range d.Courses {
		c.Links = append([]string(nil), c.Links...)
		out.Courses[i] = c
	}
	for i, n := range d.CommunityNotes {
		n.Ratings = append([]Rating(nil), n.Ratings...)
		out.CommunityNotes[i] = n
	}
	return out
}

// Normalize replaces nil collection slices with empty ones so the document
// always marshals with all top-level keys present.
func (d *Document) Normalize() {
	if d.Courses == nil {
		d.Courses = []Course{}
	}
	if d.Users == nil {
		d.Users = []User{}
	}
	if d.CommunityNotes == nil {
		d.CommunityNotes = []CommunityNote{}
	}
	if d.Analytics.Sessions == nil {
		d.Analytics.Sessions = []Session{}
	}
	for i := range d.Courses {
		if d.Courses[i].Links == nil {
			d.Courses[i].Links = []string{}
		}
	}
	for i := range d.CommunityNotes {
		if d.CommunityNotes[i].Ratings == nil {
			d.CommunityNotes[i].Ratings = []Rating{}
		}
	}
}
