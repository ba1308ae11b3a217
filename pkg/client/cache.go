package client

import "sync"

// Cache is the client's in-memory copy of the server document. Successful
// calls merge their responses into it; LoadRemoteData replaces it wholesale.
// There is no conflict resolution between local and remote edits, the last
// call wins.
type Cache struct {
	mu   sync.RWMutex
	data Data
}

// Data returns a copy of the cached document.
func (c *Cache) Data() Data {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneData(c.data)
}

// ReplaceAll swaps the whole cached document.
func (c *Cache) ReplaceAll(d Data) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = cloneData(d)
}

// UpsertCourse merges a course returned by the server into the cache.
func (c *Cache) UpsertCourse(course Course) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.data.Courses {
		if c.data.Courses[i].ID == course.ID {
			c.data.Courses[i] = course
			return
		}
	}
	c.data.Courses = append(c.data.Courses, course)
}

// UpsertNote merges a community note returned by the server into the cache.
func (c *Cache) UpsertNote(note CommunityNote) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.data.CommunityNotes {
		if c.data.CommunityNotes[i].ID == note.ID {
			c.data.CommunityNotes[i] = note
			return
		}
	}
	c.data.CommunityNotes = append(c.data.CommunityNotes, note)
}

// RemoveNote drops a note from the cache.
func (c *Cache) RemoveNote(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.data.CommunityNotes {
		if c.data.CommunityNotes[i].ID == id {
			c.data.CommunityNotes = append(c.data.CommunityNotes[:i], c.data.CommunityNotes[i+1:]...)
			return
		}
	}
}

// ApplyRating updates a cached note's aggregate after a rating call. The
// server does not echo the full ratings list, so only the aggregate moves.
func (c *Cache) ApplyRating(noteID string, summary RatingSummary) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.data.CommunityNotes {
		if c.data.CommunityNotes[i].ID == noteID {
			c.data.CommunityNotes[i].AverageRating = summary.AverageRating
			return
		}
	}
}

func cloneData(d Data) Data {
	out := Data{
		Courses:        make([]Course, len(d.Courses)),
		CommunityNotes: make([]CommunityNote, len(d.CommunityNotes)),
		Users:          append([]User(nil), d.Users...),
		Analytics: Analytics{
			Sessions: append([]Session(nil), d.Analytics.Sessions...),
		},
	}
	for i, course := range d.Courses {
		course.Links = append([]string(nil), course.Links...)
		out.Courses[i] = course
	}
	for i, note := range d.CommunityNotes {
		note.Ratings = append([]Rating(nil), note.Ratings...)
		out.CommunityNotes[i] = note
	}
	return out
}
