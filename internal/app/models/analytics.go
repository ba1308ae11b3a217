package models

import "time"

// Analytics is part of the persisted document schema. Sessions are recorded
// by clients and carried through by the server; no endpoint in this service
// writes to them.
type Analytics struct {
	Sessions []Session `json:"sessions"`
}

// Session is a recorded client session.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	StartedAt time.Time `json:"startedAt"`
}
