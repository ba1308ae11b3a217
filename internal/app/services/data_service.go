package services

import (
	"context"

	"github.com/notesync/notesync/internal/app/models/dto"
	"github.com/notesync/notesync/internal/store"
)

// DataService defines the interface for full-document reads
type DataService interface {
	GetData(ctx context.Context) *dto.DataResponse
}

// dataServiceImpl implements DataService
type dataServiceImpl struct {
	store *store.Store
}

// NewDataService creates a new DataService
func NewDataService(st *store.Store) DataService {
	return &dataServiceImpl{store: st}
}

// GetData returns the whole document with user passwords stripped.
func (s *dataServiceImpl) GetData(_ context.Context) *dto.DataResponse {
	resp := dto.NewDataResponse(s.store.Snapshot())
	return &resp
}
