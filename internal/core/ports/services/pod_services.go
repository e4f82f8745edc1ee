package services

import (
	"context"
	"io"

	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
)

// PodReaderSvc defines read operations for POD image records
type PodReaderSvc interface {
	// ListPods retrieves a trip's POD image records, newest first.
	ListPods(ctx context.Context, tripID string) ([]domain.Pod, error)
}

// PodWriterSvc defines write operations for POD image records
type PodWriterSvc interface {
	// UploadPod stores a POD image in the trip's Drive folder, records it,
	// and marks the trip's POD flag as uploaded.
	UploadPod(ctx context.Context, tripID string, fileName string, mimeType string, content io.Reader, requestingUserID string) (*domain.Pod, error)

	// DeletePod removes a POD record and its Drive file. The trip's POD flag
	// is left untouched.
	DeletePod(ctx context.Context, tripID string, podID string, requestingUserID string) error
}

// PodSvcFacade combines the POD service interfaces
type PodSvcFacade interface {
	PodReaderSvc
	PodWriterSvc
}
