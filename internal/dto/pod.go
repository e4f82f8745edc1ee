package dto

import (
	"time"

	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
)

// PodResponse defines the data returned for a POD image record.
type PodResponse struct {
	PodID       string    `json:"podID"`
	TripID      string    `json:"tripID"`
	ImageURL    string    `json:"imageURL"`
	DriveFileID string    `json:"driveFileID"`
	FileName    string    `json:"fileName"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// ListPodsResponse wraps a trip's POD image records.
type ListPodsResponse struct {
	Pods []PodResponse `json:"pods"`
}

// ToPodResponse converts a domain.Pod to its DTO.
func ToPodResponse(p *domain.Pod) PodResponse {
	return PodResponse{
		PodID:       p.PodID,
		TripID:      p.TripID,
		ImageURL:    p.ImageURL,
		DriveFileID: p.DriveFileID,
		FileName:    p.FileName,
		UploadedAt:  p.UploadedAt,
	}
}

// ToPodResponses converts a slice of domain.Pod to DTOs.
func ToPodResponses(pods []domain.Pod) []PodResponse {
	responses := make([]PodResponse, len(pods))
	for i, p := range pods {
		responses[i] = ToPodResponse(&p)
	}
	return responses
}
