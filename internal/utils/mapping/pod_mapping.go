package mapping

import (
	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	"github.com/freightbooks/freight_ledger_app/internal/models"
)

// ToModelPod converts a domain Pod to a model Pod.
func ToModelPod(d domain.Pod) models.Pod {
	return models.Pod{
		PodID:       d.PodID,
		TripID:      d.TripID,
		ImageURL:    d.ImageURL,
		DriveFileID: d.DriveFileID,
		FileName:    d.FileName,
		UploadedAt:  d.UploadedAt,
	}
}

// ToDomainPod converts a model Pod to a domain Pod.
func ToDomainPod(m models.Pod) domain.Pod {
	return domain.Pod{
		PodID:       m.PodID,
		TripID:      m.TripID,
		ImageURL:    m.ImageURL,
		DriveFileID: m.DriveFileID,
		FileName:    m.FileName,
		UploadedAt:  m.UploadedAt,
	}
}
