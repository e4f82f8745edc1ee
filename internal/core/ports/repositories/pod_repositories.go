package repositories

import (
	"context"

	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
)

// PodRepositoryFacade defines persistence operations for POD image records.
type PodRepositoryFacade interface {
	SavePod(ctx context.Context, pod domain.Pod) error
	FindPodByID(ctx context.Context, podID string) (*domain.Pod, error)
	ListPodsByTrip(ctx context.Context, tripID string) ([]domain.Pod, error)
	DeletePod(ctx context.Context, podID string) error
}
