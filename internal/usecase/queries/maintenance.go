package queries

import (
	"context"

	"innkeeper/internal/domain/maintenance"
	"innkeeper/internal/pkg/errs"
)

type MaintenanceQueries interface {
	ListMaintenance(ctx context.Context, status *string) ([]*MaintenanceView, error)
}

type maintenanceQueriesImpl struct {
	store MaintenanceReadStore
}

func NewMaintenanceQueries(store MaintenanceReadStore) MaintenanceQueries {
	return &maintenanceQueriesImpl{store: store}
}

func (q *maintenanceQueriesImpl) ListMaintenance(ctx context.Context, status *string) ([]*MaintenanceView, error) {
	if status != nil && !maintenance.Status(*status).IsValid() {
		return nil, errs.ErrDomainValidation
	}
	views, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return views, nil
	}
	filtered := make([]*MaintenanceView, 0, len(views))
	for _, v := range views {
		if v.Status == *status {
			filtered = append(filtered, v)
		}
	}
	return filtered, nil
}
