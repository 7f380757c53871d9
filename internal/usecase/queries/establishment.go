package queries

import "context"

type EstablishmentReadStore interface {
	List(ctx context.Context) ([]*EstablishmentView, error)
}

type EstablishmentQueries interface {
	List(ctx context.Context) ([]*EstablishmentView, error)
}

type establishmentQueriesImpl struct {
	store EstablishmentReadStore
}

func NewEstablishmentQueries(store EstablishmentReadStore) EstablishmentQueries {
	return &establishmentQueriesImpl{store: store}
}

func (q *establishmentQueriesImpl) List(ctx context.Context) ([]*EstablishmentView, error) {
	return q.store.List(ctx)
}
