package service

import "context"

// Pinger is satisfied by *store.Storages.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthService struct {
	db Pinger
}

func NewHealthService(db Pinger) HealthService {
	return &healthService{db: db}
}

// Check reports whether the database answers.
func (s *healthService) Check(ctx context.Context) error {
	return s.db.Ping(ctx)
}
