package service

import (
	redisx "github.com/mashfiq/seatly/internal/redis"
	postgres "github.com/mashfiq/seatly/internal/repository/postgres"
	redis "github.com/mashfiq/seatly/internal/repository/redis"
	"github.com/mashfiq/seatly/internal/service/assignment"
	"github.com/mashfiq/seatly/internal/service/billing"
	"github.com/mashfiq/seatly/internal/service/catalog"
	"github.com/mashfiq/seatly/internal/service/occupancy"
	"github.com/mashfiq/seatly/internal/service/seats"
)

type Services struct {
	Catalog    *catalog.Service
	Seats      *seats.Service
	Assignment *assignment.Service
	Billing    *billing.Service
	Occupancy  *occupancy.Service
}

type Config struct {
	Catalog    catalog.Config
	Assignment assignment.Config
}

func NewServices(
	store *postgres.Store,
	cache *redis.Cache,
	pubsub *redisx.SeatsPubSub,
	limiter *redis.SlidingWindowLimiter,
	cfg Config,
) *Services {
	return &Services{
		Catalog:    catalog.New(store, cache, cfg.Catalog),
		Seats:      seats.New(store, cache, pubsub),
		Assignment: assignment.New(store, cache, pubsub, limiter, cfg.Assignment),
		Billing:    billing.New(store, cache),
		Occupancy:  occupancy.New(store),
	}
}
