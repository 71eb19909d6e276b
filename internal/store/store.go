// Package store persists orders, tags and their associations in PostgreSQL using
// explicit SQL over a pgx pool.
package store

//go:generate mockgen -destination=storemock/repository.go -package=storemock demo/ordertags/internal/store Repository
