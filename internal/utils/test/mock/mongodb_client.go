package mock

import (
	"context"

	"github.com/smartshark/sharkdb-cli/internal/cloud/mongodb"
)

// MongoDBClient is a mocked MongoDB client
type MongoDBClient struct {
	mongodb.Client
	PingFn       func(ctx context.Context) error
	CreateUserFn func(ctx context.Context, db string, user mongodb.NewUser) error
	DropUserFn   func(ctx context.Context, db, username string) error
	UsersFn      func(ctx context.Context, db, username string) ([]mongodb.User, error)
	DisconnectFn func(ctx context.Context) error
}

// Ping calls the mocked Ping implementation if provided,
// otherwise the mock's underlying client implementation
// NOTE: may panic if underlying client is not set
func (c MongoDBClient) Ping(ctx context.Context) error {
	if c.PingFn == nil {
		return c.Client.Ping(ctx)
	}
	return c.PingFn(ctx)
}

// CreateUser calls the mocked CreateUser implementation if provided,
// otherwise the mock's underlying client implementation
// NOTE: may panic if underlying client is not set
func (c MongoDBClient) CreateUser(ctx context.Context, db string, user mongodb.NewUser) error {
	if c.CreateUserFn == nil {
		return c.Client.CreateUser(ctx, db, user)
	}
	return c.CreateUserFn(ctx, db, user)
}

// DropUser calls the mocked DropUser implementation if provided,
// otherwise the mock's underlying client implementation
// NOTE: may panic if underlying client is not set
func (c MongoDBClient) DropUser(ctx context.Context, db, username string) error {
	if c.DropUserFn == nil {
		return c.Client.DropUser(ctx, db, username)
	}
	return c.DropUserFn(ctx, db, username)
}

// Users calls the mocked Users implementation if provided,
// otherwise the mock's underlying client implementation
// NOTE: may panic if underlying client is not set
func (c MongoDBClient) Users(ctx context.Context, db, username string) ([]mongodb.User, error) {
	if c.UsersFn == nil {
		return c.Client.Users(ctx, db, username)
	}
	return c.UsersFn(ctx, db, username)
}

// Disconnect calls the mocked Disconnect implementation if provided,
// otherwise returns nil so tests need not wire it
func (c MongoDBClient) Disconnect(ctx context.Context) error {
	if c.DisconnectFn == nil {
		return nil
	}
	return c.DisconnectFn(ctx)
}
