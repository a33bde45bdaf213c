// Package mongodb talks to the replication kit's MongoDB instance
// using the server's administrative commands
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	connectTimeout = 10 * time.Second

	// server error code returned by dropUser for an unknown account
	codeUserNotFound = 11
)

// Options configure the connection to a MongoDB instance
type Options struct {
	Host       string
	Port       int
	Username   string
	Password   string
	AuthSource string
}

// URI produces the instance's connection string
func (opts Options) URI() string {
	return fmt.Sprintf("mongodb://%s:%d", opts.Host, opts.Port)
}

// Role is a role grant scoped to a database
type Role struct {
	Role string `bson:"role" json:"role"`
	DB   string `bson:"db" json:"db"`
}

// WriteConcern directs how many replica set members must acknowledge the
// account creation and how long the server waits for them
type WriteConcern struct {
	W          string
	WTimeoutMS int
}

// NewUser describes an account to be created
type NewUser struct {
	Username     string
	Password     string
	Roles        []Role
	WriteConcern *WriteConcern
}

// User is an account as reported by the server
type User struct {
	ID       string `bson:"_id" json:"_id"`
	Username string `bson:"user" json:"user"`
	Database string `bson:"db" json:"db"`
	Roles    []Role `bson:"roles" json:"roles"`
}

// Client is a MongoDB administrative client
type Client interface {
	Ping(ctx context.Context) error
	CreateUser(ctx context.Context, db string, user NewUser) error
	DropUser(ctx context.Context, db, username string) error
	Users(ctx context.Context, db, username string) ([]User, error)
	Disconnect(ctx context.Context) error
}

// NewClient creates a new MongoDB client
// The underlying connection is established lazily on first use
func NewClient(opts Options) Client {
	return &client{opts: opts}
}

type client struct {
	opts Options

	connectOnce sync.Once
	connectErr  error
	mc          *mongo.Client
}

func (c *client) connect(ctx context.Context) (*mongo.Client, error) {
	c.connectOnce.Do(func() {
		clientOptions := options.Client().
			ApplyURI(c.opts.URI()).
			SetConnectTimeout(connectTimeout)

		if c.opts.Username != "" {
			clientOptions.SetAuth(options.Credential{
				AuthSource: c.opts.AuthSource,
				Username:   c.opts.Username,
				Password:   c.opts.Password,
			})
		}

		c.mc, c.connectErr = mongo.Connect(ctx, clientOptions)
	})

	if c.connectErr != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", c.opts.URI(), c.connectErr)
	}
	return c.mc, nil
}

func (c *client) Ping(ctx context.Context) error {
	mc, err := c.connect(ctx)
	if err != nil {
		return err
	}
	return mc.Ping(ctx, readpref.Primary())
}

func (c *client) CreateUser(ctx context.Context, db string, user NewUser) error {
	mc, err := c.connect(ctx)
	if err != nil {
		return err
	}

	if err := mc.Database(db).RunCommand(ctx, createUserCmd(user)).Err(); err != nil {
		return fmt.Errorf("failed to create user %q on database %q: %w", user.Username, db, err)
	}
	return nil
}

// DropUser removes the named account from the database
// An account that does not exist is not an error
func (c *client) DropUser(ctx context.Context, db, username string) error {
	mc, err := c.connect(ctx)
	if err != nil {
		return err
	}

	if err := mc.Database(db).RunCommand(ctx, dropUserCmd(username)).Err(); err != nil {
		if isUserNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to drop user %q on database %q: %w", username, db, err)
	}
	return nil
}

func (c *client) Users(ctx context.Context, db, username string) ([]User, error) {
	mc, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}

	var info struct {
		Users []User `bson:"users"`
	}
	if err := mc.Database(db).RunCommand(ctx, usersInfoCmd(username)).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to look up user %q on database %q: %w", username, db, err)
	}
	return info.Users, nil
}

func (c *client) Disconnect(ctx context.Context) error {
	if c.mc == nil {
		return nil
	}
	return c.mc.Disconnect(ctx)
}

// createUser must be the first key of the command document
func createUserCmd(user NewUser) bson.D {
	cmd := bson.D{
		{Key: "createUser", Value: user.Username},
		{Key: "pwd", Value: user.Password},
		{Key: "roles", Value: rolesValue(user.Roles)},
	}

	if wc := user.WriteConcern; wc != nil {
		cmd = append(cmd, bson.E{Key: "writeConcern", Value: bson.D{
			{Key: "w", Value: wc.W},
			{Key: "wtimeout", Value: wc.WTimeoutMS},
		}})
	}
	return cmd
}

func dropUserCmd(username string) bson.D {
	return bson.D{{Key: "dropUser", Value: username}}
}

func usersInfoCmd(username string) bson.D {
	return bson.D{{Key: "usersInfo", Value: username}}
}

func rolesValue(roles []Role) bson.A {
	value := make(bson.A, 0, len(roles))
	for _, role := range roles {
		value = append(value, bson.D{
			{Key: "role", Value: role.Role},
			{Key: "db", Value: role.DB},
		})
	}
	return value
}

func isUserNotFound(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == codeUserNotFound || cmdErr.Name == "UserNotFound"
	}
	return false
}
