package mongodb

import (
	"errors"
	"testing"

	"github.com/smartshark/sharkdb-cli/internal/utils/test/assert"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestOptionsURI(t *testing.T) {
	opts := Options{Host: "localhost", Port: 27017}
	assert.Equal(t, "mongodb://localhost:27017", opts.URI())
}

func TestCreateUserCmd(t *testing.T) {
	t.Run("should put the username first and spell out each role grant", func(t *testing.T) {
		cmd := createUserCmd(NewUser{
			Username: "root",
			Password: "pwd123",
			Roles: []Role{
				{Role: "clusterAdmin", DB: "admin"},
				{Role: "readWrite", DB: "testRun"},
			},
		})

		assert.Match(t, bson.D{
			{Key: "createUser", Value: "root"},
			{Key: "pwd", Value: "pwd123"},
			{Key: "roles", Value: bson.A{
				bson.D{{Key: "role", Value: "clusterAdmin"}, {Key: "db", Value: "admin"}},
				bson.D{{Key: "role", Value: "readWrite"}, {Key: "db", Value: "testRun"}},
			}},
		}, cmd)
	})

	t.Run("should append the write concern when one is set", func(t *testing.T) {
		cmd := createUserCmd(NewUser{
			Username:     "root",
			Password:     "pwd123",
			Roles:        []Role{{Role: "clusterAdmin", DB: "admin"}},
			WriteConcern: &WriteConcern{W: "majority", WTimeoutMS: 5000},
		})

		assert.Match(t, bson.E{Key: "writeConcern", Value: bson.D{
			{Key: "w", Value: "majority"},
			{Key: "wtimeout", Value: 5000},
		}}, cmd[len(cmd)-1])
	})
}

func TestDropUserCmd(t *testing.T) {
	assert.Match(t, bson.D{{Key: "dropUser", Value: "root"}}, dropUserCmd("root"))
}

func TestUsersInfoCmd(t *testing.T) {
	assert.Match(t, bson.D{{Key: "usersInfo", Value: "root"}}, usersInfoCmd("root"))
}

func TestIsUserNotFound(t *testing.T) {
	for _, tc := range []struct {
		description string
		err         error
		expected    bool
	}{
		{"with a UserNotFound error code", mongo.CommandError{Code: 11}, true},
		{"with a UserNotFound error name", mongo.CommandError{Name: "UserNotFound"}, true},
		{"with an unrelated command error", mongo.CommandError{Code: 13, Name: "Unauthorized"}, false},
		{"with an unrelated error", errors.New("something bad happened"), false},
		{"with no error", nil, false},
	} {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, isUserNotFound(tc.err))
		})
	}
}
