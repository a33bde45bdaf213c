package testutils

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/smartshark/sharkdb-cli/internal/cloud/mongodb"
)

// MustSkipf skips a test suite, but panics if SHARKDB_NO_SKIP_TEST is set
func MustSkipf(t *testing.T, format string, args ...interface{}) {
	if len(os.Getenv("SHARKDB_NO_SKIP_TEST")) > 0 {
		panic("test was skipped, but SHARKDB_NO_SKIP_TEST is set")
	}
	t.Skipf(format, args...)
}

var mongoDBRunning = false
var mongoDBNotRunning = false

// MongoDBHost returns the MongoDB host to use for testing
func MongoDBHost() string {
	if host := os.Getenv("SHARKDB_MONGODB_HOST"); host != "" {
		return host
	}
	return "localhost"
}

// MongoDBPort returns the MongoDB port to use for testing
func MongoDBPort() int {
	if port := os.Getenv("SHARKDB_MONGODB_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			return p
		}
	}
	return 27017
}

// MongoDBOptions returns the MongoDB connection options to use for testing
func MongoDBOptions() mongodb.Options {
	return mongodb.Options{
		Host:       MongoDBHost(),
		Port:       MongoDBPort(),
		Username:   os.Getenv("SHARKDB_MONGODB_USERNAME"),
		Password:   os.Getenv("SHARKDB_MONGODB_PASSWORD"),
		AuthSource: os.Getenv("SHARKDB_MONGODB_AUTH_SOURCE"),
	}
}

// SkipUnlessMongoDBRunning skips tests if there is no MongoDB deployment
// reachable at the configured testing host and port (see: MongoDBOptions())
var SkipUnlessMongoDBRunning = func() func(t *testing.T) {
	return func(t *testing.T) {
		if mongoDBRunning {
			return
		}
		if mongoDBNotRunning {
			MustSkipf(t, "MongoDB not running at %s:%d", MongoDBHost(), MongoDBPort())
			return
		}

		client := mongodb.NewClient(MongoDBOptions())
		defer client.Disconnect(context.Background()) //nolint: errcheck

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx); err != nil {
			mongoDBNotRunning = true
			MustSkipf(t, "MongoDB not running at %s:%d", MongoDBHost(), MongoDBPort())
			return
		}
		mongoDBRunning = true
	}
}()
