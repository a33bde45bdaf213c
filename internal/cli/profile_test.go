package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smartshark/sharkdb-cli/internal/cloud/mongodb"
	u "github.com/smartshark/sharkdb-cli/internal/utils/test"
	"github.com/smartshark/sharkdb-cli/internal/utils/test/assert"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestProfile(t *testing.T) *Profile {
	t.Helper()
	profile, err := NewProfile(primitive.NewObjectID().Hex())
	assert.Nil(t, err)
	return profile
}

func TestProfileDefaults(t *testing.T) {
	profile := newTestProfile(t)

	assert.Equal(t, DefaultMongoDBHost, profile.MongoDBHost())
	assert.Equal(t, DefaultMongoDBPort, profile.MongoDBPort())
	assert.Equal(t, DefaultAuthSource, profile.AuthSource())
	assert.Equal(t, Credentials{}, profile.Credentials())
}

func TestProfileProperties(t *testing.T) {
	t.Run("should get back the properties it sets", func(t *testing.T) {
		profile := newTestProfile(t)

		profile.SetMongoDBHost("db.example.com")
		profile.SetMongoDBPort(27018)
		profile.SetCredentials(Credentials{Username: "root", Password: "pwd123"})

		assert.Equal(t, "db.example.com", profile.MongoDBHost())
		assert.Equal(t, 27018, profile.MongoDBPort())
		assert.Equal(t, Credentials{Username: "root", Password: "pwd123"}, profile.Credentials())
	})

	t.Run("should keep profiles with different names separate", func(t *testing.T) {
		profile1 := newTestProfile(t)
		profile2 := newTestProfile(t)

		profile1.SetMongoDBHost("db.example.com")
		assert.Equal(t, DefaultMongoDBHost, profile2.MongoDBHost())
	})

	t.Run("should build the MongoDB client options", func(t *testing.T) {
		profile := newTestProfile(t)
		profile.SetMongoDBHost("db.example.com")
		profile.SetCredentials(Credentials{Username: "root", Password: "pwd123"})

		assert.Match(t, mongodb.Options{
			Host:       "db.example.com",
			Port:       DefaultMongoDBPort,
			Username:   "root",
			Password:   "pwd123",
			AuthSource: DefaultAuthSource,
		}, profile.MongoDBOptions())
	})
}

func TestProfileSave(t *testing.T) {
	tmpDir := u.TempDir(t, "home")
	u.SetupHomeDir(t, tmpDir)

	profile := newTestProfile(t)
	profile.SetCredentials(Credentials{Username: "root", Password: "pwd123"})

	assert.Nil(t, profile.Save())

	_, statErr := os.Stat(filepath.Join(tmpDir, profileDir, profile.Name+".yaml"))
	assert.Nil(t, statErr)
}

func TestCredentialsRedactedPassword(t *testing.T) {
	assert.Equal(t, "", Credentials{}.RedactedPassword())
	assert.Equal(t, "******", Credentials{Password: "pwd123"}.RedactedPassword())
}
