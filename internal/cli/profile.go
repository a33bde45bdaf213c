package cli

import (
	"fmt"
	"strings"

	"github.com/smartshark/sharkdb-cli/internal/cloud/mongodb"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// DefaultProfile is the default profile name
	DefaultProfile = "default"

	envPrefix   = "sharkdb"
	profileType = "yaml"
)

// set of defaults for the replication kit's MongoDB instance
const (
	DefaultMongoDBHost = "localhost"
	DefaultMongoDBPort = 27017
	DefaultAuthSource  = "admin"
)

// Profile is the CLI profile
type Profile struct {
	Name string

	dir string
	fs  afero.Fs

	flagMongoDBHost string
	flagMongoDBPort int
	flagAuthSource  string
}

// NewDefaultProfile creates a new default CLI profile
func NewDefaultProfile() (*Profile, error) {
	return NewProfile(DefaultProfile)
}

// NewProfile creates a new CLI profile
func NewProfile(name string) (*Profile, error) {
	dir, dirErr := homeDir()
	if dirErr != nil {
		return nil, fmt.Errorf("failed to create CLI profile: %s", dirErr)
	}

	return &Profile{
		Name: name,
		dir:  dir,
		fs:   afero.NewOsFs(),
	}, nil
}

// Clear clears the specified CLI profile property
func (p Profile) Clear(name string) {
	p.SetString(name, "")
}

// SetString sets the specified CLI profile property
func (p Profile) SetString(name, value string) {
	viper.Set(p.propertyKey(name), value)
}

// GetString gets the specified CLI profile property
func (p Profile) GetString(name string) string {
	return viper.GetString(p.propertyKey(name))
}

// SetInt sets the specified CLI profile property
func (p Profile) SetInt(name string, value int) {
	viper.Set(p.propertyKey(name), value)
}

// GetInt gets the specified CLI profile property
func (p Profile) GetInt(name string) int {
	return viper.GetInt(p.propertyKey(name))
}

func (p Profile) propertyKey(name string) string {
	return fmt.Sprintf("%s.%s", p.Name, name)
}

// Load loads the CLI profile
func (p Profile) Load() error {
	viper.SetConfigName(p.Name)
	viper.AddConfigPath(p.dir)
	viper.SetConfigPermissions(0600)
	viper.SetConfigType(profileType)

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil // proceed if profile doesn't exist
		}
		return fmt.Errorf("failed to load CLI profile: %s", err)
	}
	return nil
}

// Save saves the CLI profile
func (p *Profile) Save() error {
	exists, existsErr := afero.DirExists(p.fs, p.dir)
	if existsErr != nil {
		return fmt.Errorf("failed to save CLI profile: %s", existsErr)
	}

	if !exists {
		if err := p.fs.MkdirAll(p.dir, 0700); err != nil {
			return fmt.Errorf("failed to save CLI profile: %s", err)
		}
	}

	if err := viper.WriteConfigAs(p.path()); err != nil {
		return fmt.Errorf("failed to save CLI profile: %s", err)
	}
	return nil
}

func (p Profile) path() string {
	return fmt.Sprintf("%s/%s.%s", p.dir, p.Name, profileType)
}

func (p Profile) resolveFlags() {
	if p.flagMongoDBHost != "" {
		p.SetString(keyMongoDBHost, p.flagMongoDBHost)
	}
	if p.flagMongoDBPort != 0 {
		p.SetInt(keyMongoDBPort, p.flagMongoDBPort)
	}
	if p.flagAuthSource != "" {
		p.SetString(keyAuthSource, p.flagAuthSource)
	}
}

// set of supported CLI profile keys
const (
	keyMongoDBHost = "mongodb_host"
	keyMongoDBPort = "mongodb_port"
	keyUsername    = "username"
	keyPassword    = "password"
	keyAuthSource  = "auth_source"
)

// MongoDBHost gets the configured MongoDB host
func (p Profile) MongoDBHost() string {
	if host := p.GetString(keyMongoDBHost); host != "" {
		return host
	}
	return DefaultMongoDBHost
}

// SetMongoDBHost sets the MongoDB host
func (p Profile) SetMongoDBHost(host string) {
	p.SetString(keyMongoDBHost, host)
}

// MongoDBPort gets the configured MongoDB port
func (p Profile) MongoDBPort() int {
	if port := p.GetInt(keyMongoDBPort); port != 0 {
		return port
	}
	return DefaultMongoDBPort
}

// SetMongoDBPort sets the MongoDB port
func (p Profile) SetMongoDBPort(port int) {
	p.SetInt(keyMongoDBPort, port)
}

// AuthSource gets the configured authentication database
func (p Profile) AuthSource() string {
	if authSource := p.GetString(keyAuthSource); authSource != "" {
		return authSource
	}
	return DefaultAuthSource
}

// Credentials are the CLI profile admin credentials
type Credentials struct {
	Username string
	Password string
}

// RedactedPassword returns the credentials' password with its characters replaced
func (creds Credentials) RedactedPassword() string {
	return strings.Repeat("*", len(creds.Password))
}

// Credentials gets the CLI profile admin credentials
func (p Profile) Credentials() Credentials {
	return Credentials{
		p.GetString(keyUsername),
		p.GetString(keyPassword),
	}
}

// SetCredentials sets the CLI profile admin credentials
func (p Profile) SetCredentials(creds Credentials) {
	p.SetString(keyUsername, creds.Username)
	p.SetString(keyPassword, creds.Password)
}

// MongoDBOptions builds the MongoDB client options from the CLI profile
func (p Profile) MongoDBOptions() mongodb.Options {
	creds := p.Credentials()
	return mongodb.Options{
		Host:       p.MongoDBHost(),
		Port:       p.MongoDBPort(),
		Username:   creds.Username,
		Password:   creds.Password,
		AuthSource: p.AuthSource(),
	}
}
