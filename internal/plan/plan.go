// Package plan models the replication kit's account-provisioning plan:
// which databases get which accounts, with which role grants
package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/smartshark/sharkdb-cli/internal/cloud/mongodb"

	"gopkg.in/yaml.v2"
)

// Plan is an ordered list of account specifications
// Accounts are applied strictly in source order
type Plan struct {
	Accounts []Account `yaml:"databases" json:"databases"`
}

// Account fully specifies one account on one target database
// A blank password is resolved from the environment or an interactive prompt
// before the plan is applied
type Account struct {
	Database     string        `yaml:"database" json:"database"`
	Username     string        `yaml:"username" json:"username"`
	Password     string        `yaml:"password,omitempty" json:"-"`
	Roles        []Role        `yaml:"roles" json:"roles"`
	WriteConcern *WriteConcern `yaml:"write_concern,omitempty" json:"write_concern,omitempty"`
}

// Role is a role grant
// A bare role name is scoped to the account's own database
type Role struct {
	Name string
	DB   string
}

// UnmarshalYAML accepts either a bare role name or a {role, db} pair
func (r *Role) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err == nil {
		r.Name = name
		r.DB = ""
		return nil
	}

	var pair struct {
		Role string `yaml:"role"`
		DB   string `yaml:"db"`
	}
	if err := unmarshal(&pair); err != nil {
		return err
	}
	if pair.Role == "" || pair.DB == "" {
		return errors.New("a role pair must set both role and db")
	}
	r.Name = pair.Role
	r.DB = pair.DB
	return nil
}

// MarshalJSON mirrors the yaml form: a bare name or a {role, db} pair
func (r Role) MarshalJSON() ([]byte, error) {
	if r.DB == "" {
		return json.Marshal(r.Name)
	}
	return json.Marshal(struct {
		Role string `json:"role"`
		DB   string `json:"db"`
	}{r.Name, r.DB})
}

func (r Role) String() string {
	if r.DB == "" {
		return r.Name
	}
	return fmt.Sprintf("%s@%s", r.Name, r.DB)
}

// WriteConcern directs how many replica set members must acknowledge the
// account creation and how long the server waits for them
type WriteConcern struct {
	W          string `yaml:"w" json:"w"`
	WTimeoutMS int    `yaml:"wtimeout_ms" json:"wtimeout_ms"`
}

// Default returns the smartSHARK replication kit plan: a root account on each
// of the kit's databases
// Passwords are deliberately absent, see Account.PasswordFromEnv
func Default() Plan {
	kitRoles := []Role{
		{Name: "clusterAdmin", DB: "admin"},
		{Name: "readAnyDatabase", DB: "admin"},
		{Name: "readWrite"},
	}

	return Plan{Accounts: []Account{
		{Database: "testRun", Username: "root", Roles: kitRoles},
		{Database: "test", Username: "root", Roles: kitRoles},
		{
			Database: "admin",
			Username: "root",
			Roles: []Role{
				{Name: "readWrite", DB: "config"},
				{Name: "clusterAdmin"},
			},
			WriteConcern: &WriteConcern{W: "majority", WTimeoutMS: 5000},
		},
		{Database: "vcsshark", Username: "root", Roles: kitRoles},
	}}
}

// Load reads and validates a plan file
func Load(path string) (Plan, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("failed to read plan file: %w", err)
	}

	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Plan{}, fmt.Errorf("failed to parse plan file %s: %w", path, err)
	}

	if err := p.Validate(); err != nil {
		return Plan{}, fmt.Errorf("invalid plan file %s: %w", path, err)
	}
	return p, nil
}

// Validate checks the plan's configuration data
func (p Plan) Validate() error {
	if len(p.Accounts) == 0 {
		return errors.New("plan contains no accounts")
	}

	for i, account := range p.Accounts {
		if err := account.validate(); err != nil {
			return fmt.Errorf("account %d: %w", i+1, err)
		}
	}
	return nil
}

func (a Account) validate() error {
	if a.Database == "" {
		return errors.New("database must not be blank")
	}
	if a.Username == "" {
		return errors.New("username must not be blank")
	}
	if len(a.Roles) == 0 {
		return errors.New("role list must not be empty")
	}

	for _, role := range a.Roles {
		if role.Name == "" {
			return errors.New("role name must not be blank")
		}
	}

	if wc := a.WriteConcern; wc != nil {
		if wc.W == "" {
			return errors.New("write concern acknowledgment level must not be blank")
		}
		if wc.WTimeoutMS < 0 {
			return errors.New("write concern timeout must not be negative")
		}
	}
	return nil
}

// set of environment variables consulted for account passwords
const (
	EnvPassword       = "SHARKDB_MONGODB_PWD"
	envPasswordPrefix = "SHARKDB_MONGODB_PWD_"
)

// PasswordFromEnv looks up the account's password from the environment,
// preferring the database-scoped variable over the shared one
func (a Account) PasswordFromEnv() string {
	if pwd := os.Getenv(envPasswordPrefix + strings.ToUpper(a.Database)); pwd != "" {
		return pwd
	}
	return os.Getenv(EnvPassword)
}

// NewUser produces the createUser payload for the account
// Bare role grants are scoped to the account's own database
func (a Account) NewUser() mongodb.NewUser {
	roles := make([]mongodb.Role, 0, len(a.Roles))
	for _, role := range a.Roles {
		db := role.DB
		if db == "" {
			db = a.Database
		}
		roles = append(roles, mongodb.Role{Role: role.Name, DB: db})
	}

	user := mongodb.NewUser{
		Username: a.Username,
		Password: a.Password,
		Roles:    roles,
	}
	if wc := a.WriteConcern; wc != nil {
		user.WriteConcern = &mongodb.WriteConcern{W: wc.W, WTimeoutMS: wc.WTimeoutMS}
	}
	return user
}
