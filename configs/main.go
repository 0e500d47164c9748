package configs

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix      = "SUBQUERY"
	configDirName  = ".subquery"
	configFileName = "config.json"

	productionEndpoint = "https://api.subquery.network"
	developEndpoint    = "http://localhost:3000"

	// RequestTimeout applies to every API call.
	RequestTimeout = 10 * time.Second
)

// Settings keys. Each can be set as SUBQUERY_<KEY> in the environment.
const (
	KeyEndpoint  = "endpoint"
	KeyEnv       = "env"
	KeyConfigDir = "config_dir"
	KeyVerbose   = "verbose"
)

type Configs struct {
	viper       *viper.Viper
	Credentials *CredentialStore
}

func New() *Configs {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault(KeyEnv, "production")
	v.SetDefault(KeyVerbose, false)

	return &Configs{
		viper:       v,
		Credentials: NewCredentialStore(filepath.Join(resolveConfigDir(v.GetString(KeyConfigDir)), configFileName)),
	}
}

// BindFlags lets persistent flags such as --verbose override the environment.
func (c *Configs) BindFlags(flags *pflag.FlagSet) error {
	if f := flags.Lookup(KeyVerbose); f != nil {
		return c.viper.BindPFlag(KeyVerbose, f)
	}
	return nil
}

func (c *Configs) IsDevMode() bool {
	return c.viper.GetString(KeyEnv) == "develop"
}

func (c *Configs) IsVerbose() bool {
	return c.viper.GetBool(KeyVerbose)
}

// Endpoint is the API base URL without a trailing slash.
func (c *Configs) Endpoint() string {
	if endpoint := c.viper.GetString(KeyEndpoint); endpoint != "" {
		return trimSlash(endpoint)
	}
	if c.IsDevMode() {
		return developEndpoint
	}
	return productionEndpoint
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}

// resolveConfigDir picks the directory holding the credential file. An
// explicit override is used verbatim; otherwise the first of home,
// executable dir and temp dir gets a .subquery suffix.
func resolveConfigDir(override string) string {
	if override != "" {
		return override
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, configDirName)
	}
	if exe, err := os.Executable(); err == nil {
		return filepath.Join(filepath.Dir(exe), configDirName)
	}
	return filepath.Join(os.TempDir(), configDirName)
}
