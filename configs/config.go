package configs

import (
	"errors"
	"os"
	"strings"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

type DB struct {
	Host               string `validate:"required"`
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string `validate:"required"`
	Database           string `default:"postgres"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port int `default:"8080"`
}

// Places holds the external lookup credentials and search tuning. The search
// path is capped at SearchCeiling while the plain listing path honours the
// caller's limit; the two ceilings are intentionally separate.
type Places struct {
	APIKey         string `validate:"required"`
	DefaultRadius  uint   `default:"5000"`
	SearchCeiling  int    `default:"20"`
	LocalThreshold int    `default:"10"`
	ListLimit      int    `default:"10"`
}

type Integrations struct {
	Places     string   `default:"google_places"`
	Enrichment []string `default:"[website_meta]"`
}

type Config struct {
	DB           DB
	Server       Server
	Places       Places
	Integrations Integrations
	Auth         Auth
}

type Auth struct {
	SecretKey string
	Audience  string
	Domain    string
}

const envPrefix = "AUTHENTICEATS" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	return &config, nil
}
