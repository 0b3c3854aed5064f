package cmd

import (
	"go.uber.org/zap"

	"droscher.com/AuthenticEats/configs"
	"droscher.com/AuthenticEats/pkg/model"
	"droscher.com/AuthenticEats/pkg/repository"
)

type MigrateCmd struct {
	ConfigFile string `default:".AuthenticEats.toml" help:"Path to config file" short:"c"`
}

func (m *MigrateCmd) Run(_ *Context) error {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(m.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Fatal("error connecting to database")
	}
	defer repo.Close()

	// Proximity search relies on earth_distance; the extensions must exist
	// before the tables do.
	for _, extension := range []string{"cube", "earthdistance"} {
		if result := repo.DB.Exec("CREATE EXTENSION IF NOT EXISTS " + extension); result.Error != nil {
			return result.Error
		}
	}

	err = repo.DB.AutoMigrate(
		&model.Cuisine{}, &model.Restaurant{},
		&model.User{},
		&model.Review{})
	if err != nil {
		return err
	}

	return nil
}
