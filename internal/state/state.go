package state

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/metafind/metafind/internal/catalog"
	"github.com/metafind/metafind/internal/config"
	"github.com/metafind/metafind/internal/constants"
	"github.com/metafind/metafind/internal/find"
	"github.com/metafind/metafind/internal/index"
	"github.com/metafind/metafind/internal/resolver"
)

// State bundles the loaded configuration and the components built over it,
// injected into every command constructor.
type State struct {
	Config   *config.Config
	Catalog  *catalog.Catalog
	Engine   *find.Engine
	Index    *index.Builder
	Resolver resolver.PageResolver
	Home     string
}

func NewState() (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(home)
	if err != nil {
		return nil, err
	}

	cat, err := catalog.New(cfg.DataDir, cfg.ContentSuffix, cfg.SidecarSuffix)
	if err != nil {
		return nil, fmt.Errorf("failed to open data directory: %w", err)
	}

	return &State{
		Config:  cfg,
		Catalog: cat,
		Engine:  find.NewEngine(cfg, cat),
		Index:   index.NewBuilder(cfg, cat),
		Resolver: resolver.InfoFind{
			Config: cfg,
			Base:   resolver.Default{Known: cat.KnownItems()},
		},
		Home: home,
	}, nil
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

func LoadConfig(home string) (*config.Config, error) {
	viper.AddConfigPath(home + constants.ConfigDir)
	viper.SetConfigName(constants.ConfigFile)
	viper.SetConfigType(constants.ConfigFileType)
	viper.ReadInConfig()

	err := config.EnsureConfigExists(home)
	if err != nil {
		return nil, err
	}

	return config.Load(home)
}
