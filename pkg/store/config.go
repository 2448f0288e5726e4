package store

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes the client configuration.
type Config interface {
	// BasePath is the directory holding persisted client state.
	BasePath() string
	// ServerURL is the base URL of the club server, without trailing slash.
	ServerURL() string
	// Timezone is the IANA name of the server's local timezone.
	Timezone() string
	// PageSize is the default number of events per catalog page.
	PageSize() int
}

// LoadConfig reads the .sorties config file (current directory or
// SORTIES_CONFIG_PATH) plus SORTIES_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.sorties.db")
	viper.SetDefault("server", "https://www.collectives.example")
	viper.SetDefault("timezone", "Europe/Paris")
	viper.SetDefault("page_size", 25)
	viper.SetConfigName(".sorties") // .yaml is implicit
	viper.SetEnvPrefix("SORTIES")
	viper.AutomaticEnv()

	if override := os.Getenv("SORTIES_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	return &fileConfig{
		Path:   path,
		Server: viper.GetString("server"),
		TZ:     viper.GetString("timezone"),
		PageSz: viper.GetInt("page_size"),
	}, nil
}

type fileConfig struct {
	Path   string `json:"path"`
	Server string `json:"server"`
	TZ     string `json:"timezone"`
	PageSz int    `json:"page_size"`
}

func (f *fileConfig) BasePath() string  { return f.Path }
func (f *fileConfig) ServerURL() string { return f.Server }
func (f *fileConfig) Timezone() string  { return f.TZ }
func (f *fileConfig) PageSize() int {
	if f.PageSz <= 0 {
		return 25
	}
	return f.PageSz
}
