// Package config loads user preferences from an optional ~/.magnet.yaml
// file and MAGNET_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds user preferences. Every field has a working default; a
// missing config file is not an error.
type Config struct {
	HelpFlags      []string // help flags tried in order when capturing help text
	BrowseDir      string   // starting directory for the file browser
	BrowseExts     []string // extension filter for the file browser
	RunConfirm     bool     // ask before running an assembled command
	TemplateOutput string   // directory generated tool templates are written to
}

// Load reads the config file (home directory first, then the working
// directory) and the environment, applying defaults for anything unset.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName(".magnet")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")
	v.SetEnvPrefix("MAGNET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("help_flags", []string{"-h", "--help"})
	v.SetDefault("browse.dir", "")
	v.SetDefault("browse.extensions", []string{})
	v.SetDefault("run.confirm", true)
	v.SetDefault("template.output", "./out/")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: reading config file: %w", err)
		}
	}

	return Config{
		HelpFlags:      v.GetStringSlice("help_flags"),
		BrowseDir:      v.GetString("browse.dir"),
		BrowseExts:     v.GetStringSlice("browse.extensions"),
		RunConfirm:     v.GetBool("run.confirm"),
		TemplateOutput: v.GetString("template.output"),
	}, nil
}
