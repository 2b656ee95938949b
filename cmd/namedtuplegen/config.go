package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reoring/namedtuple/i18n"
)

const (
	configFileName = ".namedtuplegen"
	configFileType = "yaml"
	envPrefix      = "NAMEDTUPLEGEN"
)

// settings are the resolved options of one command run.
type settings struct {
	File    string
	Output  string
	Package string
	Verbose bool
	Lang    string
}

// loadConfig merges the config file, environment and the flags of cmd.
// A missing default config file is not an error.
func loadConfig(cmd *cobra.Command) (settings, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return settings{}, fmt.Errorf("bind flags: %w", err)
	}

	if path, _ := cmd.Flags().GetString(flagConfig); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	s := settings{
		File:    v.GetString(flagFile),
		Output:  v.GetString(flagOutput),
		Package: v.GetString(flagPackage),
		Verbose: v.GetBool(flagVerbose),
		Lang:    v.GetString(flagLang),
	}
	if s.Lang != "" {
		i18n.SetLanguage(s.Lang)
	}
	return s, nil
}
