// Package config loads the stage options from file and environment.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/chubflix/episode-stage/internal/model"
)

// Init sets defaults and reads an optional chubflix.yaml from the given
// path (or the working directory and $HOME/.chubflix when empty). A
// missing file is not an error. Environment variables use the CHUBFLIX_
// prefix, e.g. CHUBFLIX_STAGE_INJECT_CONTEXT.
func Init(cfgFile string) error {
	viper.SetDefault("stage.show_episode_number", true)
	viper.SetDefault("stage.show_progress", true)
	viper.SetDefault("stage.button_text", "Next Episode")
	viper.SetDefault("stage.inject_context", true)
	viper.SetDefault("stage.theme", model.ThemeChubflix)

	viper.SetEnvPrefix("CHUBFLIX")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("chubflix")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.chubflix")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}
	return nil
}

// StageConfig returns the five recognized stage options. Unrecognized
// theme values fall back to the chubflix theme.
func StageConfig() model.Config {
	theme := viper.GetString("stage.theme")
	switch theme {
	case model.ThemeDark, model.ThemeLight, model.ThemeChubflix:
	default:
		theme = model.ThemeChubflix
	}
	return model.Config{
		ShowEpisodeNumber: viper.GetBool("stage.show_episode_number"),
		ShowProgress:      viper.GetBool("stage.show_progress"),
		ButtonText:        viper.GetString("stage.button_text"),
		InjectContext:     viper.GetBool("stage.inject_context"),
		Theme:             theme,
	}
}
