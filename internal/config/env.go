// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable bemwalk reads.
const EnvPrefix = "BEMWALK"

// envKeys are the scalar keys that may be set from the environment.
// Levels are lists and come from config files only.
var envKeys = []string{"scheme", "output.format", "ui.verbose", "ui.log_level"}

// EnvVar returns the environment variable name for a config key,
// e.g. "output.format" -> "BEMWALK_OUTPUT_FORMAT".
func EnvVar(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// bindEnv makes BEMWALK_* variables override file values. Entries of the env
// file apply only where the real environment leaves a variable unset.
func bindEnv(v *viper.Viper, envFile string) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if envFile == "" {
		return nil
	}

	fileEnv, err := godotenv.Read(envFile)
	if err != nil {
		return err
	}
	for _, key := range envKeys {
		name := EnvVar(key)
		if _, set := os.LookupEnv(name); set {
			continue
		}
		if value, ok := fileEnv[name]; ok {
			v.Set(key, value)
		}
	}
	return nil
}
