package cfg

import (
	"errors"
	"os"

	"ytcli/internal/domain/paths"
	"ytcli/internal/utils/logging"

	"github.com/spf13/viper"
)

// loadConfigFile reads file, or ~/.ytcli/config.* when file is empty.
// A missing default config is not an error.
func loadConfigFile(file string) error {
	if file == "" {
		if paths.HomeYtcliDir == "" {
			return nil
		}
		viper.SetConfigName("config")
		viper.AddConfigPath(paths.HomeYtcliDir)

		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				logging.D(3, "No config file in %q", paths.HomeYtcliDir)
				return nil
			}
			return usageErr("failed loading config file: %w", err)
		}
		logging.D(1, "Loaded config file %q", viper.ConfigFileUsed())
		return nil
	}

	info, err := os.Stat(file)
	switch {
	case err != nil:
		return usageErr("failed check for config file path: %w", err)
	case info.IsDir():
		return usageErr("config file %q is a directory, should be a file", file)
	case !info.Mode().IsRegular():
		return usageErr("%q is not a regular file", file)
	}

	viper.SetConfigFile(file)
	if err := viper.ReadInConfig(); err != nil {
		return usageErr("failed loading config file: %w", err)
	}
	logging.D(1, "Loaded config file %q", file)
	return nil
}
