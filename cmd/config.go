package cmd

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "jsguard"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName  = "output"
	csvFlagName     = "csv"
	xlsxFlagName    = "xlsx"
	excludeFlagName = "exclude"
	verboseFlagName = "verbose"
	logFileFlagName = "log-file"

	outputConfigKey  = "output"
	csvConfigKey     = "csv"
	xlsxConfigKey    = "xlsx"
	excludeConfigKey = "paths.exclude"

	envPrefix = "JSGUARD"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	// An empty filename keeps runs free of side files; logs are discarded.
	defaultLogFilename   = ""
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

// configLoadErr holds a jsguard.yaml that exists but could not be read; defaults apply.
var configLoadErr error

// configFileLoaded is set once jsguard.yaml has been read successfully.
var configFileLoaded bool

var envKeyReplacer = strings.NewReplacer("-", "_", ".", "_")

// overridableKeys are the settings a config file or JSGUARD_* variable can supply.
var overridableKeys = []string{
	outputConfigKey,
	csvConfigKey,
	xlsxConfigKey,
	excludeConfigKey,
	logFilenameKey,
	logLevelKey,
	logVerboseKey,
	logMaxSizeKey,
	logMaxBackupsKey,
	logMaxAgeKey,
	logCompressKey,
}

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(envKeyReplacer)

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputConfigKey, "")
	viper.SetDefault(csvConfigKey, "")
	viper.SetDefault(xlsxConfigKey, "")
	viper.SetDefault(excludeConfigKey, []string{})

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return
		}

		configLoadErr = err

		return
	}

	configFileLoaded = true
}

func envVarName(key string) string {
	return envPrefix + "_" + strings.ToUpper(envKeyReplacer.Replace(key))
}

// envOverrides lists the JSGUARD_* variables currently set, keyed by config key.
func envOverrides() map[string]string {
	overrides := make(map[string]string)

	for _, key := range overridableKeys {
		name := envVarName(key)
		if _, ok := os.LookupEnv(name); ok {
			overrides[key] = name
		}
	}

	return overrides
}

// logConfigSources records where settings beyond the command line came from.
func logConfigSources() {
	if configFileLoaded {
		slog.Info("applied config file", "file", viper.ConfigFileUsed())
	}

	overrides := envOverrides()
	for _, key := range overridableKeys {
		if name, ok := overrides[key]; ok {
			slog.Info("applied environment override", "key", key, "env", name)
		}
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// Records go to a rotating file at logPath; with no path they are discarded.
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	var logWriter io.Writer = io.Discard

	if strings.TrimSpace(logPath) != "" {
		logWriter = &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    viper.GetInt(logMaxSizeKey),
			MaxBackups: viper.GetInt(logMaxBackupsKey),
			MaxAge:     viper.GetInt(logMaxAgeKey),
			Compress:   viper.GetBool(logCompressKey),
		}
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)

	if configLoadErr != nil {
		slog.Warn("ignoring unreadable config file", "file", configFileName, "error", configLoadErr)
	}

	logConfigSources()
}
