package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the keys jsguard reads from jsguard.yaml.
type fileConfig struct {
	Version int         `yaml:"version"`
	Output  string      `yaml:"output"`
	CSV     string      `yaml:"csv"`
	XLSX    string      `yaml:"xlsx"`
	Paths   pathsConfig `yaml:"paths"`
	Log     logConfig   `yaml:"log"`
}

type pathsConfig struct {
	Exclude []string `yaml:"exclude"`
}

type logConfig struct {
	Filename   string `yaml:"filename"`
	Level      string `yaml:"level"`
	Verbose    bool   `yaml:"verbose"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Compress   bool   `yaml:"compress"`
}

var configComments = map[string]string{
	"version": "Configuration format version.",
	"output":  "Plain-text report path. Empty prints to the console.",
	"csv":     "CSV report path. Not written when nothing is found.",
	"xlsx":    "Excel report path. Not written when nothing is found.",
	"paths":   "Directory names skipped wherever they occur, e.g. [node_modules, dist, build].",
	"log":     "Debug log; an empty filename disables it.",
}

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default jsguard.yaml configuration file",
		Long: `Create a jsguard.yaml in the current working directory populated with the
current CLI defaults so it can be edited manually.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			err := writeDefaultConfig(targetPath)
			if err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			cmd.Printf("Wrote %s\n", targetPath)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func currentFileConfig() fileConfig {
	exclude := viper.GetStringSlice(excludeConfigKey)
	if exclude == nil {
		exclude = []string{}
	}

	return fileConfig{
		Version: viper.GetInt(configVersionKey),
		Output:  viper.GetString(outputConfigKey),
		CSV:     viper.GetString(csvConfigKey),
		XLSX:    viper.GetString(xlsxConfigKey),
		Paths:   pathsConfig{Exclude: exclude},
		Log: logConfig{
			Filename:   viper.GetString(logFilenameKey),
			Level:      viper.GetString(logLevelKey),
			Verbose:    viper.GetBool(logVerboseKey),
			MaxSize:    viper.GetInt(logMaxSizeKey),
			MaxBackups: viper.GetInt(logMaxBackupsKey),
			MaxAge:     viper.GetInt(logMaxAgeKey),
			Compress:   viper.GetBool(logCompressKey),
		},
	}
}

// renderConfig encodes cfg as YAML with a comment above each top-level key.
func renderConfig(cfg fileConfig) ([]byte, error) {
	var root yaml.Node
	if err := root.Encode(cfg); err != nil {
		return nil, err
	}

	// Encode yields a mapping node with alternating key and value children.
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i]
		if comment, ok := configComments[key.Value]; ok {
			key.HeadComment = comment
		}
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(&root); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// writeDefaultConfig refuses to overwrite an existing file.
func writeDefaultConfig(path string) error {
	data, err := renderConfig(currentFileConfig())
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	// #nosec G304 - path is the fixed config file name
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%s already exists", path)
		}

		return err
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
