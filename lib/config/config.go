package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-i2p/timeconv/lib/util"
	"github.com/go-i2p/timeconv/lib/util/logger"
	"github.com/go-i2p/timeconv/lib/util/time/unixtime"
	"github.com/samber/oops"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var (
	CfgFile string
	log     = logger.GetLogger()
)

// BaseDirName is the directory under the user's home holding config.yaml.
const BaseDirName = ".timeconv"

const (
	keyUnit           = "unit"
	keyLogLevel       = "log_level"
	keyMaxSkew        = "watch.max_skew"
	keyFailOnBackward = "watch.fail_on_backward"
)

// fileConfig is the on-disk layout written by WriteDefault.
type fileConfig struct {
	Unit     string `yaml:"unit"`
	LogLevel string `yaml:"log_level"`
	Watch    struct {
		MaxSkew        string `yaml:"max_skew"`
		FailOnBackward bool   `yaml:"fail_on_backward"`
	} `yaml:"watch"`
}

func setDefaults() {
	d := Defaults()
	viper.SetDefault(keyUnit, d.Unit.String())
	viper.SetDefault(keyLogLevel, d.LogLevel)
	viper.SetDefault(keyMaxSkew, d.Watch.MaxSkew)
	viper.SetDefault(keyFailOnBackward, d.Watch.FailOnBackward)
}

// InitConfig loads CfgFile, or the default config file when CfgFile is empty.
func InitConfig() (*Config, error) {
	return Load(CfgFile)
}

// Load reads the configuration file at path into viper and returns the
// resolved configuration. An empty path searches $HOME/.timeconv for
// config.yaml and tolerates its absence.
func Load(path string) (*Config, error) {
	setDefaults()
	viper.SetEnvPrefix("TIMECONV")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.AddConfigPath(BuildConfigDirPath())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && path == "" {
			log.WithField("dir", BuildConfigDirPath()).Debug("no config file found, using defaults")
		} else {
			return nil, oops.
				Code("config_read").
				In("config").
				With("path", path).
				Wrapf(err, "error reading config file")
		}
	} else {
		log.Debugf("Using config file: %s", viper.ConfigFileUsed())
	}
	return Current()
}

// Current resolves the configuration from the current viper state.
func Current() (*Config, error) {
	unit, err := unixtime.ParseUnit(viper.GetString(keyUnit))
	if err != nil {
		return nil, oops.In("config").With("key", keyUnit).Wrap(err)
	}
	cfg := &Config{
		Unit:     unit,
		LogLevel: viper.GetString(keyLogLevel),
		Watch: WatchConfig{
			MaxSkew:        viper.GetDuration(keyMaxSkew),
			FailOnBackward: viper.GetBool(keyFailOnBackward),
		},
	}
	if err := Validate(*cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WriteDefault writes the built-in defaults as YAML to dir/config.yaml,
// creating dir if needed. An existing file is left untouched and reported
// as an error.
func WriteDefault(dir string) (string, error) {
	file := filepath.Join(dir, "config.yaml")
	if util.CheckFileExists(file) {
		return file, oops.
			Code("config_exists").
			In("config").
			With("path", file).
			Errorf("config file already exists")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return file, oops.In("config").With("dir", dir).Wrapf(err, "could not create config directory")
	}

	d := Defaults()
	var fc fileConfig
	fc.Unit = d.Unit.String()
	fc.LogLevel = d.LogLevel
	fc.Watch.MaxSkew = d.Watch.MaxSkew.String()
	fc.Watch.FailOnBackward = d.Watch.FailOnBackward

	data, err := yaml.Marshal(&fc)
	if err != nil {
		return file, oops.In("config").Wrapf(err, "could not encode default config")
	}
	if err := os.WriteFile(file, data, 0o644); err != nil {
		return file, oops.In("config").With("path", file).Wrapf(err, "could not write default config")
	}
	log.Debugf("Created default configuration at: %s", file)
	return file, nil
}

// BuildConfigDirPath returns $HOME/.timeconv.
func BuildConfigDirPath() string {
	return filepath.Join(util.UserHome(), BaseDirName)
}
