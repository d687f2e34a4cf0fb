package app

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const defaultConfig = `# gmlconv

################################## LOGGING ####################################

[logging]

#
# Logging verbosity level.
# Supported values: "DEBUG", "INFO", "WARN", "ERROR", "FATAL" or "PANIC".
#
level = "WARN"

################################## PARSER #####################################

[parser]

#
# Namespace URI GML geometry elements must carry.
#
namespace = "http://www.opengis.net/gml"

#
# Nesting limit for MultiGeometry collections. Documents nested deeper
# than this are rejected.
#
max_depth = 100

#
# Validate decoded coordinates against geographic bounds
# (longitude within ±180, latitude within ±90).
#
validate_geometry = false

################################## OUTPUT #####################################

[output]

#
# Indent the GeoJSON output for readability.
#
pretty = false
`

type Config struct {
	v *viper.Viper

	Logging struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"logging"`

	Parser struct {
		Namespace        string `mapstructure:"namespace"`
		MaxDepth         int    `mapstructure:"max_depth"`
		ValidateGeometry bool   `mapstructure:"validate_geometry"`
	} `mapstructure:"parser"`

	Output struct {
		Pretty bool `mapstructure:"pretty"`
	} `mapstructure:"output"`
}

func (c Config) Validate() error {
	if c.Parser.MaxDepth < 0 {
		return errors.New("parser.max_depth must not be negative")
	}
	return nil
}

func loadConfig(c *Config) error {
	v := viper.New()

	v.SetEnvPrefix("GMLCONV")
	v.AutomaticEnv()

	v.SetConfigName("gmlconv")
	v.SetConfigType("toml")
	v.AddConfigPath("$HOME/.config/")
	v.AddConfigPath("/etc/gmlconv/")

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read our default configuration.
	if err := v.ReadConfig(strings.NewReader(defaultConfig)); err != nil {
		panic(err) // Not in the user path.
	}

	// Include configuration file provided by the user.
	if err := v.MergeInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return errors.Wrap(err, "configuration unmarshaling failed")
	}

	if err := c.Validate(); err != nil {
		return errors.Wrap(err, "config did not pass validation")
	}

	c.v = v

	return nil
}
