package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

var (
	configPath      = "config/config.yaml"
	devConfigPath   = "config/config.dev.yaml"
	localConfigPath = "config/config.local.yaml"
)

func LoadConfig(c any) error {
	var path string

	switch os.Getenv("ENV") {
	case "local":
		path = localConfigPath
	case "dev":
		path = devConfigPath
	case "prod":
		path = configPath
	default:
		path = configPath
	}

	return parseConfig(c, path, CommonParseOptions)
}

func parseConfig(c any, path string, opts parseOptions) error {
	if err := readFile(c, path); err != nil {
		return err
	}

	return CommonHelp("statusgrab", "Run the download service", "", c, opts)
}

func readFile(cfg interface{}, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Fatal(cerr)
		}
	}()

	decoder := yaml.NewDecoder(f)

	if err = decoder.Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode yaml file %s: %w", path, err)
	}

	return nil
}

// Duration implements yaml InterfaceUnmarshaler. Accepts a string parseable by
// time.ParseDuration ("5m", "1h30m"), an integer (seconds) or a float (seconds
// with a fractional part).
type Duration time.Duration

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case string:
		dur, err := time.ParseDuration(v)
		if err != nil {
			return err
		}

		*d = Duration(dur)
	case int:
		*d = Duration(time.Duration(v) * time.Second)
	case int64:
		*d = Duration(time.Duration(v) * time.Second)
	case uint64:
		*d = Duration(time.Duration(v) * time.Second)
	case float64:
		*d = Duration(time.Duration(v * float64(time.Second)))
	default:
		return fmt.Errorf("unsupported duration value %v", raw)
	}

	return nil
}

// MarshalYAML writes the value back as a string ("5m0s").
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}
