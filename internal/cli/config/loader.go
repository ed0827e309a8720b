package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

//findConfigFile returns the config file to load: the explicit path if
//given, otherwise vasptools.yaml or vasptools.yml in the working
//directory, otherwise nothing.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"vasptools.yaml", "vasptools.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

//Load builds the configuration.
//Precedence (highest to lowest): flags > env vars (VASPTOOLS_ prefix) >
//config file > defaults. Only flags the user actually set are considered;
//kebab-case flag names map onto snake_case config keys.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"paw_library":    DefaultPawLibrary,
		"paw_setting":    DefaultPawSetting,
		"distance_above": DefaultDistanceAbove,
		"verbose":        false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if used := findConfigFile(cfgFile); used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	} else if cfgFile != "" {
		return nil, fmt.Errorf("config file %s not found", cfgFile)
	}

	//VASPTOOLS_PAW_LIBRARY -> paw_library
	if err := k.Load(env.Provider("VASPTOOLS_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "VASPTOOLS_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			//bridge the short flag names onto the config keys
			switch key {
			case "library":
				key = "paw_library"
			case "setting":
				key = "paw_setting"
			case "distance":
				key = "distance_above"
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}
