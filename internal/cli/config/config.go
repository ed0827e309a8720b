//Package config loads vasptools configuration from an optional YAML file,
//environment variables and command-line flags, in rising precedence.
package config

//Config holds the tool-wide settings. Everything here is a default that a
//subcommand flag can override.
type Config struct {
	//PawLibrary is the root directory of the PAW potential library,
	//one potential directory per (element, flavor).
	PawLibrary string `koanf:"paw_library"`
	//PawSetting selects the potential flavor policy, 1-7.
	PawSetting int `koanf:"paw_setting"`
	//DistanceAbove is the default adsorbate placement distance in Angstrom.
	DistanceAbove float64 `koanf:"distance_above"`
	//Verbose raises the log level to debug.
	Verbose bool `koanf:"verbose"`
}

//Defaults mirror the classic workflow scripts: VASP-recommended PAW
//potentials and a 1.8 Angstrom placement distance.
const (
	DefaultPawLibrary    = "/usr/local/vasp/potpaw_PBE"
	DefaultPawSetting    = 1
	DefaultDistanceAbove = 1.8
)
