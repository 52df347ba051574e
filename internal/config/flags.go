package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagRayLength = flag.Float64("ray-length", -1, "Probe distance (>= 0)")
	flagDirection = flag.String("direction", "", "Cast direction: down, up, +x, -x, +y, -y")
	flagAlign     = flag.Bool("align", false, "Align object Z axis to the surface normal")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagRayLength >= 0 {
		cfg.Conform.RayLength = *flagRayLength
	}
	if *flagDirection != "" {
		cfg.Conform.Direction = *flagDirection
	}
	if *flagAlign {
		cfg.Conform.AlignRotation = true
	}
}
