package config

const (
	defaultOutputDir        = "~/roimark/output"
	defaultLogDir           = "~/.local/share/roimark/logs"
	defaultStateDir         = "~/.local/share/roimark/state"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultDisplayMaxWidth  = 800
	defaultDisplayMaxHeight = 600
	defaultHistoryKeepRuns  = 200
)

// AnchorDistal and AnchorProximal are the accepted values for ROI.Anchor.
const (
	AnchorDistal   = "distal"
	AnchorProximal = "proximal"
)

// Default returns a Config populated with repository defaults, including the
// four standard tibia ROI definitions.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
			StateDir:  defaultStateDir,
		},
		ROIs: DefaultROIs(),
		Display: Display{
			MaxWidth:  defaultDisplayMaxWidth,
			MaxHeight: defaultDisplayMaxHeight,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		History: History{
			Enabled:  true,
			KeepRuns: defaultHistoryKeepRuns,
		},
	}
}

// DefaultROIs returns the standard region set: two forward regions measured
// from the distal junction and two backward regions measured from the
// proximal junction.
func DefaultROIs() []ROI {
	return []ROI{
		{Name: "50-100_distal_TF", Anchor: AnchorDistal, Skip: 50, Copy: 50},
		{Name: "450-500_distal_TF", Anchor: AnchorDistal, Skip: 450, Copy: 50},
		{Name: "0-300_proximal_TF", Anchor: AnchorProximal, Skip: 0, Count: 300},
		{Name: "40-90_proximal_TF", Anchor: AnchorProximal, Skip: 40, Count: 50},
	}
}
