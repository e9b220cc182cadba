package config

import "github.com/spf13/pflag"

// Flags holds command-line overrides. Zero values mean "not set".
type Flags struct {
	Config    string
	Debug     bool
	LogFile   string
	Algorithm string
	CacheSize int
	NoFetch   bool
	Force     bool
}

// RegisterGlobal adds flags shared by every command.
func (f *Flags) RegisterGlobal(fs *pflag.FlagSet) {
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.LogFile, "log-file", "", "Also write logs to this file")
}

// RegisterOptimize adds the reordering flags.
func (f *Flags) RegisterOptimize(fs *pflag.FlagSet) {
	fs.StringVarP(&f.Algorithm, "algorithm", "a", "", "Reordering algorithm (greedy, fifo)")
	fs.IntVarP(&f.CacheSize, "cache-size", "c", 0, "Simulated cache size")
	fs.BoolVar(&f.NoFetch, "no-fetch", false, "Skip the vertex fetch remap")
	fs.BoolVarP(&f.Force, "force", "f", false, "Overwrite an existing output file")
}

// ConfigPath returns the explicit config path if provided via --config flag.
func (f *Flags) ConfigPath() string {
	if f == nil {
		return ""
	}
	return f.Config
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.LogFile != "" {
		cfg.Logging.LogFile = f.LogFile
	}
	if f.Algorithm != "" {
		cfg.Optimize.Algorithm = f.Algorithm
	}
	if f.CacheSize > 0 {
		cfg.Optimize.CacheSize = f.CacheSize
		cfg.Analyze.CacheSize = f.CacheSize
	}
	if f.NoFetch {
		cfg.Optimize.VertexFetch = false
	}
	if f.Force {
		cfg.Output.Overwrite = true
	}
}
