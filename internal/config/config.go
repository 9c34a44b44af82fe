// Package config loads the CLI's optional settings file via
// github.com/spf13/viper. The interpreter core (package phpjs) takes no
// config struct of its own (§6.2) — these knobs exist only for cmd/phpjs.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the settings cmd/phpjs binds to flags and/or phpjs.yaml.
type Config struct {
	// MaxSteps bounds execution before Interpret fails with a runtime
	// error, guarding the REPL against a runaway loop. Zero = unlimited.
	MaxSteps int

	// TraceTokens, when set, makes `phpjs run` (as if --trace were given)
	// and `phpjs repl` print the token stream before executing.
	TraceTokens bool
}

const (
	defaultMaxSteps    = 0
	defaultTraceTokens = false
)

// Load reads phpjs.yaml from the current directory (or the path named by
// explicitPath), falling back to defaults when no file is present —
// viper.ReadInConfig errors are swallowed for exactly that reason, not
// ignored blindly.
func Load(explicitPath string) *Config {
	v := viper.New()
	v.SetDefault("max_steps", defaultMaxSteps)
	v.SetDefault("trace_tokens", defaultTraceTokens)

	v.SetEnvPrefix("PHPJS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	} else {
		v.SetConfigName("phpjs")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	_ = v.ReadInConfig()

	return &Config{
		MaxSteps:    v.GetInt("max_steps"),
		TraceTokens: v.GetBool("trace_tokens"),
	}
}
