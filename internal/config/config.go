// Package config fills flags that were not given on the command line from
// an optional config file and MIRUREADER_* environment variables.
//
// Precedence: explicit flag > environment > config file > flag default.
package config

import (
	"flag"
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the environment variable prefix (MIRUREADER_MISMATCH, ...).
const EnvPrefix = "MIRUREADER"

// Load reads path (if non-empty) and binds the environment. The file type
// is taken from the extension (yaml, toml, json, ...).
func Load(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}
	return v, nil
}

// Apply sets every long flag of fs that was not set explicitly and has a
// value in v. Single-letter aliases and the keys in skip are ignored. A
// flag given through any of its names counts as explicit for all of them.
func Apply(fs *flag.FlagSet, v *viper.Viper, skip ...string) error {
	explicit := map[string]bool{}
	given := map[flag.Value]bool{}
	fs.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
		if hashable(f.Value) {
			given[f.Value] = true
		}
	})
	for _, s := range skip {
		explicit[s] = true
	}

	var firstErr error
	fs.VisitAll(func(f *flag.Flag) {
		if firstErr != nil || len(f.Name) == 1 || explicit[f.Name] || !v.IsSet(f.Name) {
			return
		}
		if hashable(f.Value) && given[f.Value] {
			return
		}
		for _, val := range values(v, f) {
			if err := fs.Set(f.Name, val); err != nil {
				firstErr = fmt.Errorf("config key %q: %w", f.Name, err)
				return
			}
		}
	})
	return firstErr
}

// hashable reports whether val can key a map. Aliases registered on the
// same variable share a pointer-backed Value.
func hashable(val flag.Value) bool {
	return val != nil && reflect.TypeOf(val).Comparable()
}

// values flattens a config value; repeatable flags accept lists.
func values(v *viper.Viper, f *flag.Flag) []string {
	if _, ok := f.Value.(interface{ IsRepeatable() bool }); ok {
		return v.GetStringSlice(f.Name)
	}
	return []string{v.GetString(f.Name)}
}
