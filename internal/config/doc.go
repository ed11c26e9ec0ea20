// Package config loads weaver's layered configuration with koanf.
//
// Layers, lowest precedence first:
//
//  1. embedded/defaults.toml
//  2. --config FILE, or $XDG_CONFIG_HOME/weaver/config.toml when present
//  3. WEAVER_<SECTION>_<KEY> environment variables
//  4. flags the user set explicitly, passed as LoadOptions.Overrides
//
// The merged result is validated with go-playground/validator struct tags.
package config
