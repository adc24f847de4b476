/*
Package config provides type-safe configuration extraction from map[string]any
and loaders for token store settings.

# Overview

config wraps a map[string]any and provides typed accessor methods that handle
missing keys and type mismatches gracefully by returning default values.
Token stores read these keys from it:

  - delimiter: the token path separator (default ":")
  - defaults: the nested tree a store resets to
  - session_id: the session snapshots are saved under (default: random)
  - observability.metrics: record OpenTelemetry metrics (default false)
  - observability.tracing: trace replace calls (default false)

# Basic Usage

Load settings from a YAML file and build a store from them:

	cfg, err := config.FromFile("tokens.yaml")
	if err != nil {
	    return err
	}
	store := tokens.NewStore(tokens.WithConfig(cfg))

A matching tokens.yaml:

	delimiter: ":"
	defaults:
	  site:
	    name: Acme
	    slogan: ~
	observability:
	  tracing: true

A null value (~) is kept as an undefined token: the key exists and its
placeholder is replaced with an empty string.

# Type Coercion

Accessors return the default value if the key is missing or holds another
type. YAML mappings decoded with map[any]any keys are normalized to
map[string]any.
*/
package config
