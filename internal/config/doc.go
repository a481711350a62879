// Package config provides the configuration system for deeplus.
//
// # Architecture
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← DEEPLUS_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/deeplus/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// The config file may be TOML or YAML, chosen by extension. Maps are merged
// key by key, so a file that sets only keys.up keeps the default bindings
// for every other action.
//
// # Sub-packages
//
//   - loader: TOML, YAML and environment variable loading
//   - watcher: fsnotify-based file watching for live reload
//
// # Basic Usage
//
//	cfg, err := config.Load(config.LoadOptions{Path: path})
//	if err != nil {
//		return err
//	}
//	fmt.Println(cfg.Nav.WindowSize)
package config
