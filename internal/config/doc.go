// Package config handles configuration loading and merging for ptree.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--style, --depth, --annotate, --no-color, --root, --debug)
//  2. Environment variables (PTREE_STYLE, PTREE_DEPTH, PTREE_ANNOTATE, PTREE_NO_COLOR, NO_COLOR, PTREE_DEBUG)
//  3. YAML config file (.ptree.yaml in local directory or ~/.config/ptree/.ptree.yaml)
//  4. Hardcoded defaults
//
// When a higher-priority source sets a value, it overrides any lower-priority values.
//
// # Key Configuration Options
//
//   - Style: Selects the glyph set (unicode or ascii)
//   - Depth: Stops expansion at a nesting level; must be a positive integer
//   - Annotate: Adds the runtime type to every branch row
//   - NoColor: Disables ANSI colors even on a terminal
//
// # Environment Variables
//
//   - PTREE_NO_COLOR: Set to "true" or "1" to disable colors
//   - NO_COLOR: Any non-empty value disables colors
//   - PTREE_DEBUG: Set to any non-empty value to enable debug logging
package config
