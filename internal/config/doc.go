// Package config provides user configuration for codeverifier.
//
// The configuration is a YAML file holding the code field's style (slot
// metrics, mask, colors) and CLI preferences. Command-line flags override
// whatever the file says.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/codeverifier/config.yaml or $HOME/.config/codeverifier/config.yaml
//   - macOS: $HOME/.config/codeverifier/config.yaml
//   - Windows: %LOCALAPPDATA%\codeverifier\config.yaml
//
// # Example
//
//	version: 1
//	style:
//	  slot_width: 5
//	  slot_spacing: 1
//	  label_height: 3
//	  line_height: 1
//	  carrier_spacing: 0
//	  secure: false
//	  mask: "•"
//	preferences:
//	  exit_on_success: true
//	  demo_code: "123456"
//
// # Security
//
// Typed input is never written to the configuration file.
//
// # Thread Safety
//
// The global registry uses sync.Once for initialization; writes go through a
// temp file and rename under a mutex.
package config
