// Package config owns the persisted side of an editing session: the
// nested value store, the TOML loader, and the comment-annotated TOML
// saver that writes the whole value map back in schema order.
//
// Values are addressed with qualified dot-path keys ("section.field")
// and carry one of four dynamic types: string, int64, float64 or bool.
// The loader can optionally expand environment references ($VAR, ${VAR})
// and a leading tilde; the editor loads without expansion so literal
// references stay visible and editable.
//
// The default configuration directory follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/formwork or $HOME/.config/formwork
//   - macOS: $HOME/.config/formwork
//   - Windows: %LOCALAPPDATA%\formwork
package config
