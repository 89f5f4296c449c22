// Package config loads kiray's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/kiray/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. If the file exists but fields are empty, use defaults for those
//
// # TOML Format
//
//	variant = "user"                          # user | admin
//	log_file = "~/.local/state/kiray/kiray.log"
//	log_level = "info"                        # debug | info | warn | error
//
// Every field is optional. Values are trimmed, variant and log_level are
// lowercased and log_file gets tilde expansion.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML parse errors ("parse config: ...") and an unknown
// variant (ErrUnknownVariant). A missing file is not an error.
package config
