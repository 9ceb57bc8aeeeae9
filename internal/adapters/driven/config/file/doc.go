// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem as TOML.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//   - Catalog files: TOML lists of custom unit definitions for import/export
package file
