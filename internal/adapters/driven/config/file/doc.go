// Package file stores veridoc configuration in a TOML file on the
// local filesystem, by default ~/.veridoc/config.toml.
package file
