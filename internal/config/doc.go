// Package config loads and validates glint.json, the project
// configuration consumed by the glint CLI and server.
package config
