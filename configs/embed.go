// Package configs provides the embedded configuration template for
// quickfind.
//
// The template is embedded at build time with //go:embed so it ships in
// every distribution, source builds included. 'quickfind init' writes it
// to .quickfind.yaml at the vault root.
package configs

import _ "embed"

// VaultConfigTemplate is the starter configuration written by
// 'quickfind init'. Every value matches the built-in defaults, so the
// generated file documents the knobs without changing behavior.
//
//go:embed vault-config.example.yaml
var VaultConfigTemplate string
