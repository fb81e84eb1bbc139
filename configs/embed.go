// Package configs provides embedded templates and data for wordlook.
//
// Files are embedded at build time so they ship with every binary:
//   - config.example.yaml: written by `wordlook config init`
//   - sample-dictionary.json: used when no dictionary source is configured
//
// Configuration hierarchy (see internal/config/config.go Load()):
//  1. Hardcoded defaults (internal/config NewConfig())
//  2. User config (~/.config/wordlook/config.yaml)
//  3. Project config (.wordlook.yaml)
//  4. Environment variables (WORDLOOK_*)
//  5. Command-line flags
package configs

import _ "embed"

// ConfigTemplate is the commented template for the user configuration.
//
//go:embed config.example.yaml
var ConfigTemplate string

// SampleDictionary is a small English dictionary in the JSON source format,
// an object mapping each word to its ordered definitions.
//
//go:embed sample-dictionary.json
var SampleDictionary []byte

// SampleDictionaryName identifies the embedded dictionary in logs and errors.
const SampleDictionaryName = "embedded:sample-dictionary.json"
