// Package config loads the application configuration for both the bookmark
// server and the terminal client. Values are collected from environment
// variables, command-line flags, and an optional JSON file, then merged in
// that order (non-zero fields from earlier sources win) and validated.
package config
