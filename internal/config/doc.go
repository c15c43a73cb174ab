// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources; for every field the
// first source providing a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The configuration is read once at startup and passed explicitly to the
// components that need it; nothing reads it from ambient state afterwards.
package config
