// Package config defines the application configuration structure and
// loading logic. Configuration is read once at startup from environment
// variables and an optional config file, validated, and then injected as
// an immutable value into the components that need it. Nothing in this
// package supports runtime reconfiguration.
package config
