// Package config handles configuration loading, parsing, and validation
// from environment variables (prefix RTDC_) and an optional YAML file. The
// resulting Config is passed explicitly to the components that need it;
// nothing else in the application reads the environment.
package config
