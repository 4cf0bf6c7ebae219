// Package config manages user-level settings stored at ~/.zeo/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the registered engine root and the defaults for the setup flow.
package config
