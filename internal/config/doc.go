// Package config manages user-level settings stored at ~/.chatppt-setup/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// default credentials and the output directory used by the scaffold run.
package config
