// Package cli defines the Cobra command tree for the chatppt-setup CLI. The
// root command runs the scaffold; the other files each register one
// subcommand. Commands delegate to internal packages for the work and only
// handle flag parsing, I/O formatting, and user interaction.
package cli
