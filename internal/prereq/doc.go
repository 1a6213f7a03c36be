// Package prereq verifies that the external tools the generated deployment
// files depend on are installed. RequireTool is the fatal gate used before
// scaffolding; the version and daemon probes back the doctor command.
package prereq
