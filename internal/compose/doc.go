// Package compose builds the docker-compose service descriptor for the ChatPPT
// deployment. The descriptor is a fixed typed value rendered to YAML, so every
// run produces byte-identical output, and it is checked against an embedded
// JSON Schema after rendering.
package compose
