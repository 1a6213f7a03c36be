package compose

import (
	"bytes"
	"fmt"

	"go.yaml.in/yaml/v3"
)

// Fixed identities of the two services.
const (
	AppService    = "chatppt"
	TunnelService = "ngrok"

	AppPort     = 7860
	TunnelPort  = 4040
	TunnelImage = "wernight/ngrok"

	FileFormatVersion = "3.8"
	EnvFileName       = ".env"
)

// File is a docker-compose descriptor.
type File struct {
	Version  string             `yaml:"version,omitempty"`
	Services map[string]Service `yaml:"services"`
}

// Service is one entry under services. Only the keys the ChatPPT deployment
// uses are modeled.
type Service struct {
	Build       string   `yaml:"build,omitempty"`
	Image       string   `yaml:"image,omitempty"`
	Restart     string   `yaml:"restart,omitempty"`
	Volumes     []string `yaml:"volumes,omitempty"`
	EnvFile     string   `yaml:"env_file,omitempty"`
	Environment []string `yaml:"environment,omitempty"`
	Ports       []string `yaml:"ports,omitempty"`
	DependsOn   []string `yaml:"depends_on,omitempty"`
}

// Default returns the ChatPPT descriptor: the application built from the
// local Dockerfile, and an ngrok tunnel pointed at its port. depends_on only
// orders startup; there is no health-check gating.
func Default() *File {
	return &File{
		Version: FileFormatVersion,
		Services: map[string]Service{
			AppService: {
				Build:   ".",
				Restart: "always",
				Volumes: []string{
					"./outputs:/app/outputs",
					"./images:/app/images",
					"./logs:/app/logs",
				},
				EnvFile: EnvFileName,
				Ports:   []string{portMapping(AppPort)},
			},
			TunnelService: {
				Image:   TunnelImage,
				EnvFile: EnvFileName,
				Environment: []string{
					fmt.Sprintf("NGROK_PORT=%s:%d", AppService, AppPort),
				},
				Ports:     []string{portMapping(TunnelPort)},
				DependsOn: []string{AppService},
			},
		},
	}
}

func portMapping(port int) string {
	return fmt.Sprintf("%d:%d", port, port)
}

// Marshal renders f as YAML with two-space indentation. Map keys are emitted
// in sorted order, so output is deterministic.
func Marshal(f *File) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("encoding compose file: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding compose file: %w", err)
	}
	return buf.Bytes(), nil
}

// Render returns the YAML for Default.
func Render() ([]byte, error) {
	return Marshal(Default())
}

// Parse decodes a compose descriptor.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing compose file: %w", err)
	}
	return &f, nil
}
