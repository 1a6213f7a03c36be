package prereq

import (
	"context"
	"fmt"

	"github.com/docker/docker/client"
)

// DaemonInfo is the subset of the daemon ping response shown to the user.
type DaemonInfo struct {
	APIVersion string
	OSType     string
}

// PingDaemon connects to the Docker daemon configured by the environment
// (DOCKER_HOST and friends) and pings it.
func PingDaemon(ctx context.Context) (*DaemonInfo, error) {
	cli, err := client.NewClientWithOpts(
		client.FromEnv,
		client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return nil, fmt.Errorf("creating docker client: %w", err)
	}
	defer cli.Close()

	ping, err := cli.Ping(ctx)
	if err != nil {
		return nil, fmt.Errorf("pinging docker daemon: %w", err)
	}
	return &DaemonInfo{APIVersion: ping.APIVersion, OSType: ping.OSType}, nil
}
