// Package scaffold writes the ChatPPT deployment artifacts: the .env secrets
// file, its .env.example counterpart, the Dockerfile, the docker-compose.yml
// descriptor and the .gitignore update. Only .env receives the collected
// secrets; every other artifact is identical across runs.
package scaffold
