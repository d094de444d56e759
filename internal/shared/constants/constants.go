package constants

import (
	"io/fs"
	"time"
)

const (
	// DefaultDirPerm is the default permission used when creating directories.
	DefaultDirPerm fs.FileMode = 0o755
	// DefaultFilePerm is the default permission used when creating files.
	DefaultFilePerm fs.FileMode = 0o644
)

const (
	// RawCaptureLimitBytes caps how much of an unexpected response body ends up in a violation.
	RawCaptureLimitBytes = 2048
	// MaxResponseBytes caps a response body. Longer bodies are an error, never truncated.
	MaxResponseBytes = 16 << 20
	// DefaultHTTPTimeout bounds a single probe request when no timeout is configured.
	DefaultHTTPTimeout = 10 * time.Second
)

const (
	// ViolationSeparator joins violations into the single string reported to CI.
	ViolationSeparator = ","
	// GitHubOutputEnv names the file GitHub Actions reads step outputs from.
	GitHubOutputEnv = "GITHUB_OUTPUT"
	// ErrorOutputName is the step output carrying the joined violations.
	ErrorOutputName = "error"
)
