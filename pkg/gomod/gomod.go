// Package gomod queries a Go project's package metadata by running
// `go mod edit -json` against its manifest and parsing the structured
// output. The error values distinguish a manifest the toolchain rejected
// from a toolchain that could not be invoked at all; callers map the former
// to a failed check and the latter to an undetermined one.
package gomod

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/module"

	"github.com/dshills/goculture/pkg/execs"
)

var (
	// ErrToolUnavailable means the go tool could not be invoked.
	ErrToolUnavailable = errors.New("go tool unavailable")
	// ErrInvalidManifest means the tool ran and rejected the manifest.
	ErrInvalidManifest = errors.New("invalid go.mod manifest")
	// ErrUnparseableOutput means the tool produced output that could not be
	// decoded; the manifest's validity is unknown.
	ErrUnparseableOutput = errors.New("unparseable go tool output")
)

// Metadata is the parsed output of `go mod edit -json` for one manifest.
type Metadata struct {
	Module  Module    `json:"Module"`
	Go      string    `json:"Go"`
	Require []Require `json:"Require"`
}

// Module identifies the module declared by the manifest.
type Module struct {
	Path string `json:"Path"`
}

// Require is one entry of the manifest's dependency list.
type Require struct {
	Path     string `json:"Path"`
	Version  string `json:"Version"`
	Indirect bool   `json:"Indirect"`
}

// Query runs the package-metadata query against the given go.mod path.
// Errors wrap ErrToolUnavailable, ErrInvalidManifest, or ErrUnparseableOutput
// so callers can tell the tiers apart.
func Query(ctx context.Context, manifestPath string) (*Metadata, error) {
	res, err := execs.Run(ctx, filepath.Dir(manifestPath), GoCommand(), "mod", "edit", "-json", manifestPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrToolUnavailable, err)
	}
	if !res.Success() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidManifest, strings.TrimSpace(res.Stderr))
	}
	return parseMetadata([]byte(res.Stdout))
}

// parseMetadata decodes the tool's JSON output and validates the declared
// module path.
func parseMetadata(data []byte) (*Metadata, error) {
	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnparseableOutput, err)
	}
	if m.Module.Path == "" {
		return nil, fmt.Errorf("%w: missing module path", ErrInvalidManifest)
	}
	if err := module.CheckPath(m.Module.Path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	return &m, nil
}

// GoCommand returns the go tool to invoke, honoring the GOCULTURE_GO
// environment variable so tests and unusual installs can point elsewhere.
func GoCommand() string {
	if v := os.Getenv("GOCULTURE_GO"); v != "" {
		return v
	}
	return "go"
}
