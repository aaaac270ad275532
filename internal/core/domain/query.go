// Package domain contains the core types for stamp.
package domain

import (
	"encoding/json"

	"go.trai.ch/zerr"
)

// Query is the request document read from the calling orchestrator.
//
// build_paths carries a JSON array nested inside a string value because the
// orchestrator's external-program protocol only passes flat string maps.
type Query struct {
	BuildCommand  string `json:"build_command"`
	BuildPaths    string `json:"build_paths"`
	ModuleRelpath string `json:"module_relpath"`
	Runtime       string `json:"runtime"`
	SourcePath    string `json:"source_path"`
}

// BuildPathList decodes the nested JSON array carried in BuildPaths.
func (q *Query) BuildPathList() ([]string, error) {
	var paths []string
	if err := json.Unmarshal([]byte(q.BuildPaths), &paths); err != nil {
		return nil, zerr.With(zerr.Wrap(ErrBuildPathsMalformed, "failed to decode build paths"), "build_paths", q.BuildPaths)
	}
	return paths, nil
}

// Result is the response document written back to the orchestrator.
type Result struct {
	Filename     string `json:"filename"`
	BuildCommand string `json:"build_command"`
}
