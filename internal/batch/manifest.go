package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one converted file in the output manifest.
type ManifestEntry struct {
	Source      string   `json:"source"`
	Output      string   `json:"output,omitempty"`
	Version     uint32   `json:"version,omitempty"`
	Meshes      int      `json:"meshes"`
	Verified    bool     `json:"verified"`
	SourceHash  string   `json:"source_blake2b,omitempty"`
	EncodedHash string   `json:"encoded_blake2b,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// Manifest returns one entry per result.
func Manifest(results []Result) []ManifestEntry {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			Source:      r.Path,
			Output:      r.Output,
			Version:     r.Version,
			Meshes:      r.Meshes,
			Verified:    r.Verified,
			SourceHash:  r.SourceHash,
			EncodedHash: r.EncodedHash,
			Warnings:    r.Warnings,
			Error:       r.Error,
		}
	}
	return entries
}

// WriteManifest writes the manifest of results to path.
func WriteManifest(path string, results []Result) error {
	data, err := json.MarshalIndent(Manifest(results), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Failed returns the number of results that did not succeed.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Success {
			n++
		}
	}
	return n
}
