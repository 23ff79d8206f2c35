package parser

import (
	"os"
	"path/filepath"
)

// ParseFile reads and assembles a source file, using its base name for
// error positions.
func ParseFile(path string) (*Program, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided assembly file path
	if err != nil {
		return nil, err
	}
	p := NewParser(string(content), filepath.Base(path))
	return p.Parse()
}
