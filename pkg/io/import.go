package io

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/commitgraph/pkg/errors"
	"github.com/matzehuels/commitgraph/pkg/graph"
)

// EncodingFor picks the input encoding from path's extension.
func EncodingFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return graph.EncodingYAML
	default:
		return graph.EncodingJSON
	}
}

// Read decodes and validates commits from r using the named encoding.
func Read(r io.Reader, encoding string) ([]graph.Commit, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read input")
	}
	return graph.Unmarshal(data, encoding)
}

// ImportFile reads the commit layout stored at path. A missing file is
// reported as FILE_NOT_FOUND.
func ImportFile(path string) ([]graph.Commit, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", path)
	}

	commits, err := graph.Unmarshal(data, EncodingFor(path))
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return commits, nil
}
