package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	yaml "github.com/goccy/go-yaml"
)

// CfgPath is a file system path from the config file. Relative paths
// are taken relative to the directory holding the config file.
type CfgPath string

type baseDirKey struct{}

func withBaseDir(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, baseDirKey{}, dir)
}

func (c *CfgPath) UnmarshalYAML(ctx context.Context, b []byte) error {
	var path string
	err := yaml.UnmarshalContext(ctx, b, &path)
	if err != nil {
		return err
	}

	base, _ := ctx.Value(baseDirKey{}).(string)
	*c = CfgPath(resolvePath(base, path))
	return nil
}

func resolvePath(base, path string) string {
	switch {
	case path == "":
		return ""
	case path == "~" || strings.HasPrefix(path, "~/"):
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	case filepath.IsAbs(path):
		return path
	}
	return filepath.Join(base, path)
}

func (c CfgPath) String() string {
	return string(c)
}
