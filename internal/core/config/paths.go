package config

import (
	"path/filepath"
	"strings"
)

// ResolveRelative joins p onto base unless p is empty or absolute.
func ResolveRelative(base, p string) string {
	p = strings.TrimSpace(p)
	if p == "" || filepath.IsAbs(p) || base == "" {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}
