package lnk

import (
	"fmt"

	"github.com/joshuapare/lnkkit/internal/mmfile"
)

// DecodeFile maps the file at path read-only, decodes it, and unmaps it.
// Files larger than Limits.MaxFileSize are rejected before mapping.
func DecodeFile(path string, opts ...Option) (*ShellLink, error) {
	cfg := newConfig(opts)

	data, cleanup, err := mmfile.Map(path, cfg.limits.MaxFileSize)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer cleanup()

	cfg.debug("mapped link file", "path", path, "size", len(data))
	link, err := Decode(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return link, nil
}
