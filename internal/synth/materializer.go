package synth

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	configFileMode = os.FileMode(0o600)
	configDirMode  = os.FileMode(0o700)

	backupSuffix = ".backup"
)

// materialize writes the rendered document to path and to a same-format
// backup sibling, creating parent directories as needed. Any pre-existing
// file is overwritten — last write wins, no merging with prior content.
//
// Both files are then restricted to owner read/write. A failed chmod is
// logged and tolerated: the content is still usable even when the mount
// refuses permission changes (write failures, by contrast, abort the run).
func (s *Synthesizer) materialize(path string, rendered []byte) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, rendered, configFileMode); err != nil {
		return "", fmt.Errorf("writing config file: %w", err)
	}

	backupPath := path + backupSuffix
	if err := os.WriteFile(backupPath, rendered, configFileMode); err != nil {
		return "", fmt.Errorf("writing config backup: %w", err)
	}

	for _, p := range []string{path, backupPath} {
		if err := os.Chmod(p, configFileMode); err != nil {
			s.logger.Warn().
				Err(err).
				Str("path", p).
				Msg("could not restrict config file permissions")
		}
	}

	return backupPath, nil
}
