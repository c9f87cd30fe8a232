// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fileutil rewrites formatted files in place without exposing
// partially written content.
package fileutil

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// LockPath returns the lock file guarding path. Locks live in the temp
// directory so the project tree is never touched.
func LockPath(path string) string {
	sum := sha256.Sum256([]byte(filepath.Clean(path)))
	return filepath.Join(os.TempDir(), "fmtrc-"+hex.EncodeToString(sum[:8])+".lock")
}

// 🔒 WriteFormatted replaces path with content under an exclusive lock. The
// write is skipped when the file already holds content. The original file
// mode is kept. It reports whether the file changed.
func WriteFormatted(ctx context.Context, path string, content []byte) (bool, error) {
	lock := flock.New(LockPath(path))
	if err := lock.Lock(); err != nil {
		return false, errors.Errorf("acquiring lock for %s: %w", path, err)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Str("path", path).Msg("releasing lock")
		}
	}()

	info, err := os.Stat(path)
	if err != nil {
		return false, errors.Errorf("stat %s: %w", path, err)
	}

	current, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Errorf("reading %s: %w", path, err)
	}
	if bytes.Equal(current, content) {
		return false, nil
	}

	if err := AtomicWrite(path, content, info.Mode().Perm()); err != nil {
		return false, err
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Int("bytes", len(content)).Msg("wrote formatted file")
	return true, nil
}

// AtomicWrite writes data to a temp file next to path, then renames it over
// path. On failure the original file is left as it was.
func AtomicWrite(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".fmtrc-*")
	if err != nil {
		return errors.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return errors.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return errors.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return errors.Errorf("renaming temp file to %s: %w", path, err)
	}

	committed = true
	return nil
}
