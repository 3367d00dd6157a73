// Package fileutil provides the file move and copy primitives used by the
// placement engine.
package fileutil

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
)

// MoveFile moves src to dst, creating dst's parent directories. It prefers
// os.Rename and falls back to a verified copy plus remove when src and dst
// live on different filesystems. An existing dst is replaced.
func MoveFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("ensure target directory: %w", err)
	}
	renameErr := os.Rename(src, dst)
	if renameErr == nil {
		return nil
	}
	var linkErr *os.LinkError
	if !errors.As(renameErr, &linkErr) || !errors.Is(linkErr.Err, syscall.EXDEV) {
		return renameErr
	}
	if err := CopyFileVerified(src, dst); err != nil {
		return fmt.Errorf("cross-device copy: %w", err)
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("remove source after copy: %w", err)
	}
	return nil
}

// CopyFileVerified streams src to dst with SHA256 + size integrity verification.
// Removes dst on mismatch.
func CopyFileVerified(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	srcSize := srcInfo.Size()

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	srcHasher := sha256.New()
	dstHasher := sha256.New()
	tee := io.TeeReader(in, srcHasher)
	multi := io.MultiWriter(out, dstHasher)

	written, err := io.Copy(multi, tee)
	if err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if written != srcSize {
		_ = os.Remove(dst)
		return fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", srcSize, written)
	}

	if !bytes.Equal(srcHasher.Sum(nil), dstHasher.Sum(nil)) {
		_ = os.Remove(dst)
		return fmt.Errorf("copy hash mismatch: file corrupted during copy")
	}

	return nil
}
