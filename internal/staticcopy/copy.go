// Package staticcopy copies a directory of static assets into the output
// directory of a site.
package staticcopy

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Copy copies every file below src into dst, creating dst and any nested
// directories which do not exist yet. Existing files are overwritten.
func Copy(src, dst string) error {
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", dst)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return errors.Wrapf(err, "reading %s", src)
	}

	for _, entry := range entries {
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dst, entry.Name())
		logrus.WithFields(logrus.Fields{"from": from, "to": to}).Debug("Copying static file")

		if entry.IsDir() {
			if err := Copy(from, to); err != nil {
				return err
			}
			continue
		}

		if err := copyFile(from, to); err != nil {
			return err
		}
	}

	return nil
}

func copyFile(from, to string) error {
	in, err := os.Open(from)
	if err != nil {
		return errors.Wrapf(err, "opening %s", from)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return errors.Wrapf(err, "stat %s", from)
	}

	out, err := os.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errors.Wrapf(err, "creating %s", to)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.Wrapf(err, "copying %s to %s", from, to)
	}

	return errors.Wrapf(out.Close(), "closing %s", to)
}
