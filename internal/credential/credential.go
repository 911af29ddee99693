// Package credential loads a single-line secret from a restricted on-disk
// location. Validation fails fast with a distinct, user-actionable error
// for each defect, and no failure path ever includes file content in its
// message.
package credential

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"

	"github.com/pipewatch/cli/internal/errors"
)

// Validation failures, in the order the checks run
var (
	ErrInvalidName        = stderrors.New("secret name contains invalid characters")
	ErrNotFound           = stderrors.New("secret file not found")
	ErrUnsafeLink         = stderrors.New("secret file is a symbolic link")
	ErrNotRegularFile     = stderrors.New("secret file is not a regular file")
	ErrNotReadable        = stderrors.New("secret file is not readable")
	ErrEmptyContent       = stderrors.New("secret file is empty")
	ErrMalformedMultiline = stderrors.New("secret file contains more than one line")
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Load resolves baseDir/name, validates the location policy and returns
// the secret. The name is checked before any filesystem access happens.
func Load(fs afero.Fs, baseDir, name string) (*Secret, error) {
	if !namePattern.MatchString(name) {
		return nil, errors.NewCredentialError(ErrInvalidName, fmt.Sprintf("name %q", name),
			"secret names may only contain letters, digits, '.', '_' and '-'")
	}

	path := filepath.Join(baseDir, name)

	info, lstatted, err := lstat(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewCredentialError(ErrNotFound, path,
				fmt.Sprintf("mkdir -p -m 700 %s", baseDir),
				fmt.Sprintf("printf '%%s' '<your token>' > %s", path),
				fmt.Sprintf("chmod 600 %s", path),
			)
		}
		return nil, errors.NewCredentialError(err, path)
	}

	// A symlink at the trusted path would let an attacker swap in arbitrary
	// content without touching the directory the user believes holds the
	// secret. Only detectable on filesystems that support lstat.
	if lstatted && info.Mode()&os.ModeSymlink != 0 {
		return nil, errors.NewCredentialError(ErrUnsafeLink, path,
			fmt.Sprintf("remove the link and store the value directly: rm %s", path))
	}

	if !info.Mode().IsRegular() {
		return nil, errors.NewCredentialError(ErrNotRegularFile, path)
	}

	content, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, errors.NewCredentialError(ErrNotReadable, path,
				fmt.Sprintf("chmod 600 %s", path))
		}
		return nil, errors.NewCredentialError(err, path)
	}

	value := strings.TrimSuffix(string(content), "\n")
	value = strings.TrimSuffix(value, "\r")

	if strings.TrimSpace(value) == "" {
		return nil, errors.NewCredentialError(ErrEmptyContent, path,
			fmt.Sprintf("write a single-line token to %s", path))
	}

	// More than one logical line usually means a whole key pair or a config
	// block was pasted where a single token belongs.
	if strings.ContainsAny(value, "\r\n") {
		return nil, errors.NewCredentialError(ErrMalformedMultiline, path,
			fmt.Sprintf("the file must contain exactly one line; inspect it with: wc -l %s", path))
	}

	return newSecret([]byte(strings.TrimSpace(value))), nil
}

// lstat prefers Lstat so symlinks are observed rather than followed. The
// second return reports whether a real lstat happened; in-memory
// filesystems fall back to Stat and cannot detect links.
func lstat(fs afero.Fs, path string) (os.FileInfo, bool, error) {
	if lfs, ok := fs.(afero.Lstater); ok {
		return lfs.LstatIfPossible(path)
	}
	info, err := fs.Stat(path)
	return info, false, err
}
