package credential

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// Check is the outcome of one self-test probe
type Check struct {
	Name    string
	OK      bool
	Skipped bool
	Detail  string
}

// SelfTest confirms the validation chain rejects the classic local-secret
// mistakes, using a disposable directory and throwaway values. It never
// touches a real secret.
func SelfTest(fs afero.Fs) ([]Check, error) {
	dir, err := afero.TempDir(fs, "", "credential-selftest")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer fs.RemoveAll(dir)

	checks := []Check{
		expectFailure(fs, dir, "missing file is rejected", "absent", ErrNotFound, nil),
		expectFailure(fs, dir, "empty file is rejected", "empty", ErrEmptyContent, func(path string) error {
			return afero.WriteFile(fs, path, []byte("  \n"), 0o600)
		}),
		symlinkCheck(fs, dir),
	}

	return checks, nil
}

func expectFailure(fs afero.Fs, dir, name, file string, want error, setup func(path string) error) Check {
	if setup != nil {
		if err := setup(dir + "/" + file); err != nil {
			return Check{Name: name, Detail: "setup failed: " + err.Error()}
		}
	}

	_, err := Load(fs, dir, file)
	switch {
	case err == nil:
		return Check{Name: name, Detail: "defect was accepted"}
	case stderrors.Is(err, want):
		return Check{Name: name, OK: true}
	default:
		return Check{Name: name, Detail: "rejected for the wrong reason: " + categoryOf(err)}
	}
}

func symlinkCheck(fs afero.Fs, dir string) Check {
	const name = "symlink is rejected"

	linker, ok := fs.(afero.Linker)
	if !ok {
		return Check{Name: name, Skipped: true, Detail: "filesystem does not support symlinks"}
	}

	target := dir + "/target"
	if err := afero.WriteFile(fs, target, []byte("placeholder\n"), 0o600); err != nil {
		return Check{Name: name, Detail: "setup failed: " + err.Error()}
	}
	if err := linker.SymlinkIfPossible(target, dir+"/linked"); err != nil {
		return Check{Name: name, Skipped: true, Detail: "filesystem does not support symlinks"}
	}

	return expectFailure(fs, dir, name, "linked", ErrUnsafeLink, nil)
}

// categoryOf names the failure without repeating the error text, which
// embeds the resolved path but could in principle grow other detail.
func categoryOf(err error) string {
	for _, sentinel := range []error{
		ErrInvalidName, ErrNotFound, ErrUnsafeLink, ErrNotRegularFile,
		ErrNotReadable, ErrEmptyContent, ErrMalformedMultiline,
	} {
		if stderrors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "unrecognized failure"
}

// Report renders self-test results one line per check
func Report(checks []Check) string {
	var b strings.Builder
	for _, c := range checks {
		switch {
		case c.Skipped:
			fmt.Fprintf(&b, "skip %s (%s)\n", c.Name, c.Detail)
		case c.OK:
			fmt.Fprintf(&b, "pass %s\n", c.Name)
		default:
			fmt.Fprintf(&b, "fail %s: %s\n", c.Name, c.Detail)
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}
