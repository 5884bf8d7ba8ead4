package passbook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultFile is the default location of the accounts document, inherited
// from the original implementation.
const DefaultFile = "accounts.json"

// Load reads the accounts document at path. A missing file is not an
// error: it yields an empty ledger, the state of a fresh installation. Any
// other failure (unreadable file, corrupt document) is returned and is
// fatal at startup, since there is no safe way to proceed.
func Load(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open accounts file %q: %w", path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not load accounts file %q: %w", path, err)
	}
	return ledger, nil
}

// Save writes the full ledger to path, replacing prior content. The
// document is written to a temporary file in the same directory, synced,
// and renamed over the target, so a crash mid-write leaves the previous
// document intact rather than a torn one.
func Save(path string, ledger *Ledger) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, ".accounts-*.json")
	if err != nil {
		return fmt.Errorf("could not create temporary accounts file in %q: %w", dir, err)
	}
	tmpName := tmp.Name()

	if err := EncodeLedger(tmp, ledger); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("could not sync accounts file %q: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("could not close accounts file %q: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("could not replace accounts file %q: %w", path, err)
	}
	return nil
}
