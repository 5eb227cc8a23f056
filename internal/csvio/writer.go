package csvio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// writeQuotedRow writes one row with every field quoted, matching the
// format emitted by the upstream exporter. encoding/csv only quotes fields
// that need it, so the escaping is done by hand here.
func writeQuotedRow(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	_, err := fmt.Fprintf(w, "%s\r\n", strings.Join(quoted, ","))
	return err
}

// WriteFile writes a header row and data rows to path, all fields quoted.
func WriteFile(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := writeQuotedRow(f, header); err != nil {
		return fmt.Errorf("cannot write header to '%s': %w", path, err)
	}
	for _, row := range rows {
		if err := writeQuotedRow(f, row); err != nil {
			return fmt.Errorf("cannot write row to '%s': %w", path, err)
		}
	}
	return nil
}

// WriteLines writes plain text lines to path, one per line.
func WriteLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	for _, line := range lines {
		if _, err := fmt.Fprintln(f, line); err != nil {
			return fmt.Errorf("cannot write to '%s': %w", path, err)
		}
	}
	return nil
}

// WriteSnapshotPair writes the file under dir/stamp/name, then copies it to
// dir/name. The timestamped write gives an append-only history; the copy is
// the stable "current" pointer. copied reports the current-pointer path.
func WriteSnapshotPair(dir, stamp, name string, header []string, rows [][]string) (snapshot, copied string, err error) {
	snapDir := filepath.Join(dir, stamp)
	if err := os.MkdirAll(snapDir, 0o755); err != nil {
		return "", "", fmt.Errorf("cannot create snapshot directory '%s': %w", snapDir, err)
	}

	snapshot = filepath.Join(snapDir, name)
	if err := WriteFile(snapshot, header, rows); err != nil {
		return "", "", err
	}

	copied = filepath.Join(dir, name)
	if err := copyFile(snapshot, copied); err != nil {
		return "", "", err
	}
	return snapshot, copied, nil
}

// copyFile duplicates src to dst, overwriting any existing file.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("cannot copy '%s' to '%s': %w", src, dst, err)
	}
	return nil
}
