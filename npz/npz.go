package npz

import (
	"archive/zip"
	"fmt"
	"os"
	"sort"
	"strings"
)

// ReadFile opens a .npz archive and decodes every member into a named
// Array. Member names have their ".npy" suffix stripped. Errors carry the
// archive path and offending member.
func ReadFile(path string) (map[string]Array, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("npz: opening %s: %w", path, err)
	}
	defer zr.Close()

	out := make(map[string]Array, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("npz: %s: member %s: %w", path, f.Name, err)
		}

		arr, err := ReadNPY(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("npz: %s: member %s: %w", path, f.Name, err)
		}

		out[strings.TrimSuffix(f.Name, ".npy")] = arr
	}

	return out, nil
}

// WriteFile writes arrays as a .npz archive at path, members in sorted
// name order (byte-stable output for identical inputs). Members are
// stored uncompressed, matching numpy's default savez.
func WriteFile(path string, arrays map[string]Array) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("npz: creating %s: %w", path, err)
	}

	zw := zip.NewWriter(f)

	names := make([]string, 0, len(arrays))
	for name := range arrays {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: name + ".npy", Method: zip.Store})
		if err != nil {
			f.Close()
			return fmt.Errorf("npz: %s: member %s: %w", path, name, err)
		}
		if err := WriteNPY(w, arrays[name]); err != nil {
			f.Close()
			return fmt.Errorf("npz: %s: member %s: %w", path, name, err)
		}
	}

	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("npz: finalizing %s: %w", path, err)
	}

	return f.Close()
}
