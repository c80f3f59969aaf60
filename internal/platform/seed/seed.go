// Package seed loads employee records from a JSON file at startup. It stands in for
// the external provisioning process that owns the employee directory.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"hrdash/internal/domain/employees"
)

type Provisioner interface {
	Provision(ctx context.Context, employee employees.Employee) error
}

type File struct {
	Employees []employees.Employee `json:"employees"`
}

// Parse decodes a seed document. Unknown fields are rejected.
func Parse(r io.Reader) (File, error) {
	var f File
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return File{}, fmt.Errorf("decode seed: %w", err)
	}
	seen := make(map[int64]struct{}, len(f.Employees))
	for _, e := range f.Employees {
		if _, dup := seen[e.ID]; dup {
			return File{}, fmt.Errorf("decode seed: duplicate employee id %d", e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	return f, nil
}

// Apply provisions every employee in f and returns how many were written.
func Apply(ctx context.Context, p Provisioner, f File) (int, error) {
	for i, e := range f.Employees {
		if err := p.Provision(ctx, e); err != nil {
			return i, fmt.Errorf("seed employee %d: %w", e.ID, err)
		}
	}
	return len(f.Employees), nil
}

// LoadFile reads and applies the seed at path.
func LoadFile(ctx context.Context, p Provisioner, path string) (int, error) {
	fh, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open seed: %w", err)
	}
	defer fh.Close()

	f, err := Parse(fh)
	if err != nil {
		return 0, err
	}
	return Apply(ctx, p, f)
}
