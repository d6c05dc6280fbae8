package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/habito/internal/logger"
	"github.com/julianstephens/habito/internal/models"
	"github.com/julianstephens/habito/internal/validation"
)

// SeedFromFile preloads habits from a YAML file. See Seed.
func SeedFromFile(path string, v *validation.Validator, store Provider) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed file: %w", err)
	}
	n, err := Seed(bytes.NewReader(data), v, store)
	if err != nil {
		return n, fmt.Errorf("seed %s: %w", path, err)
	}
	logger.Info("Seeded habits", "path", path, "count", n)
	return n, nil
}

// Seed decodes a YAML list of habit create payloads and adds each one to the
// store in file order. Entries go through the same validation as a form
// submission; the first invalid entry stops the load. It returns the number
// of habits added.
func Seed(r io.Reader, v *validation.Validator, store Provider) (int, error) {
	var inputs []models.CreateInput
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&inputs); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to parse seed: %w", err)
	}

	added := 0
	for i, in := range inputs {
		draft, err := v.ValidateCreate(in)
		if err != nil {
			return added, fmt.Errorf("entry %d: %w", i+1, err)
		}
		if _, err := store.AddHabit(draft); err != nil {
			return added, fmt.Errorf("entry %d: %w", i+1, err)
		}
		added++
	}
	return added, nil
}
