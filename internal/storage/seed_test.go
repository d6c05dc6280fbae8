package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/habito/internal/models"
)

const seedYAML = `
- nome: Exercício
  frequenciaSemanal: 5
  metaDiariaMinutos: 30
  dataInicio: "2024-01-01"
- nome: Leitura
  frequenciaSemanal: 7
  metaDiariaMinutos: 20
  dataInicio: "2024-03-10"
  ativo: false
`

func TestSeed(t *testing.T) {
	store, v := newTestStore()

	n, err := Seed(strings.NewReader(seedYAML), v, store)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	all := store.GetAllHabits()
	require.Len(t, all, 2)
	assert.Equal(t, "Exercício", all[0].Name)
	assert.True(t, all[0].Active)
	assert.Equal(t, "Leitura", all[1].Name)
	assert.False(t, all[1].Active)
}

func TestSeed_Empty(t *testing.T) {
	store, v := newTestStore()

	n, err := Seed(strings.NewReader(""), v, store)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestSeed_StopsAtInvalidEntry(t *testing.T) {
	store, v := newTestStore()
	input := seedYAML + `
- nome: Yoga
  frequenciaSemanal: 8
  metaDiariaMinutos: 15
  dataInicio: "2024-01-01"
`

	n, err := Seed(strings.NewReader(input), v, store)
	require.Error(t, err)
	assert.Equal(t, 2, n)
	assert.Contains(t, err.Error(), "entry 3")

	var fe models.FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.True(t, fe.Has("frequenciaSemanal"))
}

func TestSeed_RejectsUnknownFields(t *testing.T) {
	store, v := newTestStore()

	_, err := Seed(strings.NewReader("- nome: Yoga\n  cor: azul\n"), v, store)
	assert.Error(t, err)
	assert.Equal(t, 0, store.Count())
}

func TestSeedFromFile(t *testing.T) {
	store, v := newTestStore()
	path := filepath.Join(t.TempDir(), "habits.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0600))

	n, err := SeedFromFile(path, v, store)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = SeedFromFile(filepath.Join(t.TempDir(), "missing.yaml"), v, store)
	assert.Error(t, err)
}
