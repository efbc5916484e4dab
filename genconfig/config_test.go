package genconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, "gen.toml", `
[[generation]]
type  = "CertType"
table = "tables/cert.txt"
out   = "gen/cert_type.go"

[[generation]]
type  = "Opcode"
table = "tables/opcode.txt"
repr  = "uint8"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Generations, 2)

	assert.Equal(t, "CertType", cfg.Generations[0].Type)
	assert.Equal(t, "tables/cert.txt", cfg.Generations[0].Table)
	assert.Equal(t, "gen/cert_type.go", cfg.Generations[0].Out)
	assert.Equal(t, "uint16", cfg.Generations[0].Repr, "repr should default")

	assert.Equal(t, "uint8", cfg.Generations[1].Repr)
	assert.Empty(t, cfg.Generations[1].Out, "out defaults to stdout")
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "gen.yaml", `
generations:
  - type: CertType
    table: tables/cert.txt
    doc: CertType is the certificate type of a CERT record.
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Generations, 1)
	assert.Equal(t, "CertType", cfg.Generations[0].Type)
	assert.Equal(t, "uint16", cfg.Generations[0].Repr)
	assert.Contains(t, cfg.Generations[0].Doc, "certificate type")
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeConfig(t, "gen.ini", "[generation]\n")
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoad_NoGenerations(t *testing.T) {
	path := writeConfig(t, "gen.toml", "")
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrNoGenerations)
}

func TestLoad_IncompleteGeneration(t *testing.T) {
	path := writeConfig(t, "gen.toml", `
[[generation]]
type = "CertType"
`)
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrIncomplete)

	path = writeConfig(t, "gen2.toml", `
[[generation]]
table = "tables/cert.txt"
`)
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	assert.ErrorIs(t, cfg.Validate(), ErrNoGenerations)

	cfg = &Config{Generations: []Generation{{Type: "CertType", Table: "t.txt"}}}
	assert.NoError(t, cfg.Validate())
}
