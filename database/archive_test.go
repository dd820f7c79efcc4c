package db

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressDecompressRoundTrip(t *testing.T) {
	dir := t.TempDir()

	content := bytes.Repeat([]byte("INSERT INTO Flight VALUES (1,'CDG','JFK');\n"), 200)
	input := filepath.Join(dir, "flight_database_dump.sql")
	require.NoError(t, os.WriteFile(input, content, 0644))

	archive := filepath.Join(dir, "flight_database_dump.zip")
	res := Compress(input, archive)
	require.True(t, res.Success, res.Message)

	outDir := filepath.Join(dir, "extracted")
	res = Decompress(archive, outDir)
	require.True(t, res.Success, res.Message)

	extracted, err := os.ReadFile(filepath.Join(outDir, "flight_database_dump.sql"))
	require.NoError(t, err)
	assert.Equal(t, content, extracted)
}

func TestCompressMissingInput(t *testing.T) {
	dir := t.TempDir()
	res := Compress(filepath.Join(dir, "absent.sql"), filepath.Join(dir, "out.zip"))
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "opening input file")
}

func TestDecompressCorruptArchive(t *testing.T) {
	dir := t.TempDir()
	bogus := filepath.Join(dir, "bogus.zip")
	require.NoError(t, os.WriteFile(bogus, []byte("not a zip archive"), 0644))

	res := Decompress(bogus, filepath.Join(dir, "out"))
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "opening archive")
}
