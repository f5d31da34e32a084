package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestLinesUTF8Passthrough(t *testing.T) {
	lines := New().Lines([]byte("|0000|017|\n|C100|0|"))

	assert.Equal(t, 2, len(lines))
	assert.Equal(t, "|0000|017|", lines[0])
}

func TestLinesDecodesLatin1(t *testing.T) {
	// "INDUSTRIALIZAÇÃO" in ISO8859-1: Ç is 0xC7, Ã is 0xC3. The bare bytes
	// are not valid UTF-8, so the sniffing path decodes them.
	raw := []byte("|0200|ITEM01|INDUSTRIALIZA\xc7\xc3O|\n")

	lines := New().Lines(raw)

	assert.Equal(t, "|0200|ITEM01|INDUSTRIALIZAÇÃO|", lines[0])
}

func TestLinesForceLatin1(t *testing.T) {
	// "é" encoded as valid UTF-8 (0xC3 0xA9) reads as "Ã©" under Latin-1.
	raw := []byte("caf\xc3\xa9")

	lines := New(WithForceLatin1()).Lines(raw)

	assert.Equal(t, "cafÃ©", lines[0])
}

func TestLinesWindowsLineEndings(t *testing.T) {
	lines := New().Lines([]byte("|0000|017|\r\n|C100|0|\r\n"))

	assert.Equal(t, 3, len(lines))
	assert.Equal(t, "|0000|017|", lines[0])
	assert.Equal(t, "|C100|0|", lines[1])
	assert.Equal(t, "", lines[2])
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.txt")
	assert.NoError(t, os.WriteFile(path, []byte("|0000|017|\n|C100|0|"), 0600))

	lines, err := New().Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(lines))

	_, err = New().Load(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}
