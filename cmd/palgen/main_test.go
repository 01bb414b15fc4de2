package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// stubExit replaces the exit and error stream hooks of the cli package,
// returning a pointer to the recorded exit code and the error buffer.
func stubExit() (*int, *bytes.Buffer, func()) {
	code := -1
	stderr := new(bytes.Buffer)

	oldExiter, oldErrWriter := cli.OsExiter, cli.ErrWriter
	cli.OsExiter = func(c int) { code = c }
	cli.ErrWriter = stderr

	return &code, stderr, func() {
		cli.OsExiter, cli.ErrWriter = oldExiter, oldErrWriter
	}
}

func TestGenerate(t *testing.T) {
	dir, err := ioutil.TempDir("", "palgen")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "nes.pal")
	require.NoError(t, ioutil.WriteFile(file, []byte{0x01, 0x02, 0x03}, 0644))

	var b bytes.Buffer
	app := newApp()
	app.Writer = &b

	require.NoError(t, app.Run([]string{"palgen", file}))
	assert.Equal(t, "{\n    {0x01, 0x02, 0x03},\n}\n", b.String())
}

func TestGenerateReservedNames(t *testing.T) {
	dir, err := ioutil.TempDir("", "palgen")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(cwd)

	for _, name := range []string{"h", "help", "quantize"} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, ioutil.WriteFile(name, []byte{0x01, 0x02, 0x03}, 0644))

			var b bytes.Buffer
			app := newApp()
			app.Writer = &b

			require.NoError(t, app.Run([]string{"palgen", name}))
			assert.Equal(t, "{\n    {0x01, 0x02, 0x03},\n}\n", b.String())
		})
	}
}

func TestGenerateMissingFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "palgen")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	code, stderr, restore := stubExit()
	defer restore()

	var b bytes.Buffer
	app := newApp()
	app.Writer = &b

	err = app.Run([]string{"palgen", filepath.Join(dir, "missing.pal")})
	require.Error(t, err)
	assert.Equal(t, 1, *code)
	assert.Zero(t, b.Len())
	assert.Contains(t, stderr.String(), "missing.pal")
	assert.Contains(t, stderr.String(), "no such file or directory")
}

func TestGenerateMissingArgument(t *testing.T) {
	code, stderr, restore := stubExit()
	defer restore()

	var b bytes.Buffer
	app := newApp()
	app.Writer = &b

	require.Error(t, app.Run([]string{"palgen"}))
	assert.Equal(t, 1, *code)
	assert.Zero(t, b.Len())
	assert.Contains(t, stderr.String(), "USAGE:")
	assert.Contains(t, stderr.String(), "missing FILE argument")
}
