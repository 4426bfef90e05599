package activation

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFamilyFor(t *testing.T) {
	assert.Equal(t, Windows, FamilyFor("windows"))
	assert.Equal(t, POSIX, FamilyFor("linux"))
	assert.Equal(t, POSIX, FamilyFor("darwin"))
	assert.Equal(t, POSIX, FamilyFor("freebsd"))
}

func TestForPOSIX(t *testing.T) {
	inst := For("/home/me/envs/dev", POSIX)
	assert.Equal(t, "source /home/me/envs/dev/bin/activate", inst.Activate)
	assert.Equal(t, "/home/me/envs/dev/bin/python3", inst.Interpreter)
}

func TestForWindowsUsesBackslashesOnAnyHost(t *testing.T) {
	inst := For(`C:\work\envs\dev`, Windows)
	assert.Equal(t, `C:\work\envs\dev\Scripts\activate`, inst.Activate)
	assert.Equal(t, `C:\work\envs\dev\Scripts\python.exe`, inst.Interpreter)
	assert.Equal(t, `C:\work\envs\dev\Scripts`, inst.ScriptsDir)
}

func TestManualCommand(t *testing.T) {
	assert.Equal(t, "python -m venv /tmp/envs/dev", ManualCommand("python", "/tmp/envs/dev"))
	assert.Equal(t, "python3 -m venv /tmp/envs/dev", ManualCommand("python3", "/tmp/envs/dev"))
}

func TestWriteBrief(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBrief(&buf, For("/e/dev", POSIX)))

	out := buf.String()
	assert.Contains(t, out, "source /e/dev/bin/activate\n")
	assert.Contains(t, out, "/e/dev/bin/python3\n")
	assert.Contains(t, out, "ready to use")
}

func TestWriteDetailedPOSIX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDetailed(&buf, For("/e/dev", POSIX)))

	out := buf.String()
	assert.Contains(t, out, "source /e/dev/bin/activate")
	assert.Contains(t, out, "   /e/dev/bin/python3")
	assert.NotContains(t, out, "Set-ExecutionPolicy")
}

func TestWriteDetailedWindows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDetailed(&buf, For(`C:\envs\dev`, Windows)))

	out := buf.String()
	assert.Contains(t, out, `cd C:\envs\dev\Scripts`)
	assert.Contains(t, out, `C:\envs\dev\Scripts\activate.bat`)
	assert.Contains(t, out, "Set-ExecutionPolicy -ExecutionPolicy Bypass -Scope Process")
	assert.Contains(t, out, `C:\envs\dev\Scripts\python.exe`)
	assert.NotContains(t, out, "source ")
}

func TestQuote(t *testing.T) {
	assert.Equal(t, "/e/dev", Quote("/e/dev"))
	assert.Equal(t, `"/home/Jane Doe/envs/dev"`, Quote("/home/Jane Doe/envs/dev"))
	assert.Equal(t, "\"a\tb\"", Quote("a\tb"))
}

func TestPathsWithSpacesAreQuoted(t *testing.T) {
	inst := For("/home/Jane Doe/envs/dev", POSIX)
	assert.Equal(t, `source "/home/Jane Doe/envs/dev/bin/activate"`, inst.Activate)
	assert.Equal(t, `python3 -m venv "/home/Jane Doe/envs/dev"`, ManualCommand("python3", "/home/Jane Doe/envs/dev"))

	var buf bytes.Buffer
	require.NoError(t, WriteDetailed(&buf, For(`C:\Users\Jane Doe\envs\dev`, Windows)))
	out := buf.String()
	assert.Contains(t, out, `cd "C:\Users\Jane Doe\envs\dev\Scripts"`)
	assert.Contains(t, out, `"C:\Users\Jane Doe\envs\dev\Scripts\activate.bat"`)
	assert.Contains(t, out, `   "C:\Users\Jane Doe\envs\dev\Scripts\python.exe"`)

	buf.Reset()
	require.NoError(t, WriteBrief(&buf, For("/home/Jane Doe/envs/dev", POSIX)))
	assert.Contains(t, buf.String(), "\"/home/Jane Doe/envs/dev/bin/python3\"\n")
}
