package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeadingPlainWriter(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Heading("Virtual Environment Manager")

	assert.Equal(t, "Virtual Environment Manager\n============================\n", buf.String())
}

func TestMessagesHaveNoEscapesOnBuffers(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)
	c.Success("created %s", "dev")
	c.Warn("careful")
	c.Error("failed: %v", "boom")
	c.Status(" OK ", "python3 %s", "3.12.1")

	assert.Equal(t, "created dev\ncareful\nfailed: boom\n  [ OK ] python3 3.12.1\n", buf.String())
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestPathPlain(t *testing.T) {
	c := New(&bytes.Buffer{})
	assert.Equal(t, "/tmp/envs", c.Path("/tmp/envs"))
}
