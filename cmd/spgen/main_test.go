package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gospverify/spgraph/ioformat"
)

func TestRun_ValidArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"spgen", "2", "3", "2", "4", "0", "7"}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Empty(t, stderr.String())

	g, err := ioformat.ReadGraph(&stdout)
	assert.NoError(t, err)
	assert.Equal(t, 2*3+2*4, g.N())
}

func TestRun_WrongArgCount(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"spgen", "1", "2"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
}

func TestRun_InvalidInteger(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"spgen", "x", "3", "1", "3", "0"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
}

func TestRun_BadGeneratorParams(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"spgen", "0", "3", "0", "3", "0"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
}
