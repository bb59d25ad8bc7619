package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Help(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), []string{"help"}, &out))
	assert.Contains(t, out.String(), "cleanup-test-schemas")
}

func TestRun_UnknownCommand(t *testing.T) {
	var out bytes.Buffer

	err := run(context.Background(), []string{"frobnicate"}, &out)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "frobnicate"`)
	assert.Contains(t, out.String(), "Usage: forum")
}

func TestRun_BadFlag(t *testing.T) {
	var out bytes.Buffer

	err := run(context.Background(), []string{"migrate", "-nope"}, &out)

	assert.Error(t, err)
}
