package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExitErrorMessage(t *testing.T) {
	err := NewExitError(ExitFailure, "something failed")
	assert.Equal(t, "something failed", err.Error())
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestWrapExitErrorUnwraps(t *testing.T) {
	cause := errors.New("boom")
	err := WrapExitError(ExitCommandError, "command blew up", cause)

	assert.Contains(t, err.Error(), "command blew up")
	assert.Contains(t, err.Error(), "boom")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGetExitCodeDefaultsToFailure(t *testing.T) {
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain error")))
}

func TestOutputFormatterJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: buf}

	payload := map[string]string{"status": "ok"}
	require.NoError(t, f.Write(payload, func(io.Writer) error {
		t.Fatal("text renderer called for json format")
		return nil
	}))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, payload, decoded)
}

func TestOutputFormatterYAML(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "yaml", Writer: buf}

	payload := map[string]string{"status": "ok"}
	require.NoError(t, f.Write(payload, func(io.Writer) error {
		t.Fatal("text renderer called for yaml format")
		return nil
	}))

	var decoded map[string]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, payload, decoded)
}

func TestOutputFormatterTextFallback(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "text", Writer: buf}

	require.NoError(t, f.Write(nil, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, "rendered as text")
		return err
	}))
	assert.Equal(t, "rendered as text\n", buf.String())
}
