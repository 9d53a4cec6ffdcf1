// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package prompt

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReturnsAnswer(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	p := New(strings.NewReader("demo\n"), &out)
	got, err := p.Line("VM name", "ubuntu")
	require.NoError(t, err)
	assert.Equal(t, "demo", got)
	assert.Contains(t, out.String(), "VM name [ubuntu]: ")
}

func TestLineEmptyUsesDefault(t *testing.T) {
	t.Parallel()
	p := New(strings.NewReader("\n"), &bytes.Buffer{})
	got, err := p.Line("VM name", "ubuntu")
	require.NoError(t, err)
	assert.Equal(t, "ubuntu", got)
}

func TestLineRepeatsWithoutDefault(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	p := New(strings.NewReader("\n\ndemo\n"), &out)
	got, err := p.Line("VM name", "")
	require.NoError(t, err)
	assert.Equal(t, "demo", got)
	// Asked three times.
	assert.Equal(t, 3, strings.Count(out.String(), "VM name: "))
}

func TestLineEOF(t *testing.T) {
	t.Parallel()
	p := New(strings.NewReader(""), &bytes.Buffer{})
	_, err := p.Line("VM name", "")
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestSelect(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	p := New(strings.NewReader("2\n"), &out)
	idx, err := p.Select("Subscription", []string{"Dev", "Prod"})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Contains(t, out.String(), "1) Dev")
	assert.Contains(t, out.String(), "2) Prod")
}

func TestSelectRetriesOnInvalid(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	p := New(strings.NewReader("x\n9\n1\n"), &out)
	idx, err := p.Select("Subscription", []string{"Dev", "Prod"})
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 2, strings.Count(out.String(), "please enter a number"))
}

func TestSelectNoOptions(t *testing.T) {
	t.Parallel()
	p := New(strings.NewReader(""), &bytes.Buffer{})
	_, err := p.Select("Subscription", nil)
	assert.Error(t, err)
}

func TestPassword(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	p := New(strings.NewReader("s3cret\ns3cret\n"), &out)
	got, err := p.Password("Admin password")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)
	// The answer must never be echoed back.
	assert.NotContains(t, out.String(), "s3cret")
}

// Not parallel: patches the package-level terminal hooks.
func TestPasswordTerminal(t *testing.T) {
	f, err := os.Open(os.DevNull)
	require.NoError(t, err)
	defer f.Close()

	origIsTerminal, origReadPassword := isTerminal, readPassword
	defer func() { isTerminal, readPassword = origIsTerminal, origReadPassword }()
	isTerminal = func(int) bool { return true }
	answers := []string{"one", "two", "s3cret", "s3cret"}
	readPassword = func(int) ([]byte, error) {
		next := answers[0]
		answers = answers[1:]
		return []byte(next), nil
	}

	var out bytes.Buffer
	p := New(f, &out)
	got, err := p.Password("Admin password")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)
	assert.Empty(t, answers)
	assert.Contains(t, out.String(), "passwords do not match")
	// Nothing typed on a terminal is ever echoed.
	assert.NotContains(t, out.String(), "s3cret")
	assert.NotContains(t, out.String(), "one")
}

func TestPasswordMismatchRetries(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	p := New(strings.NewReader("one\ntwo\ns3cret\ns3cret\n"), &out)
	got, err := p.Password("Admin password")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)
	assert.Contains(t, out.String(), "passwords do not match")
}

func TestPasswordEmptyRetries(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	p := New(strings.NewReader("\ns3cret\ns3cret\n"), &out)
	got, err := p.Password("Admin password")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)
	assert.Contains(t, out.String(), "must not be empty")
}
