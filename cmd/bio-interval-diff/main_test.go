package main

import (
	"bytes"
	"context"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/intervaldiff/encoding/intervallist"
	"github.com/grailbio/intervaldiff/interval"
	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompt(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"10-100\n20-30\n", "10-19, 31-100"},
		{"50-5000, 10-100\n\n", "10-5000"},
		{"10-100, 200-300\n95-205\n", "10-94, 206-300"},
		{"10-100, 200-300, 400-500\n95-205, 410-420\n", "10-94, 206-300, 400-409, 421-500"},
		{"\n20-30, 40-31\n", "(none)"},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		require.NoError(t, prompt(strings.NewReader(tt.input), &out), tt.input)
		want := includePrompt + "\n" + excludePrompt + "\nOutput:\n" + tt.want + "\n"
		expect.EQ(t, out.String(), want, "input %q", tt.input)
	}
}

func TestPromptReenter(t *testing.T) {
	var out bytes.Buffer
	in := "10-100, x\n10-100\n1-2-3\n20-30\n"
	require.NoError(t, prompt(strings.NewReader(in), &out))
	want := includePrompt + "\n" +
		"unable to parse interval: x\n" + reenterPrompt + "\n" +
		excludePrompt + "\n" +
		"unable to parse interval: 1-2-3\n" + reenterPrompt + "\n" +
		"Output:\n10-19, 31-100\n"
	expect.EQ(t, out.String(), want)
}

func TestPromptEOF(t *testing.T) {
	var out bytes.Buffer
	err := prompt(strings.NewReader("10-100\nbogus\n"), &out)
	require.Error(t, err)
	expect.True(t, errors.Is(errors.Invalid, err), "got %v", err)
}

func TestDiffFiles(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	ctx := context.Background()

	includePath := filepath.Join(tempDir, "include.txt")
	excludePath := filepath.Join(tempDir, "exclude.txt.gz")
	require.NoError(t, ioutil.WriteFile(includePath, []byte("# include\n10-100, 200-300\n400-500\n"), 0644))
	require.NoError(t, intervallist.WriteFile(ctx, excludePath, intervallist.Text,
		[]interval.Interval{{Start: 95, End: 205}, {Start: 410, End: 420}}))

	var stdout bytes.Buffer
	require.NoError(t, diffFiles(ctx, filesOpts{
		includePath: includePath,
		excludePath: excludePath,
		format:      "text",
		checksum:    true,
	}, &stdout))
	expect.EQ(t, stdout.String(), "10-94, 206-300, 400-409, 421-500\n")

	stdout.Reset()
	require.NoError(t, diffFiles(ctx, filesOpts{includePath: includePath, format: "tsv"}, &stdout))
	expect.EQ(t, stdout.String(), "START\tEND\n10\t100\n200\t300\n400\t500\n")

	outputPath := filepath.Join(tempDir, "out.tsv")
	stdout.Reset()
	require.NoError(t, diffFiles(ctx, filesOpts{
		includePath: includePath,
		excludePath: excludePath,
		outputPath:  outputPath,
		format:      "tsv",
	}, &stdout))
	expect.EQ(t, stdout.Len(), 0)
	got, err := ioutil.ReadFile(outputPath)
	require.NoError(t, err)
	expect.EQ(t, string(got), "START\tEND\n10\t94\n206\t300\n400\t409\n421\t500\n")
}

func TestDiffFilesErrors(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	ctx := context.Background()
	includePath := filepath.Join(tempDir, "include.txt")
	require.NoError(t, ioutil.WriteFile(includePath, []byte("10-100\n"), 0644))
	badPath := filepath.Join(tempDir, "bad.txt")
	require.NoError(t, ioutil.WriteFile(badPath, []byte("10-100\n1-\n"), 0644))

	var stdout bytes.Buffer
	assert.Error(t, diffFiles(ctx, filesOpts{format: "text"}, &stdout))
	assert.Error(t, diffFiles(ctx, filesOpts{includePath: includePath, format: "bed"}, &stdout))
	assert.Error(t, diffFiles(ctx, filesOpts{includePath: includePath, excludePath: badPath}, &stdout))
	assert.Error(t, diffFiles(ctx, filesOpts{includePath: filepath.Join(tempDir, "nope.txt")}, &stdout))
	expect.EQ(t, stdout.Len(), 0)
}
