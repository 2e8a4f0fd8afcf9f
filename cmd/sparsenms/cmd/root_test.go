package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/MeKo-Tech/sparsenms/internal/detections"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	assert.NotNil(t, rootCmd)
	assert.Equal(t, "sparsenms", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestRootCommandHelp(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)

	rootCmd.SetArgs([]string{"--help"})
	err := rootCmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Non-Maximum Suppression")
	assert.Contains(t, output, "Available Commands:")
	assert.Contains(t, output, "Usage:")
}

func writeDetectionsFile(t *testing.T, set *detections.Set) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "detections.json")
	require.NoError(t, set.Save(path))
	return path
}

func TestSuppressCommand(t *testing.T) {
	path := writeDetectionsFile(t, &detections.Set{
		Boxes:  [][]float64{{0, 0, 10, 10}, {1, 1, 11, 11}, {50, 50, 60, 60}},
		Scores: []float64{0.9, 0.8, 0.7},
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"suppress", path})
	require.NoError(t, rootCmd.Execute())

	var keep []int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &keep))
	assert.Equal(t, []int{0, 2}, keep)
}

func TestSuppressCommandDetectionsFormat(t *testing.T) {
	path := writeDetectionsFile(t, &detections.Set{
		Boxes:  [][]float64{{0, 0, 2, 2}, {0, 0, 2, 2}},
		Scores: []float64{0.9, 0.5},
	})
	outPath := filepath.Join(t.TempDir(), "kept.json")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"suppress", path, "--format", "detections", "--output", outPath})
	require.NoError(t, rootCmd.Execute())

	kept, err := detections.Load(outPath)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0, 2, 2}}, kept.Boxes)
	assert.Equal(t, []float64{0.9}, kept.Scores)
}

func TestSuppressCommandNaive(t *testing.T) {
	path := writeDetectionsFile(t, &detections.Set{
		Boxes:  [][]float64{{0, 0, 1, 1}, {10, 10, 11, 11}},
		Scores: []float64{0.9, 0.8},
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"suppress", path, "--naive"})
	require.NoError(t, rootCmd.Execute())

	var keep []int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &keep))
	assert.Equal(t, []int{0, 1}, keep)
}

func TestSuppressCommandInvalidInput(t *testing.T) {
	path := writeDetectionsFile(t, &detections.Set{
		Boxes:  [][]float64{{2, 2, 1, 1}},
		Scores: []float64{0.9},
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"suppress", path})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid geometry")
}

func TestSuppressCommandMissingFile(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"suppress", filepath.Join(t.TempDir(), "missing.json")})
	require.Error(t, rootCmd.Execute())
}

func TestBenchCommand(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping bench command in short mode")
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"bench", "--boxes", "500", "--runs", "2"})
	require.NoError(t, rootCmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "sparse: mean")
	assert.Contains(t, output, "naive: mean")
	assert.Contains(t, output, "speedup:")
}

func TestCommandTreeWiring(t *testing.T) {
	names := map[string]bool{}
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}
	assert.True(t, names["suppress"])
	assert.True(t, names["bench"])
	assert.True(t, names["serve"])
}
