package support

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/MeKo-Tech/sparsenms/internal/detections"
	"github.com/cucumber/godog"
)

// aDetectionsFileWith writes a detection set described by a table of
// box coordinates and scores to a temp file for the scenario.
func (testCtx *TestContext) aDetectionsFileWith(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return errors.New("detections table needs a header row and at least one data row")
	}

	header := table.Rows[0]
	colIndex := make(map[string]int, len(header.Cells))
	for i, cell := range header.Cells {
		colIndex[cell.Value] = i
	}
	for _, col := range []string{"min_x", "min_y", "max_x", "max_y", "score"} {
		if _, ok := colIndex[col]; !ok {
			return fmt.Errorf("detections table is missing column %q", col)
		}
	}

	set := &detections.Set{}
	for _, row := range table.Rows[1:] {
		values := make(map[string]float64, len(colIndex))
		for name, idx := range colIndex {
			v, err := strconv.ParseFloat(row.Cells[idx].Value, 64)
			if err != nil {
				return fmt.Errorf("invalid value %q in column %q: %w", row.Cells[idx].Value, name, err)
			}
			values[name] = v
		}
		set.Boxes = append(set.Boxes, []float64{
			values["min_x"], values["min_y"], values["max_x"], values["max_y"],
		})
		set.Scores = append(set.Scores, values["score"])
	}

	path := testCtx.GetTempFile(".json")
	if err := set.Save(path); err != nil {
		return fmt.Errorf("failed to write detections file: %w", err)
	}
	testCtx.DetectionsFile = path

	return nil
}

// iRunCommand executes a CLI command and captures its output.
func (testCtx *TestContext) iRunCommand(command string) error {
	command = testCtx.substituteCommandVariables(command)

	testCtx.LastCommand = command
	testCtx.LastStartTime = time.Now()

	parts := strings.Fields(command)
	if len(parts) == 0 {
		return errors.New("empty command")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, parts[0], parts[1:]...)
	cmd.Dir = testCtx.WorkingDir
	cmd.Env = append(os.Environ(), testCtx.EnvVars...)

	// Capture both stdout and stderr
	output, err := cmd.CombinedOutput()
	testCtx.LastOutput = string(output)
	testCtx.LastError = err
	testCtx.LastDuration = time.Since(testCtx.LastStartTime)

	if err != nil {
		exitError := &exec.ExitError{}
		if errors.As(err, &exitError) {
			testCtx.LastExitCode = exitError.ExitCode()
		} else {
			testCtx.LastExitCode = -1
		}
	} else {
		testCtx.LastExitCode = 0
	}

	return nil
}

// theCommandShouldSucceed verifies the last command exited cleanly.
func (testCtx *TestContext) theCommandShouldSucceed() error {
	if testCtx.LastExitCode != 0 {
		return fmt.Errorf("command failed with exit code %d: %w\nOutput: %s",
			testCtx.LastExitCode, testCtx.LastError, testCtx.LastOutput)
	}
	return nil
}

// theCommandShouldFail verifies the last command exited with an error.
func (testCtx *TestContext) theCommandShouldFail() error {
	if testCtx.LastExitCode == 0 {
		return fmt.Errorf("command succeeded when it should have failed\nOutput: %s", testCtx.LastOutput)
	}
	return nil
}

// theOutputShouldContain verifies the output contains specific text.
func (testCtx *TestContext) theOutputShouldContain(expectedText string) error {
	if !strings.Contains(testCtx.LastOutput, expectedText) {
		return fmt.Errorf("output does not contain '%s'\nActual output: %s", expectedText, testCtx.LastOutput)
	}
	return nil
}

// keptIndices extracts the keep list from command output. Log lines and
// the result line are interleaved, so scan for the line holding an int array.
func (testCtx *TestContext) keptIndices() ([]int, error) {
	for _, line := range strings.Split(testCtx.LastOutput, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "[") {
			continue
		}
		var indices []int
		if err := json.Unmarshal([]byte(line), &indices); err == nil {
			return indices, nil
		}
	}
	return nil, fmt.Errorf("no keep list found in output: %s", testCtx.LastOutput)
}

// theKeptIndicesShouldBe verifies the keep list printed by the command.
func (testCtx *TestContext) theKeptIndicesShouldBe(expected string) error {
	var want []int
	if err := json.Unmarshal([]byte(expected), &want); err != nil {
		return fmt.Errorf("invalid expected keep list %q: %w", expected, err)
	}

	got, err := testCtx.keptIndices()
	if err != nil {
		return err
	}

	if len(got) != len(want) {
		return fmt.Errorf("expected keep list %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("expected keep list %v, got %v", want, got)
		}
	}
	return nil
}

// theErrorShouldMention verifies the failure output mentions specific text.
func (testCtx *TestContext) theErrorShouldMention(errorText string) error {
	if testCtx.LastError == nil && testCtx.LastExitCode == 0 {
		return fmt.Errorf("no error occurred, but expected error containing '%s'", errorText)
	}

	fullErrorText := testCtx.LastOutput
	if testCtx.LastError != nil {
		fullErrorText += " " + testCtx.LastError.Error()
	}

	if !strings.Contains(strings.ToLower(fullErrorText), strings.ToLower(errorText)) {
		return fmt.Errorf("error does not contain '%s'\nActual error: %s", errorText, fullErrorText)
	}

	return nil
}

// theFileShouldExist verifies a file was created.
func (testCtx *TestContext) theFileShouldExist(filename string) error {
	filename = testCtx.substituteCommandVariables(filename)
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", filename)
	}
	return nil
}

// theFileShouldHoldDetections verifies an output file parses as a
// detection set with the given number of boxes.
func (testCtx *TestContext) theFileShouldHoldDetections(filename string, count int) error {
	filename = testCtx.substituteCommandVariables(filename)
	set, err := detections.Load(filename)
	if err != nil {
		return fmt.Errorf("failed to load detections from %s: %w", filename, err)
	}
	if set.Len() != count {
		return fmt.Errorf("expected %d detections in %s, got %d", count, filename, set.Len())
	}
	return nil
}

// RegisterCommonSteps registers the shared step definitions.
func (testCtx *TestContext) RegisterCommonSteps(sc *godog.ScenarioContext) {
	sc.Step(`^a detections file with:$`, testCtx.aDetectionsFileWith)
	sc.Step(`^I run "([^"]*)"$`, testCtx.iRunCommand)
	sc.Step(`^the command should succeed$`, testCtx.theCommandShouldSucceed)
	sc.Step(`^the command should fail$`, testCtx.theCommandShouldFail)
	sc.Step(`^the output should contain "([^"]*)"$`, testCtx.theOutputShouldContain)
	sc.Step(`^the kept indices should be (\[[^\]]*\])$`, testCtx.theKeptIndicesShouldBe)
	sc.Step(`^the error should mention "([^"]*)"$`, testCtx.theErrorShouldMention)
	sc.Step(`^the file "([^"]*)" should exist$`, testCtx.theFileShouldExist)
	sc.Step(`^the file "([^"]*)" should hold (\d+) detections$`, testCtx.theFileShouldHoldDetections)
}
