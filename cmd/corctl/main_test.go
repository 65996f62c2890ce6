package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// run executes corctl with args, feeding stdin, and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func TestScoreFromStdin(t *testing.T) {
	out, err := run(t, `[{"elementId":"management_commitment","documentationScore":80,"interviewScore":60}]`, "score", "-")
	require.NoError(t, err)

	var res struct {
		OverallScore      *float64 `json:"overallScore"`
		AllElementsPassed bool     `json:"allElementsPassed"`
		Outcome           string   `json:"outcome"`
		ElementScores     []struct {
			ElementID  string `json:"elementId"`
			TotalScore *int   `json:"totalScore"`
		} `json:"elementScores"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Equal(t, 70.0, *res.OverallScore)
	require.True(t, res.AllElementsPassed)
	require.Equal(t, "failed", res.Outcome)
	require.Len(t, res.ElementScores, 8)
	require.Equal(t, 70, *res.ElementScores[0].TotalScore)
	require.Nil(t, res.ElementScores[1].TotalScore)
}

func TestScoreFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"elementId":"inspections","observationScore":120}]`), 0o600))

	_, err := run(t, "", "score", path)
	var ee *exitErr
	require.True(t, errors.As(err, &ee))
	require.Equal(t, 3, ee.code, "out-of-range method scores are rejected")

	_, err = run(t, "", "score", filepath.Join(t.TempDir(), "missing.json"))
	require.True(t, errors.As(err, &ee))
	require.Equal(t, 3, ee.code)
}

func TestScoreRejectsUnknownElement(t *testing.T) {
	_, err := run(t, `[{"elementId":"housekeeping","documentationScore":90}]`, "score", "-")
	var ee *exitErr
	require.True(t, errors.As(err, &ee))
	require.Contains(t, ee.msg, "unknown element")
}

func TestElements(t *testing.T) {
	out, err := run(t, "", "elements")
	require.NoError(t, err)
	var list []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list, 8)
	require.Equal(t, "program_administration", list[7]["id"])
}

func TestCycleAgainstMemoryStore(t *testing.T) {
	t.Setenv("STORE", "memory")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("LOG_LEVEL", "error")

	out, err := run(t, "", "cycle", "--org", "acme", "--cor-type", "RTW")
	require.NoError(t, err)
	var st map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	require.Equal(t, "certification", st["nextAuditType"])
	require.Equal(t, "RTW", st["corType"])

	_, err = run(t, "", "cycle", "--org", "acme", "--cor-type", "SECOR")
	var ee *exitErr
	require.True(t, errors.As(err, &ee))
	require.Equal(t, 5, ee.code)

	_, err = run(t, "", "cycle")
	require.Error(t, err, "--org is required")
}

func TestMigrateNeedsPostgres(t *testing.T) {
	t.Setenv("STORE", "memory")
	_, err := run(t, "", "migrate", "up")
	var ee *exitErr
	require.True(t, errors.As(err, &ee))
	require.Equal(t, 3, ee.code)

	_, err = run(t, "", "migrate", "sideways")
	require.Error(t, err)
}
