package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestElementIDJSON(t *testing.T) {
	b, err := json.Marshal(ElementHazardControl)
	require.NoError(t, err)
	require.JSONEq(t, `"hazard_control"`, string(b))

	var id ElementID
	require.NoError(t, json.Unmarshal([]byte(`"emergency_response"`), &id))
	require.Equal(t, ElementEmergencyResponse, id)

	require.Error(t, json.Unmarshal([]byte(`"housekeeping"`), &id))
	_, err = json.Marshal(ElementID(0))
	require.Error(t, err)
}

func TestElementScoresJSONPlacesByElement(t *testing.T) {
	var set ElementScores
	err := json.Unmarshal([]byte(`[
		{"elementId": "program_administration", "documentationScore": 70},
		{"elementId": "management_commitment", "interviewScore": 55, "notes": "minutes missing"}
	]`), &set)
	require.NoError(t, err)

	require.Equal(t, ElementManagementCommitment, set[0].Element)
	require.Equal(t, 55.0, *set[0].Interview)
	require.Equal(t, "minutes missing", set[0].Notes)
	require.Equal(t, 70.0, *set.Get(ElementProgramAdministration).Documentation)
	require.Nil(t, set.Get(ElementTraining).Documentation)
	require.Equal(t, "Qualifications, Orientation & Training", set.Get(ElementTraining).ElementName)

	out, err := json.Marshal(set)
	require.NoError(t, err)
	var raw []map[string]any
	require.NoError(t, json.Unmarshal(out, &raw))
	require.Len(t, raw, ElementCount)
	require.Equal(t, "management_commitment", raw[0]["elementId"])
}

func TestElementScoresJSONRejectsDuplicates(t *testing.T) {
	var set ElementScores
	err := json.Unmarshal([]byte(`[{"elementId":"inspections"},{"elementId":"inspections"}]`), &set)
	require.ErrorContains(t, err, "duplicate element inspections")
}

func TestParseAuditNumber(t *testing.T) {
	require.Equal(t, "COR-2026-007", FormatAuditNumber(2026, 7))
	require.Equal(t, "COR-2026-1234", FormatAuditNumber(2026, 1234))

	y, seq, err := ParseAuditNumber("COR-2026-042")
	require.NoError(t, err)
	require.Equal(t, 2026, y)
	require.Equal(t, 42, seq)

	_, _, err = ParseAuditNumber("AUD-17")
	require.Error(t, err)
}

func TestValidateReportsJSONNames(t *testing.T) {
	type input struct {
		Name  string  `json:"name" validate:"required"`
		Hours float64 `json:"trainingHours" validate:"gte=0"`
	}
	err := Validate(input{Hours: -1})
	require.True(t, IsPrecondition(err))
	require.Contains(t, err.Error(), "name failed required")
	require.Contains(t, err.Error(), "trainingHours failed gte=0")
	require.NoError(t, Validate(input{Name: "x"}))
}
