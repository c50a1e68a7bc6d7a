package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/varunisrani/thinkaiback-sub000/internal/config"
	"github.com/varunisrani/thinkaiback-sub000/pkg/core/model"
	"github.com/varunisrani/thinkaiback-sub000/pkg/core/services"
	"github.com/varunisrani/thinkaiback-sub000/pkg/db"
)

const productionYAML = `
title: Night Shift
scenes:
  - scene_number: "1"
    location: {name: KITCHEN, type: INT}
    time_of_day: DAY
    cast: [anna, ben]
  - scene_number: "2"
    location: {name: KITCHEN, type: INT}
    time_of_day: NIGHT
    cast: [anna]
  - scene_number: "3"
    location: {name: STREET, type: EXT}
    time_of_day: DAY
    cast: [ben]
    technical_cues: [crane]
people:
  - id: gaffer
    role: Crew
    scenes: ["3"]
`

func testApp(t *testing.T) *AppContext {
	t.Helper()
	path := filepath.Join(t.TempDir(), "production.yaml")
	require.NoError(t, os.WriteFile(path, []byte(productionYAML), 0644))

	cfg := config.Default()
	cfg.ProductionFile = path

	return &AppContext{
		Env:       "test",
		Cfg:       cfg,
		Logger:    zap.NewNop(),
		Ctx:       context.Background(),
		StartDate: "2026-03-06",
	}
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPlanCmd(t *testing.T) {
	out, err := run(t, PlanCmd(testApp(t)))
	require.NoError(t, err)

	assert.Contains(t, out, "Night Shift")
	assert.Contains(t, out, "Shoot Days:  2")
	assert.Contains(t, out, "Day 1 - Fri Mar 06 2026")
	assert.Contains(t, out, "Day 2 - Sat Mar 07 2026")
	assert.Contains(t, out, "INT. KITCHEN")
	assert.Contains(t, out, "Cast call: anna, ben")
}

func TestPlanCmd_JSON(t *testing.T) {
	out, err := run(t, PlanCmd(testApp(t)), "--json")
	require.NoError(t, err)

	var decoded struct {
		ID         string            `json:"id"`
		Stripboard []json.RawMessage `json:"stripboard"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.NotEmpty(t, decoded.ID)
	assert.Len(t, decoded.Stripboard, 2)
}

func TestPlanCmd_SaveWithoutDatabase(t *testing.T) {
	_, err := run(t, PlanCmd(testApp(t)), "--save")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "databaseURL is not configured")
}

func TestPlanCmd_ProductionArgument(t *testing.T) {
	app := testApp(t)
	path := app.Cfg.ProductionFile
	app.Cfg.ProductionFile = ""

	_, err := run(t, PlanCmd(app))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no production file")

	_, err = run(t, PlanCmd(app), path)
	assert.NoError(t, err)
}

func TestPlanCmd_MissingStart(t *testing.T) {
	app := testApp(t)
	app.StartDate = ""

	_, err := run(t, PlanCmd(app))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "calendar.start")
}

func TestViewCommands(t *testing.T) {
	tests := []struct {
		name     string
		cmd      func(*AppContext) *cobra.Command
		expected []string
	}{
		{"eighths", EighthsCmd, []string{"Complexity", "INT. KITCHEN", "EXT. STREET", "Total:"}},
		{"doop", DOOPCmd, []string{"Person", "anna", "SWF", "gaffer", "T"}},
		{"locations", LocationsCmd, []string{" 1. INT. KITCHEN", " 2. EXT. STREET", "Route cost: 1.50"}},
		{"departments", DepartmentsCmd, []string{"camera", "sound", "special_effects", "Equipment:"}},
		{"compliance", ComplianceCmd, []string{"call 06:00", "No compliance findings."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.cmd(testApp(t)))
			require.NoError(t, err)
			for _, expected := range tt.expected {
				assert.Contains(t, out, expected)
			}
		})
	}
}

func TestEngineOptions_InvalidStart(t *testing.T) {
	app := testApp(t)
	app.StartDate = "06/03/2026"

	_, err := app.EngineOptions()
	assert.Error(t, err)
}

func TestPrintFindings(t *testing.T) {
	var out bytes.Buffer
	printFindings(&out, []model.ComplianceViolation{
		{Kind: model.ViolationExcessiveConsecutiveDays, Subject: "anna", Day: 7, Severity: model.SeverityViolation, Detail: "7 consecutive work days (days 1-7), limit 6"},
	})

	assert.Contains(t, out.String(), "Compliance findings (1):")
	assert.Contains(t, out.String(), "excessive_consecutive_days")
	assert.Contains(t, out.String(), "limit 6")
}

func TestPrintStoredPlans(t *testing.T) {
	var out bytes.Buffer
	printStoredPlans(&out, nil)
	assert.Equal(t, "No saved plans.\n", out.String())

	out.Reset()
	printStoredPlans(&out, []db.Plan{{
		ID:            "1b4e28ba-2fa1-11d2-883f-0016d3cca427",
		Title:         "Night Shift",
		TotalDays:     2,
		SceneCount:    5,
		HasViolations: true,
		CalendarStart: time.Date(2026, time.March, 6, 0, 0, 0, 0, time.UTC),
		CreatedAt:     time.Date(2026, time.March, 1, 9, 30, 0, 0, time.UTC),
	}})
	line := out.String()
	assert.True(t, strings.HasPrefix(line, "1b4e28ba-2fa1-11d2-883f-0016d3cca427  Night Shift"))
	assert.Contains(t, line, "starts 2026-03-06")
	assert.Contains(t, line, "[violations]")
}

func TestPrintPlanDetail(t *testing.T) {
	var out bytes.Buffer
	printPlanDetail(&out, &services.PlanDetail{
		PlanID: "plan-1",
		Strips: []db.Strip{
			{Day: 1, Position: 1, ShootDate: time.Date(2026, time.March, 6, 0, 0, 0, 0, time.UTC), SceneNumber: "1", Location: "KITCHEN"},
			{Day: 1, Position: 2, ShootDate: time.Date(2026, time.March, 6, 0, 0, 0, 0, time.UTC), SceneNumber: "2", Location: "KITCHEN"},
			{Day: 2, Position: 1, ShootDate: time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC), SceneNumber: "3", Location: "STREET"},
		},
	})

	assert.Equal(t, 1, strings.Count(out.String(), "Day 1 - Fri Mar 06 2026"))
	assert.Contains(t, out.String(), "Day 2 - Mon Mar 09 2026")
	assert.Contains(t, out.String(), "No compliance findings.")
}
