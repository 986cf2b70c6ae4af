package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sqlfn/internal/expr"
)

func TestFunctionsCommand_Text(t *testing.T) {
	out, err := execute(t, "functions", "do.")
	require.NoError(t, err)
	assert.Equal(t, "name  type\n"+
		"dom   DayOfMonth\n"+
		"dow   DayOfWeek\n"+
		"doy   DayOfYear\n", out)
}

func TestFunctionsCommand_JSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "functions", "day")
	require.NoError(t, err)

	var resp struct {
		Status string          `json:"status"`
		Data   FunctionsResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "day", resp.Data.Pattern)
	require.Len(t, resp.Data.Functions, 1)
	assert.Equal(t, "day", resp.Data.Functions[0].Name)
	assert.Equal(t, expr.KindDayOfMonth, resp.Data.Functions[0].Kind)
	assert.Empty(t, resp.Data.Functions[0].Aliases)
}

func TestFunctionsCommand_All(t *testing.T) {
	out, err := execute(t, "--format", "json", "functions")
	require.NoError(t, err)

	var resp struct {
		Data FunctionsResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	opts := &RootOptions{}
	reg, err := opts.Registry()
	require.NoError(t, err)
	assert.Len(t, resp.Data.Functions, reg.Len())
	assert.Equal(t, "avg", resp.Data.Functions[0].Name)
}

func TestFunctionsCommand_NoMatch(t *testing.T) {
	out, err := execute(t, "functions", "zzz")
	require.NoError(t, err)
	assert.Equal(t, "No functions match.\n", out)
}

func TestFunctionsCommand_BadPattern(t *testing.T) {
	out, err := execute(t, "functions", "(")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E303]")
}

func TestFunctionsCommand_WithConfig(t *testing.T) {
	path := writeFile(t, t.TempDir(), "registry.cue", `
aliases: { day_of_month: ["MDAY"] }
disabled: ["dom"]
`)

	out, err := execute(t, "--config", path, "functions", "day_of_month|mday|dom")
	require.Error(t, err, "disabling an alias disables its function")
	assert.Contains(t, out, "Error [E204]")

	path = writeFile(t, t.TempDir(), "registry.cue", `aliases: { day_of_month: ["MDAY"] }`)
	out, err = execute(t, "--config", path, "functions", "day_of_month|mday")
	require.NoError(t, err)
	assert.Equal(t, "name          type\n"+
		"day_of_month  DayOfMonth\n"+
		"mday          DayOfMonth\n", out)
}
