package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tcg/grid"
	"github.com/katalvlaran/tcg/internal/config"
	"github.com/katalvlaran/tcg/notation"
)

const pauseLanguage = "loc=point orient=pause(duration=1) order=loc-orient"

// testCmd resets the package state and returns a command writing to buf.
func testCmd(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	logger = zap.NewNop()
	cfg = config.Default()
	s := int64(1)
	cfg.Seed = &s

	composeStart, composeFinish, composeGoal = "", "", ""
	composeLanguage, composeFormat = "", "text"
	composeLimit, composeCheck = 0, false
	routesCountOnly = false

	buf := new(bytes.Buffer)
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	return cmd, buf
}

func lines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

//----------------------------------------------------------------------------//
// operators / routes / language
//----------------------------------------------------------------------------//

func TestOperatorsCmd(t *testing.T) {
	cmd, buf := testCmd(t)
	require.NoError(t, runOperators(cmd, nil))
	assert.Equal(t, []string{
		"point",
		"pause duration=[1 2]",
		"wiggle width=[1 2] repetition=[1 2]",
	}, lines(buf))
}

func TestOperatorsCmd_LogsCatalogSize(t *testing.T) {
	cmd, _ := testCmd(t)
	core, logs := observer.New(zapcore.DebugLevel)
	logger = zap.New(core)

	require.NoError(t, runOperators(cmd, nil))
	entries := logs.FilterMessage("listing operators").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(3), entries[0].ContextMap()["operators"])
}

func TestOperatorsCmd_Restricted(t *testing.T) {
	cmd, buf := testCmd(t)
	cfg.Restrict = map[string]map[string][]int{"pause": {"duration": {2}}}
	require.NoError(t, runOperators(cmd, nil))
	assert.Contains(t, buf.String(), "pause duration=[2]\n")
}

func TestRoutesCmd(t *testing.T) {
	cmd, buf := testCmd(t)
	require.NoError(t, runRoutes(cmd, []string{"(0,0)@1", "(1,1)"}))
	out := lines(buf)
	require.Len(t, out, 2)
	for _, l := range out {
		assert.True(t, strings.HasPrefix(l, "(0,0)@1"), l)
		assert.True(t, strings.HasSuffix(l, "(1,1)@1"), l)
	}
}

func TestRoutesCmd_Count(t *testing.T) {
	cmd, buf := testCmd(t)
	routesCountOnly = true
	require.NoError(t, runRoutes(cmd, []string{"#7", "#3"}))
	assert.Equal(t, "6\n", buf.String())
}

func TestRoutesCmd_BadPosition(t *testing.T) {
	cmd, _ := testCmd(t)
	err := runRoutes(cmd, []string{"(0,0", "(1,1)"})
	assert.ErrorIs(t, err, notation.ErrSyntax)
}

func TestLanguageCmd_Reproducible(t *testing.T) {
	cmd, buf := testCmd(t)
	require.NoError(t, runLanguage(cmd, nil))
	first := buf.String()

	cmd, buf = testCmd(t)
	require.NoError(t, runLanguage(cmd, nil))
	assert.Equal(t, first, buf.String())

	spec, err := notation.ParseLanguage(strings.TrimSpace(first))
	require.NoError(t, err)
	assert.NotEqual(t, spec.Loc.Name, spec.Orient.Name)
}

//----------------------------------------------------------------------------//
// compose
//----------------------------------------------------------------------------//

func TestComposeCmd_Text(t *testing.T) {
	cmd, buf := testCmd(t)
	composeStart, composeFinish, composeGoal = "(0,0)@1", "(2,2)", "(1,1)@2"
	composeLanguage = pauseLanguage
	composeCheck = true

	require.NoError(t, runCompose(cmd, nil))
	out := lines(buf)
	require.Len(t, out, 2+4)
	assert.Equal(t, "language: loc=point orient=pause(duration=1) order=loc-orient", out[0])
	assert.Equal(t, "trajectories: 4", out[1])
	for _, l := range out[2:] {
		assert.Equal(t, 2, strings.Count(l, "(1,1)@2"), l)
	}
}

func TestComposeCmd_YAMLWithLimit(t *testing.T) {
	cmd, buf := testCmd(t)
	composeStart, composeFinish, composeGoal = "(0,0)@1", "(2,2)", "(1,1)@2"
	composeLanguage = pauseLanguage
	composeFormat = "yaml"
	composeLimit = 1

	require.NoError(t, runCompose(cmd, nil))
	var rep composeReport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &rep))
	assert.Equal(t, 4, rep.Count)
	assert.Equal(t, "(1,1)@2", rep.Goal)
	require.Len(t, rep.Trajectories, 1)
	traj := rep.Trajectories[0]
	assert.Equal(t, "(0,0)@1", traj[0])
	assert.Equal(t, "(2,2)@2", traj[len(traj)-1])
}

func TestComposeCmd_SampledFromConfig(t *testing.T) {
	cmd, buf := testCmd(t)
	require.NoError(t, runCompose(cmd, nil))
	out := lines(buf)
	require.GreaterOrEqual(t, len(out), 3)
	assert.True(t, strings.HasPrefix(out[0], "language: "))
}

func TestComposeCmd_Errors(t *testing.T) {
	t.Run("format", func(t *testing.T) {
		cmd, _ := testCmd(t)
		composeFormat = "xml"
		assert.Error(t, runCompose(cmd, nil))
	})
	t.Run("language syntax", func(t *testing.T) {
		cmd, _ := testCmd(t)
		composeLanguage = "loc=point orient="
		assert.ErrorIs(t, runCompose(cmd, nil), notation.ErrSyntax)
	})
	t.Run("goal", func(t *testing.T) {
		cmd, _ := testCmd(t)
		composeGoal = "#10"
		assert.Error(t, runCompose(cmd, nil))
	})
}

//----------------------------------------------------------------------------//
// demo / root
//----------------------------------------------------------------------------//

func TestDemoPositions(t *testing.T) {
	ps, err := demoPositions()
	require.NoError(t, err)
	require.Len(t, ps, 7)
	assert.Equal(t, grid.At(0, 0, 1), ps[0])
	assert.Equal(t, grid.At(1, 1, 1), ps[2])
	assert.Equal(t, grid.At(1, 1, 3), ps[4])
	assert.Equal(t, grid.At(2, 2, 3), ps[6])
}

func TestDemoCmd(t *testing.T) {
	cmd, buf := testCmd(t)
	require.NoError(t, runDemo(cmd, nil))
	out := buf.String()
	assert.Contains(t, out, "start (0,0)@1  goal (1,1)@1  finish (2,2)@3")
	assert.Contains(t, out, "trajectories: ")
}

func TestRootCmd_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tcg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
seed: 3
location_pool: [point]
orientation_pool: [pause]
logging:
  level: error
  format: json
`), 0o644))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--config", path, "language"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		configPath = ""
	})

	require.NoError(t, rootCmd.Execute())
	assert.True(t, strings.HasPrefix(buf.String(), "loc=point orient=pause(duration="), buf.String())
}
