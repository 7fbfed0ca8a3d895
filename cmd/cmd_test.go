package cmd

import (
	"context"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp moves the test into an empty directory so no stray
// .drill.yml influences config loading.
func chdirTemp(t *testing.T) {
	t.Helper()
	tempDir := t.TempDir()

	oldDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() {
		os.Chdir(oldDir)
		viper.Reset()
	})

	require.NoError(t, os.Chdir(tempDir))
	viper.Reset()
}

func testCommand(t *testing.T) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	return cmd
}

func TestRootCommandHasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"list", "run", "verify", "notes", "serve", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestRunCommandRequiresNameOrAll(t *testing.T) {
	chdirTemp(t)

	runAll = false
	err := runRun(testCommand(t), []string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--all")
}

func TestRunCommandUnknownDrill(t *testing.T) {
	chdirTemp(t)

	runAll = false
	err := runRun(testCommand(t), []string{"no-such-drill"})
	require.Error(t, err)
}

func TestVerifyCommandWholeCatalog(t *testing.T) {
	chdirTemp(t)

	err := runVerify(testCommand(t), []string{})
	require.NoError(t, err)
}

func TestListCommandFormats(t *testing.T) {
	for _, format := range []string{"table", "json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			chdirTemp(t)

			listFormat = format
			listTopic = ""
			err := runList(testCommand(t), []string{})
			require.NoError(t, err)
		})
	}
}

func TestListCommandRejectsBadFormat(t *testing.T) {
	chdirTemp(t)

	listFormat = "xml"
	listTopic = ""
	err := runList(testCommand(t), []string{})
	require.Error(t, err)
}

func TestNotesCommandList(t *testing.T) {
	chdirTemp(t)

	err := runNotes(testCommand(t), []string{})
	require.NoError(t, err)
}

func TestNotesCommandUnknownNote(t *testing.T) {
	chdirTemp(t)

	err := runNotes(testCommand(t), []string{"no-such-note"})
	require.Error(t, err)
}

func TestValidatePort(t *testing.T) {
	assert.NoError(t, ValidatePort("8080"))
	assert.NoError(t, ValidatePort("1"))
	assert.NoError(t, ValidatePort("65535"))
	assert.Error(t, ValidatePort("0"))
	assert.Error(t, ValidatePort("65536"))
	assert.Error(t, ValidatePort("not-a-port"))
}

func TestValidateFormat(t *testing.T) {
	assert.NoError(t, ValidateFormat("table"))
	assert.NoError(t, ValidateFormat("JSON"))
	assert.NoError(t, ValidateFormat("yaml"))
	assert.Error(t, ValidateFormat("xml"))
}
