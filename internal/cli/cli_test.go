package cli

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AFCVentura/Bookstore/internal/config"
	"github.com/AFCVentura/Bookstore/internal/database"
)

func TestSeedCommand_ParseFlags(t *testing.T) {
	cmd := NewSeedCommand()
	require.NoError(t, cmd.ParseFlags(nil))
	assert.Equal(t, config.DefaultDatabasePath, cmd.DatabasePath)
	assert.False(t, cmd.Verbose)

	cmd = NewSeedCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--db", "/tmp/x.db", "-v"}))
	assert.Equal(t, "/tmp/x.db", cmd.DatabasePath)
	assert.True(t, cmd.Verbose)

	assert.Error(t, NewSeedCommand().ParseFlags([]string{"--unknown"}))
}

func TestHelpRequested(t *testing.T) {
	tests := []struct {
		name string
		cmd  interface{ ParseFlags([]string) error }
		args []string
		want bool
	}{
		{"seed short", NewSeedCommand(), []string{"-h"}, true},
		{"seed long", NewSeedCommand(), []string{"--help"}, true},
		{"audit-prune", NewAuditPruneCommand(), []string{"-h"}, true},
		{"unknown flag", NewSeedCommand(), []string{"--unknown"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.ParseFlags(tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.want, HelpRequested(err))
		})
	}
}

func TestSeedCommand_Run(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "seed.db")
	cmd := &SeedCommand{DatabasePath: dbPath}

	require.NoError(t, cmd.Run(context.Background()))
	// A second run finds data and leaves it alone.
	require.NoError(t, cmd.Run(context.Background()))

	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	empty, err := db.IsEmpty(context.Background())
	require.NoError(t, err)
	assert.False(t, empty)
}

func TestAuditPruneCommand_ParseFlags(t *testing.T) {
	cmd := NewAuditPruneCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--older-than", "48h"}))
	assert.Equal(t, 48*time.Hour, cmd.OlderThan)

	assert.Error(t, NewAuditPruneCommand().ParseFlags([]string{"--older-than", "0s"}))
}

func TestAuditPruneCommand_Run(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "audit.db")
	require.NoError(t, (&SeedCommand{DatabasePath: dbPath}).Run(context.Background()))

	cmd := &AuditPruneCommand{DatabasePath: dbPath, OlderThan: time.Hour}
	assert.NoError(t, cmd.Run(context.Background()))
}
