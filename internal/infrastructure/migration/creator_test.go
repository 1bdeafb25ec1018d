package migration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMigration(t *testing.T) {
	t.Run("creates a numbered up and down pair", func(t *testing.T) {
		dir := t.TempDir()

		mf, err := CreateMigration(dir, "Add Partner Payments", "ledger between companies")
		require.NoError(t, err)

		assert.Equal(t, "000001", mf.Version)
		assert.Equal(t, filepath.Join(dir, "000001_add_partner_payments.up.sql"), mf.UpPath)
		assert.Equal(t, filepath.Join(dir, "000001_add_partner_payments.down.sql"), mf.DownPath)

		up, err := os.ReadFile(mf.UpPath)
		require.NoError(t, err)
		assert.Contains(t, string(up), "Add Partner Payments")
		assert.Contains(t, string(up), "ledger between companies")
		assert.Contains(t, string(up), "tenant_id")

		down, err := os.ReadFile(mf.DownPath)
		require.NoError(t, err)
		assert.Contains(t, string(down), "Revert Add Partner Payments")
	})

	t.Run("continues the sequence from existing pairs", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"000001_init_schema.up.sql", "000001_init_schema.down.sql", "000007_add_indexes.up.sql", "000007_add_indexes.down.sql"} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("-- sql"), 0644))
		}

		mf, err := CreateMigration(dir, "confirmed by column", "")
		require.NoError(t, err)
		assert.Equal(t, "000008", mf.Version)
	})

	t.Run("creates the directory when missing", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "migrations")

		mf, err := CreateMigration(dir, "init", "")
		require.NoError(t, err)
		assert.FileExists(t, mf.UpPath)
		assert.FileExists(t, mf.DownPath)
	})
}

func TestSanitizeName(t *testing.T) {
	cases := map[string]string{
		"Add Partner Payments":  "add_partner_payments",
		"fix--weird   spacing!": "fix_weird_spacing",
		"CamelCase123":          "camelcase123",
		"trailing-":             "trailing",
	}
	for in, want := range cases {
		assert.Equal(t, want, sanitizeName(in), in)
	}
}

func TestListMigrations(t *testing.T) {
	t.Run("lists sorted base names of up files only", func(t *testing.T) {
		dir := t.TempDir()
		files := []string{
			"000002_add_stocks.up.sql",
			"000002_add_stocks.down.sql",
			"000001_init_schema.up.sql",
			"000001_init_schema.down.sql",
			"README.md",
		}
		for _, name := range files {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("-- sql"), 0644))
		}

		got, err := ListMigrations(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"000001_init_schema", "000002_add_stocks"}, got)
	})

	t.Run("missing directory is empty, not an error", func(t *testing.T) {
		got, err := ListMigrations(filepath.Join(t.TempDir(), "nowhere"))
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
