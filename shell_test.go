package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stuff-lending/config"
	"stuff-lending/lending"
)

func newTestRegistry() *lending.Registry {
	return lending.NewRegistry(lending.WithClock(lending.FixedClock(lending.MustDate("2024-05-01"))))
}

// runScript feeds lines to a non-interactive shell and returns everything it printed.
func runScript(t *testing.T, reg *lending.Registry, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, newShell(in, &out, reg, false).run())
	return out.String()
}

func TestShellSession(t *testing.T) {
	reg := newTestRegistry()

	out := runScript(t, reg,
		"1", "Ann", "ann@example.com", "123",
		"2", "Ann", "Drill", "Power drill", "Tools", "10",
		"2", "Bob", "Saw", "Hand saw", "Tools", "5",
		"2", "Ann", "Saw", "Hand saw", "Tools", "abc",
		"add member", "Ben", "", "",
		"3", "Ben", "Drill", "2024-05-01", "2024-05-04",
		"3", "Ben", "Drill", "2024-05-02", "2024-05-03",
		"3", "Ben", "Drill", "2024-06-01", "2024-06-30",
		"3", "Ben", "Drill", "01/06/2024",
		"4", "Ben",
		"4", "Zed",
		"8",
		"bogus",
		"9",
		"1", "never", "read", "",
	)

	assert.Contains(t, out, "Member added successfully! (ID: ")
	assert.Contains(t, out, "Item added successfully for Ann")
	assert.Contains(t, out, "Member not found!")
	assert.Contains(t, out, "Invalid cost per day. Please enter a valid number.")
	assert.Contains(t, out, "Contract created successfully!\n30 credits transferred from Ben to Ann.")
	assert.Contains(t, out, "Borrower or Item not found, or item is not available for the selected dates.")
	assert.Contains(t, out, "Not enough credits for the borrower.")
	assert.Contains(t, out, "Invalid date format. Please use 'yyyy-mm-dd'.")
	assert.Contains(t, out, "Name: Ben\nEmail: \nPhone: \nCredits: 70")
	assert.Contains(t, out, "  - Drill from 2024-05-01 to 2024-05-04 (30 credits)")
	assert.Contains(t, out, "Time advanced to day 1")
	assert.Contains(t, out, "Invalid option! Please try again.")
	assert.True(t, strings.HasSuffix(out, "Exiting the system...\n"))
	assert.NotContains(t, out, "Choose an option")

	assert.Len(t, reg.Members(), 2)
	assert.Len(t, reg.Items(), 1)
	assert.Len(t, reg.Contracts(), 1)
	assert.Equal(t, 230, reg.FindMember("Ann").Credits())
}

func TestShellUpdateMember(t *testing.T) {
	reg := newTestRegistry()
	require.Zero(t, reg.ApplySeed(lending.DefaultSeed()).Failed())

	out := runScript(t, reg,
		"update member", "Jane Smith", "Jane Doe", "", "111222333",
		"update member", "Nobody",
		"4", "Jane Doe",
	)

	assert.Contains(t, out, "Member updated successfully!")
	assert.Contains(t, out, "Member not found!")
	assert.Contains(t, out, "Name: Jane Doe\nEmail: jane.smith@example.com\nPhone: 111222333\nCredits: 50")
	assert.Nil(t, reg.FindMember("Jane Smith"))
	assert.Equal(t, "Jane Doe", reg.Contracts()[0].Borrower().Name())
}

func TestShellListsEmptyRegistry(t *testing.T) {
	out := runScript(t, newTestRegistry(), "5", "6", "7")

	assert.Contains(t, out, "No members available.")
	assert.Contains(t, out, "No items available.")
	assert.Contains(t, out, "No contracts available.")
}

func TestShellListsSeededRegistry(t *testing.T) {
	reg := newTestRegistry()
	require.Zero(t, reg.ApplySeed(lending.DefaultSeed()).Failed())

	out := runScript(t, reg, "list members", "list items", "list contracts")

	assert.Contains(t, out, "Jane Smith")
	assert.Contains(t, out, "Projector")
	assert.Contains(t, out, "Period: 2024-05-01 to 2024-05-06\nCredits Transferred: 250")
}

func TestShellExport(t *testing.T) {
	reg := newTestRegistry()
	require.Zero(t, reg.ApplySeed(lending.DefaultSeed()).Failed())

	out := runScript(t, reg, "export")

	assert.Contains(t, out, `"credits_transferred": 250`)
	assert.Contains(t, out, `"name": "Alice Brown"`)
}

func TestShellInteractivePrompts(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("4\nNobody\n9\n")

	require.NoError(t, newShell(in, &out, newTestRegistry(), true).run())

	assert.Contains(t, out.String(), "Stuff Lending System")
	assert.Contains(t, out.String(), "Choose an option: ")
	assert.Contains(t, out.String(), "Member name to view info: ")
}

func TestSeedRegistry(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		reg := newTestRegistry()
		cfg := config.Default()
		cfg.Seed = false

		require.NoError(t, seedRegistry(reg, cfg, &bytes.Buffer{}))
		assert.Empty(t, reg.Members())
	})

	t.Run("sample data", func(t *testing.T) {
		reg := newTestRegistry()

		require.NoError(t, seedRegistry(reg, config.Default(), &bytes.Buffer{}))
		assert.Len(t, reg.Members(), 3)
		assert.Len(t, reg.Contracts(), 1)
	})

	t.Run("seed file with a bad entry", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.yaml")
		doc := "members:\n  - name: Ann\nitems:\n  - owner: Bob\n    name: Saw\n    description: d\n    category: c\n"
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
		cfg := config.Default()
		cfg.SeedFile = path
		reg := newTestRegistry()
		var out bytes.Buffer

		require.NoError(t, seedRegistry(reg, cfg, &out))
		assert.Contains(t, out.String(), "Warning: could not load item 'Saw'")
		assert.Len(t, reg.Members(), 1)
	})

	t.Run("missing seed file", func(t *testing.T) {
		cfg := config.Default()
		cfg.SeedFile = filepath.Join(t.TempDir(), "missing.yaml")

		assert.ErrorIs(t, seedRegistry(newTestRegistry(), cfg, &bytes.Buffer{}), os.ErrNotExist)
	})
}
