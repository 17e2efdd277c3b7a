package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/minepkg/cargo-get/pkg/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoManifest = `
[package]
name = "demo"
version = "1.2.3-beta+001"
authors = ["A", "B"]
keywords = ["cli", "cargo"]
edition = "2021"
license = "MIT"
`

const workspaceManifest = `
[package]
name = "member"
version = { workspace = true }
authors = { workspace = true }
license = { workspace = true }

[workspace]
members = ["member", "crates/util"]

[workspace.package]
version = "0.9.0"
authors = ["Alice", "Bob"]
edition = "2018"
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, manifest.Filename), []byte(content), 0644))
	return dir
}

// run executes the command tree in dir and returns stdout
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(stripGet(args), "--root", dir))

	err := cmd.Execute()
	return out.String(), err
}

func TestDemoScenario(t *testing.T) {
	dir := writeManifest(t, demoManifest)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"package.name"}, "demo\n"},
		{[]string{"-n"}, "demo\n"},
		{[]string{"--name"}, "demo\n"},
		{[]string{"package.version"}, "1.2.3\n"},
		{[]string{"version"}, "1.2.3\n"},
		{[]string{"package.version", "--full"}, "1.2.3-beta+001\n"},
		{[]string{"package.version", "--pretty"}, "v1.2.3\n"},
		{[]string{"package.version", "--pre"}, "beta\n"},
		{[]string{"package.version", "--build"}, "001\n"},
		{[]string{"package.version", "--major"}, "1\n"},
		{[]string{"package.version", "--minor"}, "2\n"},
		{[]string{"package.version", "--patch"}, "3\n"},
		{[]string{"get", "version", "--pretty"}, "v1.2.3\n"},
		{[]string{"package.edition"}, "2021\n"},
		{[]string{"-e"}, "2021\n"},
		{[]string{"package.license"}, "MIT\n"},
		{[]string{"package.homepage"}, "\n"},
		{[]string{"package.authors"}, "A\nB\n"},
		{[]string{"package.authors", "--delimiter", ","}, "A,B\n"},
		{[]string{"-a", "--delimiter", "Tab"}, "A\tB\n"},
		{[]string{"-k", "--delimiter", " "}, "cli cargo\n"},
	}

	for _, tt := range tests {
		t.Run(filepath.Join(tt.args...), func(t *testing.T) {
			out, err := run(t, dir, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestWorkspaceScenario(t *testing.T) {
	dir := writeManifest(t, workspaceManifest)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"package.version"}, "0.9.0\n"},
		{[]string{"package.authors", "--delimiter", ", "}, "Alice, Bob\n"},
		{[]string{"workspace.members", "--delimiter", ","}, "member,crates/util\n"},
		{[]string{"workspace.package.version", "--pretty"}, "v0.9.0\n"},
		{[]string{"workspace.package.edition"}, "2018\n"},
	}

	for _, tt := range tests {
		t.Run(filepath.Join(tt.args...), func(t *testing.T) {
			out, err := run(t, dir, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestErrors(t *testing.T) {
	dir := writeManifest(t, workspaceManifest)

	_, err := run(t, dir, "package.license")
	require.Error(t, err)
	assert.True(t, manifest.IsInheritance(err))
	assert.Contains(t, err.Error(), "package.license")

	_, err = run(t, dir, "workspace.package.homepage")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workspace.package.homepage")

	single := writeManifest(t, demoManifest)
	_, err = run(t, single, "workspace.members")
	require.Error(t, err)
	assert.True(t, manifest.IsNotFound(err))
}

func TestInheritedVersionWithoutTemplate(t *testing.T) {
	dir := writeManifest(t, `
[package]
name = "member"
version = { workspace = true }
`)

	out, err := run(t, dir, "package.version")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, err.Error(), "package.version")
}

func TestInvalidVersion(t *testing.T) {
	dir := writeManifest(t, `
[package]
name = "a"
version = "1.2"
`)

	_, err := run(t, dir, "package.version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid semver")
}

func TestVersionFlagsAreExclusive(t *testing.T) {
	dir := writeManifest(t, demoManifest)

	out, err := run(t, dir, "package.version", "--major", "--minor")
	assert.Error(t, err)
	assert.Empty(t, out)

	_, err = run(t, dir, "-n", "-a")
	assert.Error(t, err)
}

func TestLocatesFromSubdirectory(t *testing.T) {
	dir := writeManifest(t, demoManifest)
	nested := filepath.Join(dir, "src", "bin")
	require.NoError(t, os.MkdirAll(nested, 0755))

	out, err := run(t, nested, "package.name")
	require.NoError(t, err)
	assert.Equal(t, "demo\n", out)

	file := filepath.Join(nested, "main.rs")
	require.NoError(t, os.WriteFile(file, []byte("fn main() {}"), 0644))
	out, err = run(t, file, "package.name")
	require.NoError(t, err)
	assert.Equal(t, "demo\n", out)
}

func TestMissingRoot(t *testing.T) {
	_, err := run(t, filepath.Join(t.TempDir(), "nope"), "package.name")
	assert.ErrorIs(t, err, manifest.ErrNoSuchFile)
	assert.EqualError(t, err, "No such file or directory")
}

func TestDelimiterFromEnvAndConfig(t *testing.T) {
	dir := writeManifest(t, demoManifest)

	t.Run("env", func(t *testing.T) {
		t.Setenv("CARGO_GET_DELIMITER", ";")
		out, err := run(t, dir, "package.authors")
		require.NoError(t, err)
		assert.Equal(t, "A;B\n", out)
	})

	t.Run("config file", func(t *testing.T) {
		cfg := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(cfg, []byte("delimiter = \"CRLF\"\n"), 0644))

		out, err := run(t, dir, "package.authors", "--config", cfg)
		require.NoError(t, err)
		assert.Equal(t, "A\r\nB\n", out)

		out, err = run(t, dir, "package.authors", "--config", cfg, "--delimiter", "+")
		require.NoError(t, err)
		assert.Equal(t, "A+B\n", out)
	})
}

func TestNoArgsPrintsHelp(t *testing.T) {
	dir := writeManifest(t, demoManifest)

	out, err := run(t, dir)
	require.NoError(t, err)
	assert.Contains(t, out, "package.version")
	assert.Contains(t, out, "workspace.members")
}

func TestUnknownCommand(t *testing.T) {
	dir := writeManifest(t, demoManifest)

	_, err := run(t, dir, "package.nope")
	assert.Error(t, err)
}

func TestStripGet(t *testing.T) {
	assert.Equal(t, []string{"version"}, stripGet([]string{"get", "version"}))
	assert.Equal(t, []string{"version", "get"}, stripGet([]string{"version", "get"}))
	assert.Empty(t, stripGet(nil))
}
