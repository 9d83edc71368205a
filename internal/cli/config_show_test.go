package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/sigil/internal/config"
	"github.com/mrz1836/sigil/internal/constants"
)

func findValue(t *testing.T, values []ConfigValueWithSource, key string) ConfigValueWithSource {
	t.Helper()
	for _, v := range values {
		if v.Key == key {
			return v
		}
	}
	t.Fatalf("key %s not found", key)
	return ConfigValueWithSource{}
}

func TestConfigShow_Defaults(t *testing.T) {
	setupCLITest(t)

	out, _, err := runCLI(t, "-o", "json", "config", "show")
	require.NoError(t, err)

	var values []ConfigValueWithSource
	require.NoError(t, json.Unmarshal([]byte(out), &values))
	require.NotEmpty(t, values)
	for _, v := range values {
		assert.Equal(t, SourceDefault, v.Source, v.Key)
	}
	assert.Equal(t, "blake3", findValue(t, values, "text.algorithm").Value)
	assert.Equal(t, "16", findValue(t, values, "genpass.length").Value)
}

func TestConfigShow_Sources(t *testing.T) {
	work := setupCLITest(t)
	writeProjectConfig(t, work, "text:\n  algorithm: ed25519\n")

	home, err := config.GlobalConfigDir()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("genpass:\n  length: 20\ntext:\n  algorithm: blake3\n"), 0o600))
	t.Setenv("SIGIL_JWT_EXPIRY", "2h")

	out, _, err := runCLI(t, "-o", "json", "config", "show")
	require.NoError(t, err)

	var values []ConfigValueWithSource
	require.NoError(t, json.Unmarshal([]byte(out), &values))

	alg := findValue(t, values, "text.algorithm")
	assert.Equal(t, "ed25519", alg.Value)
	assert.Equal(t, SourceProject, alg.Source)

	length := findValue(t, values, "genpass.length")
	assert.Equal(t, "20", length.Value)
	assert.Equal(t, SourceGlobal, length.Source)

	expiry := findValue(t, values, "jwt.expiry")
	assert.Equal(t, "2h", expiry.Value)
	assert.Equal(t, SourceEnv, expiry.Source)
}

func TestConfigShow_MasksSecret(t *testing.T) {
	setupCLITest(t)

	out, _, err := runCLI(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Effective sigil configuration")
	assert.Regexp(t, `secret:\s+\[REDACTED\]`, out)
	assert.NotContains(t, out, constants.DefaultJWTSecret)
	assert.Contains(t, out, "# default")
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()

	assert.Nil(t, loadConfigFile(filepath.Join(dir, "missing.yaml")))

	bad := writeFile(t, dir, "bad.yaml", "text: [unclosed")
	assert.Nil(t, loadConfigFile(bad))

	good := writeFile(t, dir, "good.yaml", "text:\n  algorithm: ed25519\n  key_dir: /keys\nlog:\n  compress: true\n")
	keys := loadConfigFile(good)
	assert.Contains(t, keys, "text.algorithm")
	assert.Contains(t, keys, "text.key_dir")
	assert.Contains(t, keys, "log.compress")
	assert.NotContains(t, keys, "text")
}

func TestDetermineSource(t *testing.T) {
	global := configValues{"jwt.expiry": {}, "text.key_dir": {}}
	project := configValues{"text.key_dir": {}}

	assert.Equal(t, SourceDefault, determineSource("jwt.audience", global, project))
	assert.Equal(t, SourceGlobal, determineSource("jwt.expiry", global, project))
	assert.Equal(t, SourceProject, determineSource("text.key_dir", global, project))

	t.Setenv("SIGIL_TEXT_KEY_DIR", "/env")
	assert.Equal(t, SourceEnv, determineSource("text.key_dir", global, project))
}
