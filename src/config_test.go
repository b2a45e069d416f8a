package globe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	var cfg, err = LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "/dev/ttyUSB0", cfg.GNSSPort)
	assert.Equal(t, 38400, cfg.GNSSSpeed)
	assert.Equal(t, "air4", cfg.DynModel)
}

func TestLoadConfigFile(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "globe.yaml")

	var err = os.WriteFile(path, []byte(
		"gnss_port: /dev/ttyACM3\n"+
			"gnss_speed: 115200\n"+
			"dynmodel: ped\n"+
			"fix_log_dir: /tmp/fixes\n"), 0o644)
	require.NoError(t, err)

	var cfg, loadErr = LoadConfig(path)
	require.NoError(t, loadErr)

	assert.Equal(t, "/dev/ttyACM3", cfg.GNSSPort)
	assert.Equal(t, 115200, cfg.GNSSSpeed)
	assert.Equal(t, "ped", cfg.DynModel)
	assert.Equal(t, "/tmp/fixes", cfg.FixLogDir)

	/* Unset keys keep their defaults. */
	assert.Equal(t, "info", cfg.DiagLevel)
}

func TestLoadConfigMissingFile(t *testing.T) {
	var _, err = LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDynModelByName(t *testing.T) {
	var model, err = DynModelByName("air4")
	require.NoError(t, err)
	assert.Equal(t, DYNMODEL_AIR4, model)

	model, err = DynModelByName("ESCOOTER")
	require.NoError(t, err)
	assert.Equal(t, DYNMODEL_ESCOOTER, model)

	_, err = DynModelByName("submarine")
	assert.Error(t, err)
}
