package globe

/*------------------------------------------------------------------
 *
 * Purpose:   	Host-side configuration file.
 *
 * Description:	Everything the driver needs to come up: which port the
 *		receiver is wired to and how fast, how chatty the
 *		diagnostics are, which dynamic platform model to insist
 *		on at boot, and where fix logs go.  The receiver's own
 *		configuration is not persisted here - the module owns
 *		that and is re-validated over CFG-VALGET at startup.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	GNSSPort  string `yaml:"gnss_port"`
	GNSSSpeed int    `yaml:"gnss_speed"`

	DiagLevel string `yaml:"diag_level"`

	/* Dynamic platform model to configure at startup, by name.
	 * Empty skips the startup configuration check. */
	DynModel string `yaml:"dynmodel"`

	/* Directory for daily fix logs.  Empty disables fix logging. */
	FixLogDir string `yaml:"fix_log_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		GNSSPort:  "/dev/ttyUSB0",
		GNSSSpeed: 38400,
		DiagLevel: "info",
		DynModel:  "air4",
	}
}

func LoadConfig(path string) (*Config, error) {
	var cfg = DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	var data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

var dynmodel_names = map[string]DynModel{
	"port":     DYNMODEL_PORT,
	"stat":     DYNMODEL_STAT,
	"ped":      DYNMODEL_PED,
	"automot":  DYNMODEL_AUTOMOT,
	"sea":      DYNMODEL_SEA,
	"air1":     DYNMODEL_AIR1,
	"air2":     DYNMODEL_AIR2,
	"air4":     DYNMODEL_AIR4,
	"wrist":    DYNMODEL_WRIST,
	"bike":     DYNMODEL_BIKE,
	"mower":    DYNMODEL_MOWER,
	"escooter": DYNMODEL_ESCOOTER,
}

/* DynModelByName resolves a model name from the config file. */
func DynModelByName(name string) (DynModel, error) {
	var model, ok = dynmodel_names[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown dynamic platform model %q", name)
	}

	return model, nil
}
