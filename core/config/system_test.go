package config

import (
	"testing"

	"github.com/magiconair/properties/assert"
)

func TestSystemConfigDefaultsUnpack(t *testing.T) {
	raw := map[string]interface{}{
		"node": map[string]interface{}{
			"name": "worker-1",
		},
		"path": map[string]interface{}{
			"data": "/var/data",
			"logs": "/var/log/app",
		},
		"log": map[string]interface{}{
			"log_level":           "trace",
			"disable_file_output": true,
		},
	}

	sys := SystemConfig{}
	err := Unpack(raw, &sys)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, sys.NodeConfig.Name, "worker-1")
	assert.Equal(t, sys.PathConfig.Data, "/var/data")
	assert.Equal(t, sys.PathConfig.Log, "/var/log/app")
	assert.Equal(t, sys.LoggingConfig.LogLevel, "trace")
	assert.Equal(t, sys.LoggingConfig.DisableFileOutput, true)
	// untouched sections keep zero values
	assert.Equal(t, sys.Configs.AutoReload, false)
	assert.Equal(t, sys.AllowMultiInstance, false)
}
