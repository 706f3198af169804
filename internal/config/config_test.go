package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/relabs-tech/hall_matrix/internal/matrix"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hall_config.txt")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
# board
MATRIX_ROWS=5
MATRIX_COLS = 14
HALL_SETTLE_AFTER_COL_US=60
HALL_ACTUATION_PT=15
HALL_DEACT_OFFSET=4
STROBE_DS_PIN=GPIO17
STROBE_CP_PIN=GPIO27
STROBE_MR_PIN=GPIO22
STROBE_BIT_DELAY_US=2
ADC_I2C_BUS=1
ADC_I2C_ADDRS=0x48, 0x49
MQTT_BROKER=tcp://localhost:1883
TOPIC_KEY_EVENTS=kb/left/keys
DISPLAY_I2C_ADDR=0x3D
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MatrixRows != 5 || cfg.MatrixCols != 14 {
		t.Errorf("dimensions = %dx%d", cfg.MatrixRows, cfg.MatrixCols)
	}
	if want := []uint16{0x48, 0x49}; !reflect.DeepEqual(cfg.ADCI2CAddrs, want) {
		t.Errorf("ADCI2CAddrs = %v, want %v", cfg.ADCI2CAddrs, want)
	}
	if cfg.DisplayI2CAddr != 0x3D {
		t.Errorf("DisplayI2CAddr = %#x", cfg.DisplayI2CAddr)
	}
	want := matrix.Config{SettleAfterCol: 60 * time.Microsecond, ActuationPt: 15, DeactOffset: 4}
	if got := cfg.HallConfig(); got != want {
		t.Errorf("HallConfig() = %+v, want %+v", got, want)
	}
	timing := cfg.StrobeTiming()
	if timing.BitDelay != 2*time.Microsecond || timing.ResetPulse != 2*time.Microsecond {
		t.Errorf("StrobeTiming() = %+v", timing)
	}
	if cfg.MQTTClientIDScanner == "" || cfg.WebServerPort != 8080 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if err := cfg.RequireHardware(); err != nil {
		t.Errorf("RequireHardware: %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing broker", "MATRIX_ROWS=6\n", "MQTT_BROKER is required"},
		{"unknown key", "MQTT_BROKER=x\nFOO=1\n", "unknown config key"},
		{"no equals", "MQTT_BROKER=x\nMATRIX_ROWS\n", "invalid config line 2"},
		{"rows out of range", "MQTT_BROKER=x\nMATRIX_ROWS=256\n", "MATRIX_ROWS must be 1-255"},
		{"actuation out of range", "MQTT_BROKER=x\nHALL_ACTUATION_PT=41\n", "HALL_ACTUATION_PT must be 0-40"},
		{"offset above actuation", "MQTT_BROKER=x\nHALL_ACTUATION_PT=3\nHALL_DEACT_OFFSET=5\n", "HALL_DEACT_OFFSET"},
		{"bad address", "MQTT_BROKER=x\nADC_I2C_ADDRS=0x48,zz\n", "invalid ADC_I2C_ADDRS entry"},
		{"too few adcs", "MQTT_BROKER=x\nMATRIX_ROWS=6\nADC_I2C_ADDRS=0x48\n", "6 rows need 2"},
		{"bad baud", "MQTT_BROKER=x\nSERIAL_BAUD_RATE=fast\n", "invalid SERIAL_BAUD_RATE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("Load of a missing file succeeded")
	}
}

func TestRequireHardware(t *testing.T) {
	cfg := Defaults()
	if err := cfg.RequireHardware(); err == nil {
		t.Fatal("defaults have no pins but RequireHardware passed")
	}
	cfg.StrobeDSPin, cfg.StrobeCPPin, cfg.StrobeMRPin = "A", "B", "C"
	if err := cfg.RequireHardware(); err == nil || !strings.Contains(err.Error(), "ADC_I2C_ADDRS") {
		t.Fatalf("RequireHardware = %v", err)
	}
}

func TestDefaultsMatchPackages(t *testing.T) {
	cfg := Defaults()
	if got := cfg.HallConfig(); got != matrix.DefaultConfig() {
		t.Fatalf("HallConfig() = %+v, want matrix defaults", got)
	}
}
