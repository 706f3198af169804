package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/relabs-tech/hall_matrix/internal/matrix"
	"github.com/relabs-tech/hall_matrix/internal/strobe"
)

// Config holds all application configuration values.
type Config struct {
	// Matrix geometry and thresholds
	MatrixRows           int
	MatrixCols           int
	HallSettleAfterColUS int
	HallActuationPt      uint16
	HallDeactOffset      uint16
	StrobeDSPin          string
	StrobeCPPin          string
	StrobeMRPin          string
	StrobeBitDelayUS     int
	StrobeResetPulseUS   int

	// Row ADCs (ADS1115, four channels each)
	ADCI2CBus        string
	ADCI2CAddrs      []uint16
	ADCDataRateHz    int
	ADCMaxMillivolts int
	ADCRawShift      uint

	// MQTT
	MQTTBroker          string
	MQTTClientIDScanner string
	MQTTClientIDConsole string
	MQTTClientIDWeb     string
	MQTTClientIDDisplay string
	MQTTClientIDSerial  string

	// Topics
	TopicKeyEvents string

	// Web Server
	WebServerPort int

	// Serial event line
	SerialPort     string
	SerialBaudRate int

	// Display
	DisplayI2CAddr        uint16
	DisplayUpdateInterval int // milliseconds
}

// Defaults returns the values used for keys missing from the file.
func Defaults() *Config {
	hc := matrix.DefaultConfig()
	return &Config{
		MatrixRows:            6,
		MatrixCols:            21,
		HallSettleAfterColUS:  int(hc.SettleAfterCol / time.Microsecond),
		HallActuationPt:       hc.ActuationPt,
		HallDeactOffset:       hc.DeactOffset,
		StrobeBitDelayUS:      int(strobe.DefaultTiming.BitDelay / time.Microsecond),
		StrobeResetPulseUS:    int(strobe.DefaultTiming.ResetPulse / time.Microsecond),
		ADCDataRateHz:         860,
		ADCMaxMillivolts:      4096,
		ADCRawShift:           3,
		MQTTClientIDScanner:   "hall-scanner",
		MQTTClientIDConsole:   "hall-console-subscriber",
		MQTTClientIDWeb:       "hall-web-subscriber",
		MQTTClientIDDisplay:   "hall-display-subscriber",
		MQTTClientIDSerial:    "hall-serial-producer",
		TopicKeyEvents:        "hall/keys",
		WebServerPort:         8080,
		SerialBaudRate:        115200,
		DisplayI2CAddr:        0x3C,
		DisplayUpdateInterval: 200,
	}
}

// Package-level unexported variables for singleton pattern:
//   - globalConfig: only reachable through Get, so nothing mutates it without the lock.
//   - configOnce: ensures InitGlobal() only runs once, even if called multiple times.
//   - configMu: write lock for initialization, read lock for Get().
var (
	globalConfig *Config
	configOnce   sync.Once
	configMu     sync.RWMutex
)

// Load reads the configuration file and returns a Config struct.
func Load(configPath string) (*Config, error) {
	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	cfg := Defaults()
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=VALUE
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid config line %d: %q", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if err := cfg.setValue(key, value); err != nil {
			return nil, fmt.Errorf("config line %d: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func intInRange(key, value string, lo, hi int) (int, error) {
	v, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	if v < lo || v > hi {
		return 0, fmt.Errorf("%s must be %d-%d, got %d", key, lo, hi, v)
	}
	return v, nil
}

// setValue sets a config value based on the key.
func (c *Config) setValue(key, value string) error {
	var err error
	switch key {
	// Matrix
	case "MATRIX_ROWS":
		c.MatrixRows, err = intInRange(key, value, 1, matrix.MaxDim)
	case "MATRIX_COLS":
		c.MatrixCols, err = intInRange(key, value, 1, matrix.MaxDim)
	case "HALL_SETTLE_AFTER_COL_US":
		c.HallSettleAfterColUS, err = intInRange(key, value, 0, 100000)
	case "HALL_ACTUATION_PT":
		var v int
		v, err = intInRange(key, value, 0, 40)
		c.HallActuationPt = uint16(v)
	case "HALL_DEACT_OFFSET":
		var v int
		v, err = intInRange(key, value, 0, 40)
		c.HallDeactOffset = uint16(v)

	// Column strobe
	case "STROBE_DS_PIN":
		c.StrobeDSPin = value
	case "STROBE_CP_PIN":
		c.StrobeCPPin = value
	case "STROBE_MR_PIN":
		c.StrobeMRPin = value
	case "STROBE_BIT_DELAY_US":
		c.StrobeBitDelayUS, err = intInRange(key, value, 0, 10000)
	case "STROBE_RESET_PULSE_US":
		c.StrobeResetPulseUS, err = intInRange(key, value, 0, 10000)

	// Row ADCs
	case "ADC_I2C_BUS":
		c.ADCI2CBus = value
	case "ADC_I2C_ADDRS":
		c.ADCI2CAddrs = c.ADCI2CAddrs[:0]
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			addr, perr := strconv.ParseUint(part, 0, 16)
			if perr != nil {
				return fmt.Errorf("invalid ADC_I2C_ADDRS entry %q: %w", part, perr)
			}
			c.ADCI2CAddrs = append(c.ADCI2CAddrs, uint16(addr))
		}
	case "ADC_DATA_RATE_HZ":
		c.ADCDataRateHz, err = intInRange(key, value, 8, 860)
	case "ADC_MAX_MILLIVOLTS":
		c.ADCMaxMillivolts, err = intInRange(key, value, 256, 6144)
	case "ADC_RAW_SHIFT":
		var v int
		v, err = intInRange(key, value, 0, 15)
		c.ADCRawShift = uint(v)

	// MQTT
	case "MQTT_BROKER":
		c.MQTTBroker = value
	case "MQTT_CLIENT_ID_SCANNER":
		c.MQTTClientIDScanner = value
	case "MQTT_CLIENT_ID_CONSOLE":
		c.MQTTClientIDConsole = value
	case "MQTT_CLIENT_ID_WEB":
		c.MQTTClientIDWeb = value
	case "MQTT_CLIENT_ID_DISPLAY":
		c.MQTTClientIDDisplay = value
	case "MQTT_CLIENT_ID_SERIAL":
		c.MQTTClientIDSerial = value

	// Topics
	case "TOPIC_KEY_EVENTS":
		c.TopicKeyEvents = value

	// Web Server
	case "WEB_SERVER_PORT":
		c.WebServerPort, err = intInRange(key, value, 1, 65535)

	// Serial
	case "SERIAL_PORT":
		c.SerialPort = value
	case "SERIAL_BAUD_RATE":
		rate, perr := strconv.Atoi(value)
		if perr != nil {
			return fmt.Errorf("invalid SERIAL_BAUD_RATE %q: %w", value, perr)
		}
		c.SerialBaudRate = rate

	// Display
	case "DISPLAY_I2C_ADDR":
		addr, perr := strconv.ParseUint(value, 0, 16)
		if perr != nil {
			return fmt.Errorf("invalid DISPLAY_I2C_ADDR %q: %w", value, perr)
		}
		c.DisplayI2CAddr = uint16(addr)
	case "DISPLAY_UPDATE_INTERVAL":
		c.DisplayUpdateInterval, err = intInRange(key, value, 10, 60000)

	default:
		return fmt.Errorf("unknown config key: %q", key)
	}

	return err
}

// validate checks that all required fields are set.
func (c *Config) validate() error {
	if c.MQTTBroker == "" {
		return fmt.Errorf("MQTT_BROKER is required")
	}
	if c.TopicKeyEvents == "" {
		return fmt.Errorf("TOPIC_KEY_EVENTS is required")
	}
	if c.SerialPort != "" && c.SerialBaudRate <= 0 {
		return fmt.Errorf("SERIAL_BAUD_RATE is required when SERIAL_PORT is set")
	}
	if need := (c.MatrixRows + 3) / 4; len(c.ADCI2CAddrs) > 0 && len(c.ADCI2CAddrs) < need {
		return fmt.Errorf("ADC_I2C_ADDRS lists %d ADCs, %d rows need %d", len(c.ADCI2CAddrs), c.MatrixRows, need)
	}
	if err := c.HallConfig().Validate(); err != nil {
		return fmt.Errorf("HALL_ACTUATION_PT/HALL_DEACT_OFFSET: %w", err)
	}
	return nil
}

// HallConfig returns the scanner tuning.
func (c *Config) HallConfig() matrix.Config {
	return matrix.Config{
		SettleAfterCol: time.Duration(c.HallSettleAfterColUS) * time.Microsecond,
		ActuationPt:    c.HallActuationPt,
		DeactOffset:    c.HallDeactOffset,
	}
}

// StrobeTiming returns the shift register pulse widths.
func (c *Config) StrobeTiming() strobe.Timing {
	return strobe.Timing{
		BitDelay:   time.Duration(c.StrobeBitDelayUS) * time.Microsecond,
		ResetPulse: time.Duration(c.StrobeResetPulseUS) * time.Microsecond,
	}
}

// RequireHardware checks the keys needed to drive a real board.
func (c *Config) RequireHardware() error {
	switch {
	case c.StrobeDSPin == "" || c.StrobeCPPin == "" || c.StrobeMRPin == "":
		return fmt.Errorf("STROBE_DS_PIN, STROBE_CP_PIN and STROBE_MR_PIN are required")
	case len(c.ADCI2CAddrs) == 0:
		return fmt.Errorf("ADC_I2C_ADDRS is required")
	}
	return nil
}

// InitGlobal initializes the global configuration from file.
// Uses sync.Once to ensure this only runs once, even if called multiple times.
func InitGlobal(configPath string) error {
	var err error
	configOnce.Do(func() {
		configMu.Lock()
		defer configMu.Unlock()
		globalConfig, err = Load(configPath)
	})
	return err
}

// Get returns the global configuration instance.
// InitGlobal must be called first, or this will return nil.
func Get() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return globalConfig
}
