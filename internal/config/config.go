package config

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Engine holds the immutable pricing constants. It is passed explicitly into
// the pricing and routing components instead of living as package globals.
type Engine struct {
	FeeNumerator   int64  `yaml:"fee_numerator"`
	FeeDenominator int64  `yaml:"fee_denominator"`
	SlippageToken  uint32 `yaml:"slippage_bps_token"`
	SlippageNative uint32 `yaml:"slippage_bps_native"`
	// RateToleranceBps is subtracted from the bridging-rate deviation before
	// warning thresholds apply, to absorb integer quantization noise.
	RateToleranceBps uint32        `yaml:"rate_tolerance_bps"`
	DeadlineWindow   time.Duration `yaml:"deadline_window"`
}

// SlippageBpsFor selects the allowed-deviation setting for a leg, depending on
// whether the dependent asset is the native one.
func (e Engine) SlippageBpsFor(native bool) uint32 {
	if native {
		return e.SlippageNative
	}
	return e.SlippageToken
}

// Config holds application configuration loaded from file.
type Config struct {
	RPCURL       string `yaml:"rpc_url"`
	PairAddress  string `yaml:"pair_address"`
	PriceFeedURL string `yaml:"pricefeed_url"`

	NativeAddress  string `yaml:"native_address"`
	NativeSymbol   string `yaml:"native_symbol"`
	NativeDecimals uint8  `yaml:"native_decimals"`
	BridgeAddress  string `yaml:"bridge_address"`
	BridgeSymbol   string `yaml:"bridge_symbol"`
	BridgeDecimals uint8  `yaml:"bridge_decimals"`

	ListenAddr        string        `yaml:"listen_addr"`
	GraceTimeout      time.Duration `yaml:"shutdown_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`

	Engine Engine `yaml:"engine"`
}

// Load reads the config from a YAML file path.
// Fails fatally if config is invalid or file is missing.
func Load(path string) Config {
	f, err := os.Open(path)
	if err != nil {
		logrus.Fatalf("failed to open config file: os.Open: %v", err)
	}
	defer func(f *os.File) {
		if err := f.Close(); err != nil {
			logrus.Warnf("failed to close config file: f.Close: %v", err)
		}
	}(f)

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		logrus.Fatalf("failed to parse config file: decoder.Decode: %v", err)
	}

	applyDefaults(&cfg)

	if cfg.RPCURL == "" {
		logrus.Fatal("rpc_url is required in config")
	}
	if cfg.PairAddress == "" {
		logrus.Fatal("pair_address is required in config")
	}
	if cfg.NativeAddress == "" || cfg.BridgeAddress == "" {
		logrus.Fatal("native_address and bridge_address are required in config")
	}

	return cfg
}

func applyDefaults(cfg *Config) {
	const defaultTimeout = 5 * time.Second
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":1337"
	}
	if cfg.GraceTimeout == 0 {
		cfg.GraceTimeout = defaultTimeout
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = defaultTimeout
	}
	if cfg.ReadHeaderTimeout == 0 {
		cfg.ReadHeaderTimeout = defaultTimeout
	}
	if cfg.NativeSymbol == "" {
		cfg.NativeSymbol = "ETH"
	}
	if cfg.NativeDecimals == 0 {
		cfg.NativeDecimals = 18
	}
	if cfg.BridgeDecimals == 0 {
		cfg.BridgeDecimals = 18
	}

	e := &cfg.Engine
	if e.FeeNumerator == 0 {
		e.FeeNumerator = 997
	}
	if e.FeeDenominator == 0 {
		e.FeeDenominator = 1000
	}
	if e.SlippageToken == 0 {
		e.SlippageToken = 100
	}
	if e.SlippageNative == 0 {
		e.SlippageNative = 100
	}
	if e.RateToleranceBps == 0 {
		e.RateToleranceBps = 30
	}
	if e.DeadlineWindow == 0 {
		e.DeadlineWindow = 20 * time.Minute
	}
}
