package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/electr1fy0/valuevault/chain"
	"gopkg.in/yaml.v3"
)

// Config is read once at start and handed to whatever needs it.
type Config struct {
	AppName   string          `yaml:"app_name"`
	Network   NetworkConfig   `yaml:"network"`
	Wallet    WalletConfig    `yaml:"wallet"`
	Contracts ContractsConfig `yaml:"contracts"`
	Log       LogConfig       `yaml:"log"`
}

type NetworkConfig struct {
	ChainID   uint64 `yaml:"chain_id"`
	Name      string `yaml:"name"`
	RPCURL    string `yaml:"rpc_url"`
	RPCURLAlt string `yaml:"rpc_url_alt"`
	WSURL     string `yaml:"ws_url"`
}

type WalletConfig struct {
	ProjectID string        `yaml:"project_id"`
	Account   chain.Address `yaml:"account"`
	Offline   bool          `yaml:"offline"`
	Timeout   string        `yaml:"timeout"`
}

type ContractsConfig struct {
	// zero until the vault contract is deployed
	SecureVault chain.Address `yaml:"secure_vault"`
}

type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

const (
	infuraKey = "b18fb7e6ca7045ac83c41157ab93f990"
	projectID = "2ec9743d0d0cd7fb94dee1a7e6d33475"
)

func Default() *Config {
	return &Config{
		AppName: "Secure Value Vault",
		Network: NetworkConfig{
			ChainID:   chain.Sepolia.ChainID,
			Name:      chain.Sepolia.Name,
			RPCURL:    "https://sepolia.infura.io/v3/" + infuraKey,
			RPCURLAlt: "https://1rpc.io/sepolia",
			WSURL:     "wss://sepolia.infura.io/ws/v3/" + infuraKey,
		},
		Wallet: WalletConfig{
			ProjectID: projectID,
			Account:   chain.MustParseAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"),
			Timeout:   "10s",
		},
		Contracts: ContractsConfig{
			SecureVault: chain.ZeroAddress,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load overlays the YAML file at path on the defaults. An empty path means
// defaults only; a path that cannot be read is an error. Addresses are
// checked while decoding.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Network.ChainID == 0 {
		errs = append(errs, errors.New("network.chain_id must be set"))
	}
	if !c.Wallet.Offline && c.Network.WSURL == "" {
		errs = append(errs, errors.New("network.ws_url is required unless wallet.offline"))
	}
	if c.Wallet.Account.IsZero() {
		errs = append(errs, errors.New("wallet.account must be set"))
	}
	if d, err := time.ParseDuration(c.Wallet.Timeout); err != nil {
		errs = append(errs, fmt.Errorf("wallet.timeout: %w", err))
	} else if d <= 0 {
		errs = append(errs, errors.New("wallet.timeout must be positive"))
	}
	return errors.Join(errs...)
}

func (c *Config) ChainNetwork() chain.Network {
	if n, ok := chain.NetworkByID(c.Network.ChainID); ok && c.Network.Name == "" {
		return n
	}
	return chain.Network{ChainID: c.Network.ChainID, Name: c.Network.Name}
}

func (c *Config) WalletTimeout() time.Duration {
	d, err := time.ParseDuration(c.Wallet.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}
