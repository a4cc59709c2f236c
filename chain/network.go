package chain

import (
	"fmt"
	"strconv"
	"strings"
)

type Network struct {
	ChainID uint64
	Name    string
}

var Sepolia = Network{ChainID: 11155111, Name: "Sepolia"}

var known = map[uint64]Network{
	Sepolia.ChainID: Sepolia,
}

func NetworkByID(id uint64) (Network, bool) {
	n, ok := known[id]
	return n, ok
}

func (n Network) ChainIDHex() string {
	return "0x" + strconv.FormatUint(n.ChainID, 16)
}

func (n Network) String() string {
	if n.Name == "" {
		return fmt.Sprintf("chain %d", n.ChainID)
	}
	return fmt.Sprintf("%s (%d)", n.Name, n.ChainID)
}

// ParseQuantity decodes a JSON-RPC hex quantity such as "0xaa36a7".
func ParseQuantity(s string) (uint64, error) {
	if !strings.HasPrefix(s, "0x") {
		return 0, fmt.Errorf("quantity %q: missing 0x prefix", s)
	}
	v, err := strconv.ParseUint(s[2:], 16, 64)
	if err != nil {
		return 0, fmt.Errorf("quantity %q: %w", s, err)
	}
	return v, nil
}
