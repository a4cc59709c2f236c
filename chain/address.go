package chain

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

const AddressLength = 20

type Address [AddressLength]byte

// ZeroAddress stands in for contracts that have not been deployed yet.
var ZeroAddress Address

func ParseAddress(s string) (Address, error) {
	var a Address
	raw := strings.TrimSpace(s)
	if !strings.HasPrefix(raw, "0x") && !strings.HasPrefix(raw, "0X") {
		return a, fmt.Errorf("address %q: missing 0x prefix", s)
	}
	raw = raw[2:]
	if len(raw) != AddressLength*2 {
		return a, fmt.Errorf("address %q: want %d hex chars, got %d", s, AddressLength*2, len(raw))
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return a, fmt.Errorf("address %q: %w", s, err)
	}
	copy(a[:], b)
	return a, nil
}

// MustParseAddress is ParseAddress for constants; it panics on bad input.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Address) IsZero() bool {
	return a == ZeroAddress
}

// Hex renders the EIP-55 mixed-case checksum form.
func (a Address) Hex() string {
	lower := hex.EncodeToString(a[:])

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	digest := h.Sum(nil)

	out := []byte(lower)
	for i, c := range out {
		if c < 'a' || c > 'f' {
			continue
		}
		nibble := digest[i/2]
		if i%2 == 0 {
			nibble >>= 4
		} else {
			nibble &= 0x0f
		}
		if nibble >= 8 {
			out[i] = c - 'a' + 'A'
		}
	}
	return "0x" + string(out)
}

func (a Address) String() string {
	return a.Hex()
}

// Short is the wallet-button form, e.g. 0x5aAe…eAed.
func (a Address) Short() string {
	full := a.Hex()
	return full[:6] + "…" + full[len(full)-4:]
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.Hex()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
