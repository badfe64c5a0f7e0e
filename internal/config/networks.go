package config

import "fmt"

// Contracts holds the deployed object ids the router needs on one network.
// Values are injected at construction and never mutated.
type Contracts struct {
	PackageID           string
	AdminCapID          string
	VersionID           string
	GlobalID            string
	PoolRegistryTableID string
}

var contracts = map[string]Contracts{
	"testnet": {
		PackageID:           "0xa21247f737d7ff2b2b2a03411f4693001b24ad2e217b863d1a3dbfadee9ddd3c",
		AdminCapID:          "0x18f90fbdf9beb813b5a92131ecdc2da97e2954b92dcd893b909b196c3d2a672e",
		VersionID:           "0xd4d49b0915459f013072d2c10139eeacac9865fedfc71108cc98565e446370fa",
		GlobalID:            "0x73ea415d3adb8c5ba4cc6322eaaf40f8d99ee54d979891df467ff478ba2154ff",
		PoolRegistryTableID: "0xeb87cbc1fb3cdd9d645f5b8793f30a4745637800babef11d37f4fd20569d60a8",
	},
}

var nodeURLs = map[string]string{
	"testnet": "https://fullnode.testnet.sui.io:443",
	"mainnet": "https://fullnode.mainnet.sui.io:443",
}

// Known pool ids by pair label, per network.
var pools = map[string]map[string]string{
	"testnet": {
		"USDC_WSOL": "0x40b7f495f9933ed2f2e493a4f95876c2f2e9453dd67b877290d5df2aa4157aaf",
	},
}

// Testnet faucet coin types, handy for examples and manual testing.
var testnetFaucetCoins = map[string]string{
	"USDC": "0x5c68f3d2ebfd711454da300d6abf3c7254dc9333cd138cdc68e158ebffd24483::coins::USDC",
	"WSOL": "0x5c68f3d2ebfd711454da300d6abf3c7254dc9333cd138cdc68e158ebffd24483::coins::WSOL",
	"WETH": "0x5c68f3d2ebfd711454da300d6abf3c7254dc9333cd138cdc68e158ebffd24483::coins::WETH",
}

// ContractsFor returns the contract constants for a network.
func ContractsFor(network string) (Contracts, error) {
	c, ok := contracts[network]
	if !ok {
		return Contracts{}, fmt.Errorf("unknown network: %s", network)
	}
	return c, nil
}

// DefaultNodeURL returns the default fullnode URL for a network, or empty
// when the network is unknown.
func DefaultNodeURL(network string) string {
	return nodeURLs[network]
}

// KnownPoolID looks up a seeded pool id by its pair label.
func KnownPoolID(network, label string) (string, bool) {
	byLabel, ok := pools[network]
	if !ok {
		return "", false
	}
	id, ok := byLabel[label]
	return id, ok
}

// FaucetCoin returns the testnet faucet coin type for a symbol.
func FaucetCoin(symbol string) (string, bool) {
	coinType, ok := testnetFaucetCoins[symbol]
	return coinType, ok
}
