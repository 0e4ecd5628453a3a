package domain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ValidRecipient reports whether s is an acceptable 20-byte hex address.
// All-lowercase and all-uppercase hex carry no checksum and are accepted
// as-is; mixed-case input must match its EIP-55 checksum. Same acceptance
// rule as ethers.isAddress.
func ValidRecipient(s string) bool {
	if !common.IsHexAddress(s) {
		return false
	}
	hex := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if hex == strings.ToLower(hex) || hex == strings.ToUpper(hex) {
		return true
	}
	return common.HexToAddress(s).Hex() == "0x"+hex
}
