package main

import (
	"encoding/hex"
	"github.com/btcsuite/btcd/btcutil/base58"
)

// DecodeHash turns a catalog hash (base58) back into hex.
func DecodeHash(hash string) string {
	return hex.EncodeToString(base58.Decode(hash))
}
