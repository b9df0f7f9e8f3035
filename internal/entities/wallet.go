package entities

// WalletEntry is a character's holdings in one currency, in minor units.
// Carried coins count toward encumbrance, banked ones do not.
type WalletEntry struct {
	Carried int64 `json:"carried"`
	Banked  int64 `json:"banked"`
}

// Wallet maps currency name to holdings
type Wallet map[string]WalletEntry
