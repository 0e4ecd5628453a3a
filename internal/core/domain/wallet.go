package domain

// WalletStatus is the lifecycle state of the custodial AA wallet.
type WalletStatus string

const (
	WalletStatusLoading   WalletStatus = "LOADING"
	WalletStatusExists    WalletStatus = "EXISTS"
	WalletStatusNotExists WalletStatus = "NOT_EXISTS"
)

// WalletRecord is the console's view of the user's AA wallet. Status is the
// sole gate for wallet-dependent intents.
type WalletRecord struct {
	Address  string       `json:"address,omitempty"`
	Bytecode string       `json:"bytecode,omitempty"`
	Status   WalletStatus `json:"status"`
}

// Exists reports whether the wallet is known to be deployed.
func (w WalletRecord) Exists() bool {
	return w.Status == WalletStatusExists
}

// bytecodePreviewLen matches the truncation used in the wallet card display.
const bytecodePreviewLen = 50

// BytecodePreview returns the deployed bytecode truncated for display.
func (w WalletRecord) BytecodePreview() string {
	if len(w.Bytecode) <= bytecodePreviewLen {
		return w.Bytecode
	}
	return w.Bytecode[:bytecodePreviewLen] + "..."
}
