package asset

import (
	"github.com/ethereum/go-ethereum/common"
)

// Meta is externally provided asset metadata.
type Meta struct {
	Symbol   string
	Decimals uint8
}

// Ref identifies a tradable asset together with its decimal precision.
type Ref struct {
	Addr     common.Address
	Decimals uint8
}

// Book fixes the two distinguished assets of the model: the chain's native
// asset and the single bridge asset all non-native pairs route through.
type Book struct {
	Native Ref
	Bridge Ref
}

// IsNative reports whether r is the native asset.
func (b Book) IsNative(r Ref) bool {
	return r.Addr == b.Native.Addr
}

// IsBridge reports whether r is the bridge asset.
func (b Book) IsBridge(r Ref) bool {
	return r.Addr == b.Bridge.Addr
}
