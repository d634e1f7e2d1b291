package asset

// PathVariant is one of the five fixed routing shapes between two assets.
type PathVariant int

const (
	NativeToBridge PathVariant = iota
	BridgeToNative
	NativeToOther
	OtherToNative
	OtherToOther
)

func (v PathVariant) String() string {
	switch v {
	case NativeToBridge:
		return "native_to_bridge"
	case BridgeToNative:
		return "bridge_to_native"
	case NativeToOther:
		return "native_to_other"
	case OtherToNative:
		return "other_to_native"
	case OtherToOther:
		return "other_to_other"
	}
	return "unknown"
}

// Classify derives the path variant from the selected input and output assets.
// It returns ok=false when either side is unset.
//
// A trade out of the bridge asset into a non-native asset is classified
// OtherToOther: bridge-to-other trades never get a direct two-asset fast path
// and still route through the bridge as an explicit leg.
func (b Book) Classify(in, out *Ref) (PathVariant, bool) {
	if in == nil || out == nil {
		return 0, false
	}
	switch {
	case b.IsNative(*in) && b.IsBridge(*out):
		return NativeToBridge, true
	case b.IsBridge(*in) && b.IsNative(*out):
		return BridgeToNative, true
	case b.IsNative(*in):
		return NativeToOther, true
	case b.IsNative(*out):
		return OtherToNative, true
	default:
		return OtherToOther, true
	}
}
