package diagram

// Tier identifies one horizontal layer of the diagram. Declaration order is
// top-to-bottom render order and doubles as the stable processing order for
// the collision pass.
type Tier int

const (
	TierHostname Tier = iota
	TierVirtualAdapter
	TierSea
	TierEtherchannel
	TierRealAdapter

	tierCount
)

// String returns the tier name used in logs and JSON exports.
func (t Tier) String() string {
	switch t {
	case TierHostname:
		return "hostname"
	case TierVirtualAdapter:
		return "virtual"
	case TierSea:
		return "sea"
	case TierEtherchannel:
		return "etherchannel"
	case TierRealAdapter:
		return "real"
	default:
		return "unknown"
	}
}

// FontClass selects one of the three text sizes a drawing surface renders.
type FontClass int

const (
	FontSmall  FontClass = iota // adapter and etherchannel labels
	FontMedium                  // SEA names
	FontLarge                   // hostname
)

// fontForTier maps each tier to its label size.
func fontForTier(t Tier) FontClass {
	switch t {
	case TierHostname:
		return FontLarge
	case TierSea:
		return FontMedium
	default:
		return FontSmall
	}
}
