// Package topology defines the network-adapter topology model extracted
// from VIOS lssea logs.
//
// A Topology describes one host: its Shared Ethernet Adapter (SEA) devices
// and, per SEA, the etherchannel, real and virtual adapters bridged by it.
// Topologies are produced once by a parser (pkg/lssea) or imported from
// JSON, and are immutable input to the diagram layout engine (pkg/diagram).
package topology

// AdapterRef identifies a single network adapter attached to a SEA.
type AdapterRef struct {
	Name         string `json:"adapter_name"`
	HardwarePath string `json:"hardware_path,omitempty"`
}

// Etherchannel is a link-aggregation grouping of physical adapters
// presented as one logical adapter.
type Etherchannel struct {
	Adapters []string `json:"adapters"`
}

// SeaSection describes one Shared Ethernet Adapter device and the adapters
// it bridges. Properties holds unordered device attributes (thread mode,
// hash mode, state, ...); they are carried through import/export but never
// laid out.
type SeaSection struct {
	Name            string            `json:"sea_name"`
	Properties      map[string]string `json:"properties,omitempty"`
	Etherchannel    *Etherchannel     `json:"etherchannel,omitempty"`
	RealAdapters    []AdapterRef      `json:"real_adapters,omitempty"`
	VirtualAdapters []AdapterRef      `json:"virtual_adapters,omitempty"`
}

// EtherchannelAdapters returns the etherchannel member adapter names,
// or nil when the SEA has no etherchannel.
func (s SeaSection) EtherchannelAdapters() []string {
	if s.Etherchannel == nil {
		return nil
	}
	return s.Etherchannel.Adapters
}

// HasEtherchannel reports whether the SEA has an etherchannel with at least
// one member adapter. An etherchannel with zero adapters is treated as
// absent and never rendered.
func (s SeaSection) HasEtherchannel() bool {
	return s.Etherchannel != nil && len(s.Etherchannel.Adapters) > 0
}

// AdapterCount returns the number of real and virtual adapters in the section.
func (s SeaSection) AdapterCount() int {
	return len(s.RealAdapters) + len(s.VirtualAdapters)
}

// Topology is the complete adapter topology of one host.
type Topology struct {
	Hostname string       `json:"hostname"`
	Sections []SeaSection `json:"sea_sections"`
}

// AdapterCount returns the total number of real and virtual adapters
// across all SEA sections.
func (t Topology) AdapterCount() int {
	n := 0
	for _, s := range t.Sections {
		n += s.AdapterCount()
	}
	return n
}

// BoxCount returns the number of diagram boxes the topology produces:
// one for the hostname, one per SEA, one per non-empty etherchannel and
// one per adapter.
func (t Topology) BoxCount() int {
	n := 1
	for _, s := range t.Sections {
		n++
		if s.HasEtherchannel() {
			n++
		}
		n += s.AdapterCount()
	}
	return n
}
