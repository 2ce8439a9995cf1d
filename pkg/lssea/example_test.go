package lssea_test

import (
	"fmt"
	"strings"

	"github.com/seaviz/seaviz/pkg/lssea"
)

func ExampleParse() {
	log := `VIOS hostname:
vios1

SEA : ent5
State: PRIMARY

REAL ADAPTERS
-------------------------------------------------
adapter       status    hardware path
-------------------------------------------------
ent0          Available U78AB.001.WZSKM4X-P1-C6-T1

VIRTUAL ADAPTERS
-------------------------------------------------
adapter       status    hardware path
-------------------------------------------------
ent18         Available U8205.E6C.06A84CT-V1-C2-T1
`

	topo, err := lssea.Parse(strings.NewReader(log))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("host:", topo.Hostname)
	for _, sec := range topo.Sections {
		fmt.Printf("%s: state=%s real=%d virtual=%d\n",
			sec.Name, sec.Properties["State"],
			len(sec.RealAdapters), len(sec.VirtualAdapters))
	}
	// Output:
	// host: vios1
	// ent5: state=PRIMARY real=1 virtual=1
}
