package lssea

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleLog = `+--------------------------------------+
VIOS hostname:
vios1

SEA : ent5
State: PRIMARY
Thread mode: 1
High Availability Mode: Sharing

ETHERCHANNEL
-------------------------------------------------
adapter       status    hardware path
-------------------------------------------------
ent16         Available

REAL ADAPTERS
-------------------------------------------------
adapter       status    hardware path
-------------------------------------------------
ent0          Available U78AB.001.WZSKM4X-P1-C6-T1
ent1          Available U78AB.001.WZSKM4X-P1-C6-T2

VIRTUAL ADAPTERS
-------------------------------------------------
adapter       status    hardware path
-------------------------------------------------
ent18         Available U8205.E6C.06A84CT-V1-C2-T1
ent19         Available U8205.E6C.06A84CT-V1-C3-T1
NO CONTROL CHANNEL

SEA : ent8
State: BACKUP

REAL ADAPTERS
-------------------------------------------------
adapter       status    hardware path
-------------------------------------------------
ent2          Available U78AB.001.WZSKM4X-P1-C7-T1

VIRTUAL ADAPTERS
-------------------------------------------------
adapter       status    hardware path
-------------------------------------------------
ent20         Available U8205.E6C.06A84CT-V1-C4-T1
+--------------------------------------+
`

func TestParse(t *testing.T) {
	topo, err := Parse(strings.NewReader(sampleLog))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if topo.Hostname != "vios1" {
		t.Errorf("Hostname = %q, want %q", topo.Hostname, "vios1")
	}
	if len(topo.Sections) != 2 {
		t.Fatalf("Sections = %d, want 2", len(topo.Sections))
	}

	ent5 := topo.Sections[0]
	if ent5.Name != "ent5" {
		t.Errorf("Sections[0].Name = %q, want %q", ent5.Name, "ent5")
	}
	if got := ent5.Properties["State"]; got != "PRIMARY" {
		t.Errorf(`Properties["State"] = %q, want "PRIMARY"`, got)
	}
	if got := ent5.Properties["High Availability Mode"]; got != "Sharing" {
		t.Errorf(`Properties["High Availability Mode"] = %q, want "Sharing"`, got)
	}
	if got := ent5.EtherchannelAdapters(); len(got) != 1 || got[0] != "ent16" {
		t.Errorf("EtherchannelAdapters() = %v, want [ent16]", got)
	}
	if len(ent5.RealAdapters) != 2 {
		t.Fatalf("RealAdapters = %d, want 2", len(ent5.RealAdapters))
	}
	if ent5.RealAdapters[0].Name != "ent0" || ent5.RealAdapters[0].HardwarePath != "U78AB.001.WZSKM4X-P1-C6-T1" {
		t.Errorf("RealAdapters[0] = %+v", ent5.RealAdapters[0])
	}
	if len(ent5.VirtualAdapters) != 2 {
		t.Fatalf("VirtualAdapters = %d, want 2", len(ent5.VirtualAdapters))
	}
	if ent5.VirtualAdapters[1].Name != "ent19" {
		t.Errorf("VirtualAdapters[1].Name = %q, want %q", ent5.VirtualAdapters[1].Name, "ent19")
	}

	ent8 := topo.Sections[1]
	if ent8.HasEtherchannel() {
		t.Error("Sections[1] should have no etherchannel")
	}
	if len(ent8.RealAdapters) != 1 || len(ent8.VirtualAdapters) != 1 {
		t.Errorf("Sections[1] adapters = %d real, %d virtual, want 1/1",
			len(ent8.RealAdapters), len(ent8.VirtualAdapters))
	}
}

func TestParseNoHostname(t *testing.T) {
	topo, err := Parse(strings.NewReader("SEA : ent5\nState: PRIMARY\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if topo.Hostname != "" {
		t.Errorf("Hostname = %q, want empty", topo.Hostname)
	}
	if len(topo.Sections) != 1 {
		t.Errorf("Sections = %d, want 1", len(topo.Sections))
	}
}

func TestParseEmptyLog(t *testing.T) {
	topo, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if topo.Hostname != "" || len(topo.Sections) != 0 {
		t.Errorf("Parse(empty) = %+v, want zero topology", topo)
	}
}

func TestGlob(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"lssea_vios2.log", "lssea_vios1.log", "other.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	paths, err := Glob(dir)
	if err != nil {
		t.Fatalf("Glob() error: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("Glob() = %d paths, want 2", len(paths))
	}
	if filepath.Base(paths[0]) != "lssea_vios1.log" {
		t.Errorf("Glob() order = %v, want vios1 first", paths)
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := ParseFile(filepath.Join(t.TempDir(), "nope.log")); err == nil {
		t.Error("ParseFile() expected error for missing file")
	}
}
