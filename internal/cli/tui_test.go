package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/seaviz/seaviz/pkg/topology"
)

func pickerTopos() []topology.Topology {
	return []topology.Topology{
		{Hostname: "vios1", Sections: []topology.SeaSection{{Name: "ent8"}}},
		{Hostname: "vios2", Sections: []topology.SeaSection{{Name: "ent5"}, {Name: "ent6"}}},
		{Hostname: "vios3"},
	}
}

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHostListNavigation(t *testing.T) {
	m := newHostListModel(pickerTopos())

	next, _ := m.Update(keyMsg("j"))
	m = next.(hostListModel)
	if m.Cursor != 1 {
		t.Errorf("Cursor = %d after down, want 1", m.Cursor)
	}

	next, _ = m.Update(keyMsg("k"))
	m = next.(hostListModel)
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d after up, want 0", m.Cursor)
	}

	// Up at the top stays put.
	next, _ = m.Update(keyMsg("k"))
	m = next.(hostListModel)
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, should not go negative", m.Cursor)
	}
}

func TestHostListToggleAndConfirm(t *testing.T) {
	m := newHostListModel(pickerTopos())

	next, _ := m.Update(keyMsg(" "))
	m = next.(hostListModel)
	next, _ = m.Update(keyMsg("j"))
	m = next.(hostListModel)
	next, _ = m.Update(keyMsg(" "))
	m = next.(hostListModel)

	next, _ = m.Update(keyMsg("enter"))
	m = next.(hostListModel)

	if !m.finished {
		t.Fatal("enter should finish the picker")
	}
	want := []string{"vios1", "vios2"}
	if len(m.Chosen) != len(want) {
		t.Fatalf("Chosen = %v, want %v", m.Chosen, want)
	}
	for i, h := range want {
		if m.Chosen[i] != h {
			t.Errorf("Chosen[%d] = %q, want %q", i, m.Chosen[i], h)
		}
	}
}

func TestHostListEnterSelectsCursor(t *testing.T) {
	m := newHostListModel(pickerTopos())

	next, _ := m.Update(keyMsg("j"))
	m = next.(hostListModel)
	next, _ = m.Update(keyMsg("enter"))
	m = next.(hostListModel)

	if len(m.Chosen) != 1 || m.Chosen[0] != "vios2" {
		t.Errorf("Chosen = %v, want [vios2]", m.Chosen)
	}
}

func TestHostListSelectAll(t *testing.T) {
	m := newHostListModel(pickerTopos())

	next, _ := m.Update(keyMsg("a"))
	m = next.(hostListModel)
	next, _ = m.Update(keyMsg("enter"))
	m = next.(hostListModel)

	if len(m.Chosen) != 3 {
		t.Errorf("Chosen = %v, want all 3 hosts", m.Chosen)
	}
}

func TestHostListAbort(t *testing.T) {
	m := newHostListModel(pickerTopos())

	next, _ := m.Update(keyMsg("q"))
	m = next.(hostListModel)

	if !m.aborted {
		t.Error("q should abort the picker")
	}
	if m.finished {
		t.Error("aborted picker should not be finished")
	}
}

func TestHostListView(t *testing.T) {
	m := newHostListModel(pickerTopos())
	view := m.View()

	for _, host := range []string{"vios1", "vios2", "vios3"} {
		if !strings.Contains(view, host) {
			t.Errorf("View() missing host %q", host)
		}
	}
	if !strings.Contains(view, "ent8") {
		t.Error("View() should list SEA names")
	}
}
