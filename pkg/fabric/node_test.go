package fabric

import (
	"testing"

	errs "github.com/matzehuels/fabricgen/pkg/errors"
)

func nodeFixture(t *testing.T) (*Grid, *Library) {
	t.Helper()
	reg := NewRegistry()
	qsb, _ := reg.Create("QSB")
	mustWire(t, qsb, "E_0", ClassChanE)
	qcb, _ := reg.Create("QCB")
	mustWire(t, qcb, "QSB1_0", ClassSwitchFacing)
	clb, _ := reg.Create("CLB")
	mustWire(t, clb, "SLICE0_D", ClassSliceIn)
	lib, err := reg.Freeze()
	if err != nil {
		t.Fatalf("Freeze: %v", err)
	}
	g, err := NewGrid([][]string{{"QSB", "QCB", "CLB"}})
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g, lib
}

func TestNodeValidate(t *testing.T) {
	a := NodeWire{X: 0, Y: 0, Wire: "E_0"}
	b := NodeWire{X: 1, Y: 0, Wire: "QSB1_0"}

	if err := (Node{a, b}).Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
	if err := (Node{a, b, a}).Validate(); !errs.Is(err, errs.ErrCodeStitch) {
		t.Errorf("duplicate member: got %v", err)
	}
	if err := (Node{}).Validate(); err == nil {
		t.Error("empty node should fail")
	}
	if !(Node{a, b}).Contains(b) {
		t.Error("Contains(b) = false")
	}
}

func TestValidateNode(t *testing.T) {
	g, lib := nodeFixture(t)

	tests := []struct {
		name    string
		node    Node
		wantErr bool
	}{
		{"routable pair", Node{{0, 0, "E_0"}, {1, 0, "QSB1_0"}}, false},
		{"missing wire", Node{{0, 0, "W_0"}, {1, 0, "QSB1_0"}}, true},
		{"logic wire", Node{{2, 0, "SLICE0_D"}, {1, 0, "QSB1_0"}}, true},
		{"out of grid", Node{{3, 0, "E_0"}, {1, 0, "QSB1_0"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNode(g, lib, tt.node)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNode() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
