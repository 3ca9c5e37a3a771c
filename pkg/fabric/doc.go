// Package fabric models the static topology of a programmable-logic fabric.
//
// # Overview
//
// A fabric is described by a small set of reusable tile types, a rectangular
// grid that references them by name, and a list of nodes joining tile-local
// wires into routing tracks that cross tile boundaries:
//
//   - [Wire]: a named, tile-type-local signal endpoint tagged with a [WireClass]
//   - [PIP]: a directed programmable connection between two wires of one tile type
//   - [Bel]: a primitive instance (LUT, flip-flop, IO buffer) at a sub-location z
//   - [TileType]: the immutable set of wires, pips and bels
//   - [Grid]: the W×H tile-type assignment
//   - [Node]: tile-crossing equivalence class of (x, y, wire) references
//
// # Definition Phase
//
// Tile types are defined through a [Registry]. Each call to [Registry.Create]
// hands back a [Builder] owned by the caller; once every tile type is defined,
// [Registry.Freeze] turns the builders into a read-only [Library]:
//
//	reg := fabric.NewRegistry()
//	qsb, _ := reg.Create("QSB")
//	_, _ = qsb.CreateChannelWire("N_0", fabric.ClassChanN, 0)
//	_, _ = qsb.CreateChannelWire("S_0", fabric.ClassChanS, 0)
//	_ = qsb.CreatePip("N_0", "S_0")
//	lib, err := reg.Freeze()
//
// Every definition error (duplicate names, forward references, pin contract
// violations) is reported immediately and carries a code from
// [github.com/matzehuels/fabricgen/pkg/errors].
//
// # Primitive Catalog
//
// The primitive kinds a bel may instantiate, together with their pin
// contracts, live in a static catalog. See [LookupPrimitive].
package fabric
