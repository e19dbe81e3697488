// Package logdec is an in-memory toolkit for the logarithmic
// decomposition of information — from discrete joint distributions to
// redundancy-lattice atoms, shared-information measures and partial
// information decomposition (PID).
//
// 🚀 What is logdec?
//
//	A small, deterministic library that brings together:
//		• Distributions: immutable joint pmfs over named random variables
//		• Atoms: the redundancy lattice of outcome subsets, order filters,
//		  upper sets
//		• Content: which lattice atoms a variable group can see change
//		• Measures: total loss, interior loss L°, atom-set information
//		• Shared information: weakly and strongly shared content between
//		  variable groups
//		• PID: the I_LogDec measure over sources and a target
//
// ✨ Why choose logdec?
//
//   - Pure functions – every call is deterministic and side-effect free
//   - Fail-fast – sentinel errors at the boundary, never deep in a loop
//   - Pure Go – no cgo, stdlib math, one tiny concurrency helper
//   - Value semantics – atoms are immutable and compare by value
//
// Under the hood, everything is organized under four subpackages:
//
//	dist/    — Distribution container, validation, projection, pmf helpers
//	lattice/ — Atom & AtomSet, lattice combinatorics, content, measures
//	shared/  — weakly/strongly shared information between variable groups
//	pid/     — the I_LogDec partial-information-decomposition adapter
//
// Quick example, three binary variables with Z = X XOR Y:
//
//	d, _ := dist.Uniform([]string{"X", "Y", "Z"}, []dist.Outcome{
//	    {"0", "0", "0"}, {"0", "1", "1"}, {"1", "0", "1"}, {"1", "1", "0"},
//	})
//	bits, _ := shared.WeaklyShared(d, [][]string{{"X", "Y"}, {"Z"}},
//	    lattice.Exact(2), 2) // 1.0 — X and Y together fully determine Z
//
// The decomposition follows Down & Mediano,
// "A logarithmic decomposition of information" (arXiv:2305.07554).
//
//	go get github.com/KeenanDown/logdec
package logdec
