// Package diagram turns a host topology into a box-and-line diagram layout.
//
// The pipeline inside this package is strictly one-way:
//
//	topology → Sizer → Build (tier placement) → collision pass → routing → Render
//
// Build produces a Layout of non-overlapping boxes arranged in tiers
// (hostname on top, virtual adapters, SEA devices, etherchannels, real
// adapters) plus edges whose endpoints sit exactly on box boundaries.
// Render replays the finished layout onto a Surface as ordered draw calls;
// the package performs no I/O and holds no state between calls, so the same
// topology always yields bit-identical output.
package diagram
