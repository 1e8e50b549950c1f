// Package mondrian renders an interactive grid composition in the style of
// geometric abstract art: rectangular regions separated by straight black
// lines, a few of them filled from a fixed palette.
//
// Press anywhere to scatter the grid into a random arrangement with random
// coloring; release and the lines ease back to the original layout, after
// which the original coloring reappears.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window and wires
// pointer input for you:
//
//	comp := mondrian.New(mondrian.Classic(), nil)
//	mondrian.Run(comp, mondrian.RunConfig{Title: "Composition"})
//
// For full control, drive the [Composition] yourself: call [Composition.Randomize]
// and [Composition.Release] from your input handlers, [Composition.Frame] once
// per tick with a monotonic clock in seconds, and [Draw] with any [Canvas]
// implementation.
//
// # Headless use
//
// [ExportPNG] renders a frame to disk through a CPU rasterizer, and [Script]
// plays back a JSON sequence of press/release/wait/export steps against a
// virtual clock. Neither needs a display.
//
// # Custom compositions
//
// [Classic] returns the built-in 820×600 reference layout. Any other
// composition is just a [Config]: original cut positions per axis, color
// anchors at fractional coordinates, and a randomization palette.
package mondrian
