// Package tuit is a layout and composition engine for character-grid user
// interfaces.
//
// Widgets are plain values that are combined into larger widgets (stacked,
// centred, padded, placed on a backdrop) and drawn into a rectangular region
// of a fixed-size cell buffer. The core knows nothing about the display: a
// finished buffer is handed to a [Renderer] (see the render/ packages) or
// hosted inside a Bubble Tea program (see the bubble package).
//
// The pieces are:
//
//   - [Terminal], [TerminalConst] and [Metadata]: capability interfaces for a
//     grid of [Cell] values.
//   - [ConstantSize], [MaxSize] and [ConstantSizeRef]: buffers allocated once
//     up front.
//   - [View] and [ViewSplit]: sub-regions that translate coordinates into
//     their parent and reject anything outside their rectangle.
//   - [Widget] and [BoundingBox]: the draw/update contract.
//
// Builtin widgets and combinators live in the widgets package.
package tuit
