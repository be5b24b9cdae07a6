// Package widgets provides the builtin widgets and the combinators that
// build new widgets out of existing ones.
//
// Leaf widgets:
//
//   - [Text] writes a string row by row from the top-left corner.
//   - [CenteredText] writes a string in the middle of the region.
//   - [Sweeper] fills every cell with one style.
//   - [Buttons] is a row of selectable labels.
//
// Combinators take widgets implementing [tuit.BoundingBox] and are
// themselves bounding boxes, so they nest freely:
//
//	prompt := widgets.Centered(widgets.OnTopOf(
//		widgets.WithMargin(widgets.NewText("Continue?"), 1),
//		widgets.NewButtons(" Yes ", " No ").SelectLast(),
//	))
//	widgets.UseBackdrop(prompt, tuit.Ansi16(tuit.Yellow))
//
// Every combinator resolves its children's bounding boxes against the
// region it is given and hands each child a [tuit.View] of its share, so a
// child can never write outside it.
package widgets
