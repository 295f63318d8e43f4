// Package viz is the interactive terminal front end.
//
// A bubbletea tick acts as the frame scheduler: each tick advances the
// controller by at most one step and the frame is redrawn whether or not
// anything moved. Bars are drawn with lipgloss, one column per value, using
// partial block glyphs for eighth-row height resolution.
//
// # Key Bindings
//
//	r        - New random sequence (abandons a running sort)
//	space    - Start sorting
//	a / d    - Ascending / descending
//	b i m q k - Bubble, insertion, merge, quick, bucket
//	p        - Pause the scheduler
//	+ / -    - Double / halve the frame rate
//	t        - Cycle color themes
//	v        - Toggle bars and dots
//	g        - Toggle GIF recording
//	?        - Full help
//	esc      - Quit
package viz
