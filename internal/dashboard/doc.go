// Package dashboard implements the interactive inventory dashboard using
// Bubble Tea.
//
// The model composes the static catalog and stats summary with a live
// telemetry feed. It owns only view state (selection, sort order, filter,
// view mode); telemetry state stays with the feed and the catalog is never
// modified.
//
// # Layout
//
//	header       AutoStock Vision | Smart Inventory Management   ● IoT Connected
//	stats        four stat cards
//	panels       live weight monitor | device status (stacked under 80 cols)
//	inventory    product cards, 1/2/3 per row by width, or a table (t)
//	footer       key hints, sort and filter state
//
// # Live feed
//
// Init subscribes to the feed's Updates channel with a command that waits
// for the next reading. Each readingMsg updates the model and re-subscribes.
// When the channel closes a feedClosedMsg ends the subscription.
package dashboard
