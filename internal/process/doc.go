// Package process stops the headless browser tree started for PDF printing.
//
// Chrome spawns renderer and GPU helpers that outlive the parent when only
// the parent is killed, so cleanup targets the whole group.
package process
