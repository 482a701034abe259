// Package timetext renders instants and durations as short English captions.
//
// All formatting is tiered: each function picks the coarsest unit pair that
// still reads naturally at the given magnitude, so callers never branch on
// duration size themselves. Functions taking an explicit reference instant are
// pure; Ago is the single convenience that consults the system clock.
package timetext
