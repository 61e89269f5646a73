// Package display flattens overview lines into rows with display defaults
// and renders them as a terminal table or JSON.
//
// This is the only package that substitutes defaults for absent values;
// rows are never fed back into filtering or sorting.
package display
