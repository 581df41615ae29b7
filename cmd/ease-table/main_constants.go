package main

// Default command-line flag values
const (
	defaultSamples = 64 // Rows in the printed table
	minSamples     = 2  // Smallest table that spans the domain
)

// Explicit curve spec format
const (
	bezierComponents = 4 // x1,y1,x2,y2
)

// Demo output layout
const (
	demoRows = 11 // 0.0 to 1.0 in steps of 0.1
)
