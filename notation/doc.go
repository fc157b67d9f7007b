// Package notation parses the compact textual forms used on the command
// line and in configuration files:
//
//	position   (2,1)@3      location (2,1), orientation 3
//	           (0,0)        orientation omitted → 0
//	           #5@1         keypad cell 5 = (1,1), orientation 1
//	call       wiggle(width=1, repetition=2)
//	           point        no free variables
//	order      loc-orient   or loc,orient / orient-loc / orient,loc
//	language   loc=point orient=pause(duration=1) order=orient-loc
//
// Formatting goes the other way: FormatPosition and Call.String produce text
// that parses back to the same value.
package notation
