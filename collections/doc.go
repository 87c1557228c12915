// Package collections groups strings that differ only by an embedded number
// into compact numbered sequences, and converts those sequences to and from a
// short textual notation.
//
// # Overview
//
// A [Collection] describes every item of the form head + numeral + tail,
// where the numeral is an integer index optionally zero-padded to a fixed
// width:
//
//	c := collections.New("frame.", ".exr", 4, 1, 2, 3, 10)
//	c.Items()  // → [frame.0001.exr frame.0002.exr frame.0003.exr frame.0010.exr]
//	c.Format() // → "frame.%04d.exr [1-3, 10]"
//
// # Assembling
//
// [Assemble] scans arbitrary strings and returns the collections they form
// together with the items that did not fit anywhere:
//
//	cols, remainder, err := collections.Assemble(
//	    []string{"a.0999.exr", "a.1000.exr", "a.1001.exr", "readme.txt"},
//	    collections.DefaultAssembleOptions(),
//	)
//	// cols      → [a.%04d.exr [999-1001]]
//	// remainder → [readme.txt]
//
// Items sitting on a padding boundary (0999 → 1000) are merged into the
// padded sequence. When the same run could equally be read as padded or
// unpadded, [AssembleOptions.AssumePaddedWhenAmbiguous] picks the reading.
//
// # Parsing and formatting
//
// [Collection.Format] renders a template made of the placeholders {head},
// {tail}, {padding}, {range}, {ranges} and {holes}; [Parse] is its inverse:
//
//	c, err := collections.Parse("frame.%04d.exr [1-3, 10]")
//
// # Errors
//
// Membership violations surface as [*CollectionError], which unwraps to
// [ErrNoMatch], [ErrNotPresent] or [ErrIncompatible]. A template that does not
// fit its value yields [ErrValueMismatch]; a malformed assembly pattern yields
// [ErrInvalidPattern].
package collections
