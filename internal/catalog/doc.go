// Package catalog holds the static element dataset.
//
// # Overview
//
// The dataset is a TOML document compiled into the binary (elements.toml). Each
// record carries the element's identity, display attributes and its position in
// the table. An override file with the same schema can replace it at startup.
//
// # TOML Format
//
//	elements = [
//	  { number = 1, symbol = "H", name = "Hydrogen", mass = "1.008",
//	    category = "nonmetal", config = "1s1", phase = "gas",
//	    discovered = "Henry Cavendish (1766)", period = 1, group = 1 },
//	]
//
// Inline tables must stay on one line in real files; the example is wrapped for
// reading only.
//
// # Validation
//
// Parse rejects datasets with non-positive or duplicate atomic numbers and
// duplicate symbols or names (ErrInvalidCatalog). Positions are not validated:
// a record whose position falls outside the table is simply left unplaced by
// the grid.
//
// # Categories
//
// Category is a closed set of string tags. Label maps a tag to its display
// text and falls back to the tag itself when no label exists.
package catalog
