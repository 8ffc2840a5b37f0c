package model

// Report summarizes the outcome of transforming one design.
type Report struct {
	Design         Path   // design file the report is about
	Changed        bool   // false on the no-directive fast path
	Shell          string // name of the module now carrying the external interface
	Wrapper        string // name of the module holding the original body
	PathsRewritten int    // paths whose locator sequence was edited
	PathsCloned    int    // paths cloned for shell-side metadata
	Err            error  // transform failure (nil on success)
}
