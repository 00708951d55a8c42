package guard

import (
	_ "embed"
)

// confirmScript is the browser rendition of the guard. It uses DefaultMarker and
// DefaultMessage; TestScriptMatchesDefaults keeps them in sync.
//
//go:embed confirm.js
var confirmScript []byte

// ScriptPath is where the web app serves Script
const ScriptPath = "/static/js/confirm.js"

// Script returns the JavaScript that applies the guard in a browser
func Script() []byte {
	out := make([]byte, len(confirmScript))
	copy(out, confirmScript)
	return out
}
