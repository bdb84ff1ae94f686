package ir

// Schema constants shared by the IR and its serialized form.
const (
	// Version is the IR schema version written to every document.
	Version = "1.0"

	// UnitPx is the only unit the IR supports.
	UnitPx = "px"

	// ToolVersion is the f2c tool version reported by the CLI.
	ToolVersion = "0.1.0"
)
