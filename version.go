package rpn

// Build metadata, stamped by the release build via -ldflags.
var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)
