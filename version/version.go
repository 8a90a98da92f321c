package version

// Version is the current plugin version. Overridden at build time via
// -ldflags "-X github.com/codetrail/gemini-reviewer/version.Version=x.y.z".
var Version = "0.2.0"
