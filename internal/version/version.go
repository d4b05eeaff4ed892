package version

// AppVersion is overridden at build time with -ldflags "-X bfctl/internal/version.AppVersion=...".
var AppVersion = "0.3.0"
