package meta

// Version is overridden at build time via -ldflags "-X".
var Version = "v0.1.0"
