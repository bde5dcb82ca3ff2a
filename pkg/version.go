package pkg

// Version is the envloom version, overridden at build time via ldflags
var Version = "dev"
