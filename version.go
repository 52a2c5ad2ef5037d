package main

// Version of the gitrelease CLI. Overridden at build time with
// -ldflags "-X main.Version=...".
var Version = "1.0.0"
