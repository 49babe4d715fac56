package main

// NewLogger exposes newLogger for tests.
var NewLogger = newLogger
