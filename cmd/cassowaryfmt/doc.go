// SPDX-License-Identifier: MIT
//
// Command cassowaryfmt loads a declarative layout description from a
// JSON file, runs one layout pass, and prints the solved widget frames
// as JSON to stdout. It exists to let a layout be inspected and
// diffed from the command line without embedding the engine in a host
// application.
package main
