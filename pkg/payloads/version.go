// Package payloads holds module-wide metadata for the payloads tools.
package payloads

// Version is the release version of the payloads module.
const Version = "0.1.0"
