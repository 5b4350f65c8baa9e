// Package server implements the MCP tool and resource registry.
//
// Every tool handler follows the same contract: arguments are validated
// before any upstream call, upstream responses are reshaped into compact
// envelopes with snake_case keys, and failures of any kind come back as an
// in-band result carrying an "error" field rather than a protocol fault.
package server
