// Package tools contains MCP tool implementations for result validation.
package tools

// MIME type constant.
const MimeJSON = "application/json"
