// Package logx configures loopsmith's structured logging.
//
// This repo uses a small wrapper (logx.Logger) on top of zerolog to keep:
//   - Console output readable (short timestamp + short caller)
//   - File output JSON-structured
//
// Sinks are fixed at process start; there is no runtime reconfiguration.
package logx
