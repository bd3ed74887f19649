// Package output produces deterministic, machine-readable result
// documents. Two equal batches must serialize to byte-identical JSON,
// so records are sorted before encoding and the encoder never depends
// on map iteration order.
package output
