// Package serialization implements the .keel state-dict file format.
//
// A .keel file stores a set of named tensors:
//
//	[4 bytes]  magic "KEEL"
//	[4 bytes]  format version (uint32, little-endian)
//	[8 bytes]  JSON header length (uint64, little-endian)
//	[...]      JSON header (tensor metadata, checksum, creation info)
//	[...]      raw tensor data, concatenated in header order
//
// The header carries a SHA-256 checksum of the data section, verified on
// read. Offsets in tensor metadata are relative to the start of the data
// section.
package serialization
