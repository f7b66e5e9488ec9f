// Package types provides the wire-level primitives this repo's packet
// catalogue is built from: VarInt/VarLong, strings, UUIDs, positions,
// angles, and the generic prefixed-collection helpers in composite.go.
//
// These follow the Java Edition protocol's data type definitions:
// https://minecraft.wiki/w/Java_Edition_protocol/Data_types
package types

// ByteArray is a length-prefixed-on-the-wire byte sequence; callers decode
// it with PacketBuffer.ReadByteArray rather than a bare []byte read, since
// most protocol fields of this shape carry a VarInt length prefix.
type ByteArray = []byte
