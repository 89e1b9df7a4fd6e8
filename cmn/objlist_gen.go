// Package cmn provides common constants, types, and utilities for AIS clients
// and AIS-compatible gateways.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cmn

// msgpack codec for LsoEnt and LsoRes (field keys as per the `msg` tags in objlist.go)

import (
	"github.com/tinylib/msgp/msgp"
)

// interface guards
var (
	_ msgp.Encodable = (*LsoEnt)(nil)
	_ msgp.Decodable = (*LsoEnt)(nil)
	_ msgp.Encodable = (*LsoRes)(nil)
	_ msgp.Decodable = (*LsoRes)(nil)
)

// DecodeMsg implements msgp.Decodable
func (z *LsoEnt) DecodeMsg(dc *msgp.Reader) (err error) {
	var field []byte
	_ = field
	var zb0001 uint32
	zb0001, err = dc.ReadMapHeader()
	if err != nil {
		err = msgp.WrapError(err)
		return
	}
	for zb0001 > 0 {
		zb0001--
		field, err = dc.ReadMapKeyPtr()
		if err != nil {
			err = msgp.WrapError(err)
			return
		}
		switch msgp.UnsafeString(field) {
		case "n":
			z.Name, err = dc.ReadString()
			if err != nil {
				err = msgp.WrapError(err, "Name")
				return
			}
		case "cs":
			z.Checksum, err = dc.ReadString()
			if err != nil {
				err = msgp.WrapError(err, "Checksum")
				return
			}
		case "a":
			z.Atime, err = dc.ReadString()
			if err != nil {
				err = msgp.WrapError(err, "Atime")
				return
			}
		case "v":
			z.Version, err = dc.ReadString()
			if err != nil {
				err = msgp.WrapError(err, "Version")
				return
			}
		case "t":
			z.Location, err = dc.ReadString()
			if err != nil {
				err = msgp.WrapError(err, "Location")
				return
			}
		case "m":
			z.Custom, err = dc.ReadString()
			if err != nil {
				err = msgp.WrapError(err, "Custom")
				return
			}
		case "s":
			z.Size, err = dc.ReadInt64()
			if err != nil {
				err = msgp.WrapError(err, "Size")
				return
			}
		case "c":
			z.Copies, err = dc.ReadInt16()
			if err != nil {
				err = msgp.WrapError(err, "Copies")
				return
			}
		case "f":
			z.Flags, err = dc.ReadUint16()
			if err != nil {
				err = msgp.WrapError(err, "Flags")
				return
			}
		default:
			err = dc.Skip()
			if err != nil {
				err = msgp.WrapError(err)
				return
			}
		}
	}
	return
}

// EncodeMsg implements msgp.Encodable
func (z *LsoEnt) EncodeMsg(en *msgp.Writer) (err error) {
	// check for omitted fields
	zb0001Len := uint32(9)
	var zb0001Mask uint16 /* 9 bits */
	if z.Checksum == "" {
		zb0001Len--
		zb0001Mask |= 0x2
	}
	if z.Atime == "" {
		zb0001Len--
		zb0001Mask |= 0x4
	}
	if z.Version == "" {
		zb0001Len--
		zb0001Mask |= 0x8
	}
	if z.Location == "" {
		zb0001Len--
		zb0001Mask |= 0x10
	}
	if z.Custom == "" {
		zb0001Len--
		zb0001Mask |= 0x20
	}
	if z.Size == 0 {
		zb0001Len--
		zb0001Mask |= 0x40
	}
	if z.Copies == 0 {
		zb0001Len--
		zb0001Mask |= 0x80
	}
	if z.Flags == 0 {
		zb0001Len--
		zb0001Mask |= 0x100
	}
	// variable map header, size zb0001Len
	err = en.Append(0x80 | uint8(zb0001Len))
	if err != nil {
		return
	}
	// write "n"
	err = en.Append(0xa1, 0x6e)
	if err != nil {
		return
	}
	err = en.WriteString(z.Name)
	if err != nil {
		err = msgp.WrapError(err, "Name")
		return
	}
	if (zb0001Mask & 0x2) == 0 { // if not omitted
		// write "cs"
		err = en.Append(0xa2, 0x63, 0x73)
		if err != nil {
			return
		}
		err = en.WriteString(z.Checksum)
		if err != nil {
			err = msgp.WrapError(err, "Checksum")
			return
		}
	}
	if (zb0001Mask & 0x4) == 0 { // if not omitted
		// write "a"
		err = en.Append(0xa1, 0x61)
		if err != nil {
			return
		}
		err = en.WriteString(z.Atime)
		if err != nil {
			err = msgp.WrapError(err, "Atime")
			return
		}
	}
	if (zb0001Mask & 0x8) == 0 { // if not omitted
		// write "v"
		err = en.Append(0xa1, 0x76)
		if err != nil {
			return
		}
		err = en.WriteString(z.Version)
		if err != nil {
			err = msgp.WrapError(err, "Version")
			return
		}
	}
	if (zb0001Mask & 0x10) == 0 { // if not omitted
		// write "t"
		err = en.Append(0xa1, 0x74)
		if err != nil {
			return
		}
		err = en.WriteString(z.Location)
		if err != nil {
			err = msgp.WrapError(err, "Location")
			return
		}
	}
	if (zb0001Mask & 0x20) == 0 { // if not omitted
		// write "m"
		err = en.Append(0xa1, 0x6d)
		if err != nil {
			return
		}
		err = en.WriteString(z.Custom)
		if err != nil {
			err = msgp.WrapError(err, "Custom")
			return
		}
	}
	if (zb0001Mask & 0x40) == 0 { // if not omitted
		// write "s"
		err = en.Append(0xa1, 0x73)
		if err != nil {
			return
		}
		err = en.WriteInt64(z.Size)
		if err != nil {
			err = msgp.WrapError(err, "Size")
			return
		}
	}
	if (zb0001Mask & 0x80) == 0 { // if not omitted
		// write "c"
		err = en.Append(0xa1, 0x63)
		if err != nil {
			return
		}
		err = en.WriteInt16(z.Copies)
		if err != nil {
			err = msgp.WrapError(err, "Copies")
			return
		}
	}
	if (zb0001Mask & 0x100) == 0 { // if not omitted
		// write "f"
		err = en.Append(0xa1, 0x66)
		if err != nil {
			return
		}
		err = en.WriteUint16(z.Flags)
		if err != nil {
			err = msgp.WrapError(err, "Flags")
			return
		}
	}
	return
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (z *LsoEnt) Msgsize() (s int) {
	s = 1 + 2 + msgp.StringPrefixSize + len(z.Name) + 3 + msgp.StringPrefixSize + len(z.Checksum) +
		2 + msgp.StringPrefixSize + len(z.Atime) + 2 + msgp.StringPrefixSize + len(z.Version) +
		2 + msgp.StringPrefixSize + len(z.Location) + 2 + msgp.StringPrefixSize + len(z.Custom) +
		2 + msgp.Int64Size + 2 + msgp.Int16Size + 2 + msgp.Uint16Size
	return
}

// DecodeMsg implements msgp.Decodable
func (z *LsoRes) DecodeMsg(dc *msgp.Reader) (err error) {
	var field []byte
	_ = field
	var zb0001 uint32
	zb0001, err = dc.ReadMapHeader()
	if err != nil {
		err = msgp.WrapError(err)
		return
	}
	for zb0001 > 0 {
		zb0001--
		field, err = dc.ReadMapKeyPtr()
		if err != nil {
			err = msgp.WrapError(err)
			return
		}
		switch msgp.UnsafeString(field) {
		case "UUID":
			z.UUID, err = dc.ReadString()
			if err != nil {
				err = msgp.WrapError(err, "UUID")
				return
			}
		case "ContinuationToken":
			z.ContinuationToken, err = dc.ReadString()
			if err != nil {
				err = msgp.WrapError(err, "ContinuationToken")
				return
			}
		case "Entries":
			var zb0002 uint32
			zb0002, err = dc.ReadArrayHeader()
			if err != nil {
				err = msgp.WrapError(err, "Entries")
				return
			}
			// never reuse: entries of a decoded page belong to the caller
			z.Entries = make(LsoEntries, zb0002)
			for za0001 := range z.Entries {
				if dc.IsNil() {
					err = dc.ReadNil()
					if err != nil {
						err = msgp.WrapError(err, "Entries", za0001)
						return
					}
					continue
				}
				z.Entries[za0001] = new(LsoEnt)
				err = z.Entries[za0001].DecodeMsg(dc)
				if err != nil {
					err = msgp.WrapError(err, "Entries", za0001)
					return
				}
			}
		case "Flags":
			z.Flags, err = dc.ReadUint32()
			if err != nil {
				err = msgp.WrapError(err, "Flags")
				return
			}
		default:
			err = dc.Skip()
			if err != nil {
				err = msgp.WrapError(err)
				return
			}
		}
	}
	return
}

// EncodeMsg implements msgp.Encodable
func (z *LsoRes) EncodeMsg(en *msgp.Writer) (err error) {
	// map header, size 4
	err = en.WriteMapHeader(4)
	if err != nil {
		return
	}
	err = en.WriteString("UUID")
	if err != nil {
		return
	}
	err = en.WriteString(z.UUID)
	if err != nil {
		err = msgp.WrapError(err, "UUID")
		return
	}
	err = en.WriteString("ContinuationToken")
	if err != nil {
		return
	}
	err = en.WriteString(z.ContinuationToken)
	if err != nil {
		err = msgp.WrapError(err, "ContinuationToken")
		return
	}
	err = en.WriteString("Entries")
	if err != nil {
		return
	}
	err = en.WriteArrayHeader(uint32(len(z.Entries)))
	if err != nil {
		err = msgp.WrapError(err, "Entries")
		return
	}
	for za0001 := range z.Entries {
		if z.Entries[za0001] == nil {
			err = en.WriteNil()
			if err != nil {
				return
			}
			continue
		}
		err = z.Entries[za0001].EncodeMsg(en)
		if err != nil {
			err = msgp.WrapError(err, "Entries", za0001)
			return
		}
	}
	err = en.WriteString("Flags")
	if err != nil {
		return
	}
	err = en.WriteUint32(z.Flags)
	if err != nil {
		err = msgp.WrapError(err, "Flags")
		return
	}
	return
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (z *LsoRes) Msgsize() (s int) {
	s = 1 + 5 + msgp.StringPrefixSize + len(z.UUID) + 18 + msgp.StringPrefixSize + len(z.ContinuationToken) +
		8 + msgp.ArrayHeaderSize
	for za0001 := range z.Entries {
		if z.Entries[za0001] == nil {
			s += msgp.NilSize
		} else {
			s += z.Entries[za0001].Msgsize()
		}
	}
	s += 6 + msgp.Uint32Size
	return
}
