package encoding

import (
	"math"

	"github.com/hangxie/citygeom/common"
)

// ByteOrder values match the WKB byte order flag.
type ByteOrder byte

const (
	BigEndian    ByteOrder = 0
	LittleEndian ByteOrder = 1
)

func (o ByteOrder) String() string {
	switch o {
	case BigEndian:
		return "big-endian"
	case LittleEndian:
		return "little-endian"
	default:
		return "invalid"
	}
}

func checkRange(buf Buffer, off, n int) error {
	if off < 0 || off+n > buf.Len() {
		return common.Malformed("truncated buffer: need %d bytes at offset %d, have %d", n, off, buf.Len())
	}
	return nil
}

func ReadByte(buf Buffer, off int) (byte, error) {
	if err := checkRange(buf, off, 1); err != nil {
		return 0, err
	}
	return buf.Get(off), nil
}

func ReadUint32(buf Buffer, off int, order ByteOrder) (uint32, error) {
	if err := checkRange(buf, off, 4); err != nil {
		return 0, err
	}
	if order == BigEndian {
		return uint32(buf.Get(off+3)) |
			uint32(buf.Get(off+2))<<8 |
			uint32(buf.Get(off+1))<<16 |
			uint32(buf.Get(off+0))<<24, nil
	}
	return uint32(buf.Get(off+0)) |
		uint32(buf.Get(off+1))<<8 |
		uint32(buf.Get(off+2))<<16 |
		uint32(buf.Get(off+3))<<24, nil
}

func ReadUint64(buf Buffer, off int, order ByteOrder) (uint64, error) {
	if err := checkRange(buf, off, 8); err != nil {
		return 0, err
	}
	var v uint64
	for i := range 8 {
		if order == BigEndian {
			v |= uint64(buf.Get(off+i)) << (56 - 8*i)
		} else {
			v |= uint64(buf.Get(off+i)) << (8 * i)
		}
	}
	return v, nil
}

// ReadFloat64 reads an IEEE-754 double.
func ReadFloat64(buf Buffer, off int, order ByteOrder) (float64, error) {
	bits, err := ReadUint64(buf, off, order)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}
