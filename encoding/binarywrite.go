package encoding

import "math"

// Writers assume the buffer was sized up front and do not check bounds.

func WriteByte(buf Buffer, off int, v byte) {
	buf.Put(off, v)
}

func WriteUint32(buf Buffer, off int, order ByteOrder, v uint32) {
	for i := range 4 {
		if order == BigEndian {
			buf.Put(off+i, byte(v>>(24-8*i)))
		} else {
			buf.Put(off+i, byte(v>>(8*i)))
		}
	}
}

func WriteUint64(buf Buffer, off int, order ByteOrder, v uint64) {
	for i := range 8 {
		if order == BigEndian {
			buf.Put(off+i, byte(v>>(56-8*i)))
		} else {
			buf.Put(off+i, byte(v>>(8*i)))
		}
	}
}

func WriteFloat64(buf Buffer, off int, order ByteOrder, v float64) {
	WriteUint64(buf, off, order, math.Float64bits(v))
}
