/*
NAME
  bitreader_test.go

DESCRIPTION
  bitreader_test.go tests the MSB/LSB bit reader.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package ioutil

import "testing"

func TestBitReaderMSB(t *testing.T) {
	// 0x8f, 0xe3 = 1000 1111, 1110 0011, matching the worked example in
	// codec/h264/h264dec/bits.BitReader's doc comment.
	br := NewBitReader([]byte{0x8f, 0xe3}, MSB)

	if v, err := br.Read(4); err != nil || v != 0x8 {
		t.Fatalf("Read(4) = %v, %v; want 0x8, nil", v, err)
	}
	if v, err := br.Read(2); err != nil || v != 0x3 {
		t.Fatalf("Read(2) = %v, %v; want 0x3, nil", v, err)
	}
	if v, err := br.Read(4); err != nil || v != 0xf {
		t.Fatalf("Read(4) = %v, %v; want 0xf, nil", v, err)
	}
	if v, err := br.Read(6); err != nil || v != 0x23 {
		t.Fatalf("Read(6) = %v, %v; want 0x23, nil", v, err)
	}
	if br.Left() != 0 {
		t.Fatalf("Left() = %d; want 0", br.Left())
	}
	if _, err := br.Read(1); err != ErrBitstreamEnd {
		t.Fatalf("Read past end = %v; want ErrBitstreamEnd", err)
	}
}

func TestBitReaderPeekThenSkipEqualsRead(t *testing.T) {
	src := []byte{0x5b, 0xbc, 0x12, 0x34}
	for _, mode := range []BitMode{MSB, LSB} {
		for n := 1; n <= 17; n++ {
			a := NewBitReader(src, mode)
			peeked, err := a.Peek(n)
			if err != nil {
				t.Fatalf("mode %v n %d: Peek error %v", mode, n, err)
			}
			if err := a.Skip(n); err != nil {
				t.Fatalf("mode %v n %d: Skip error %v", mode, n, err)
			}

			b := NewBitReader(src, mode)
			read, err := b.Read(n)
			if err != nil {
				t.Fatalf("mode %v n %d: Read error %v", mode, n, err)
			}
			if peeked != read {
				t.Fatalf("mode %v n %d: peek+skip = %d, read = %d", mode, n, peeked, read)
			}
			if a.Tell() != b.Tell() {
				t.Fatalf("mode %v n %d: Tell mismatch %d vs %d", mode, n, a.Tell(), b.Tell())
			}
		}
	}
}

func TestBitReaderReadSSignExtends(t *testing.T) {
	// 4-bit field 0b1000 sign-extends to -8 when read signed.
	br := NewBitReader([]byte{0x80}, MSB)
	v, err := br.ReadS(4)
	if err != nil {
		t.Fatal(err)
	}
	if v != -8 {
		t.Fatalf("ReadS(4) = %d; want -8", v)
	}
}

func TestBitReaderSeekAndAlign(t *testing.T) {
	br := NewBitReader([]byte{0xff, 0x00}, MSB)
	if err := br.Seek(3); err != nil {
		t.Fatal(err)
	}
	if br.Tell() != 3 {
		t.Fatalf("Tell() = %d; want 3", br.Tell())
	}
	br.Align()
	if br.Tell() != 8 {
		t.Fatalf("Align() landed at %d; want 8", br.Tell())
	}
}

func TestBitReaderLSB(t *testing.T) {
	// LSB mode packs the first-read bit into bit 0 of each byte.
	br := NewBitReader([]byte{0b0000_0101}, LSB)
	if v, err := br.Read(1); err != nil || v != 1 {
		t.Fatalf("Read(1) = %v, %v; want 1, nil", v, err)
	}
	if v, err := br.Read(1); err != nil || v != 0 {
		t.Fatalf("Read(1) = %v, %v; want 0, nil", v, err)
	}
	if v, err := br.Read(1); err != nil || v != 1 {
		t.Fatalf("Read(1) = %v, %v; want 1, nil", v, err)
	}
}
