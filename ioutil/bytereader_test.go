/*
NAME
  bytereader_test.go

DESCRIPTION
  bytereader_test.go tests the seekable and non-seekable byte readers.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package ioutil

import "testing"

func TestByteReaderReads(t *testing.T) {
	r := NewMemReader([]byte{0x01, 0x02, 0x03, 0x04})
	v16, err := r.ReadU16(BigEndian)
	if err != nil || v16 != 0x0102 {
		t.Fatalf("ReadU16(BE) = %v, %v; want 0x0102, nil", v16, err)
	}
	_, err = r.PeekU32(BigEndian)
	if err == nil {
		t.Fatalf("PeekU32 should fail with only 2 bytes left")
	}
	if r.Left() != 2 {
		t.Fatalf("Left() = %d; want 2", r.Left())
	}
}

func TestByteReaderShortData(t *testing.T) {
	r := NewMemReader([]byte{0x01})
	if _, err := r.ReadU32(LittleEndian); err != ErrShortData {
		t.Fatalf("ReadU32 on short buffer = %v; want ErrShortData", err)
	}
}

func TestByteReaderSeekRequiresSeekable(t *testing.T) {
	mem := NewMemReader([]byte{1, 2, 3})
	if err := mem.Seek(1); err == nil {
		t.Fatal("Seek on MemReader should fail")
	}
	file := NewFileReader([]byte{1, 2, 3})
	if err := file.Seek(2); err != nil {
		t.Fatal(err)
	}
	b, err := file.ReadU8()
	if err != nil || b != 3 {
		t.Fatalf("ReadU8() after Seek(2) = %v, %v; want 3, nil", b, err)
	}
}
