package backend

import (
	"bytes"
	"testing"
)

func TestWipe(t *testing.T) {
	buf := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	wipe(buf)

	if !bytes.Equal(buf, make([]byte, 4)) {
		t.Errorf("wipe left %x, want all zeros", buf)
	}
}

func TestWipe_EmptyAndNil(t *testing.T) {
	wipe([]byte{})
	wipe(nil)
}
