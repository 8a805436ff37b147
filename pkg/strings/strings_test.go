package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroCopyConversions(t *testing.T) {
	assert.Equal(t, "", BytesToString(nil))
	assert.Equal(t, "hello", BytesToString([]byte("hello")))

	assert.Nil(t, StringToBytes(""))
	assert.Equal(t, []byte("hello"), StringToBytes("hello"))
}

func TestClone(t *testing.T) {
	buf := []byte("mutable")
	s := Clone(BytesToString(buf))
	buf[0] = 'X'

	assert.Equal(t, "mutable", s, "clone must own its memory")
	assert.Equal(t, "", Clone(""))
}

func TestBuilder(t *testing.T) {
	b := NewBuilder(8)
	b.WriteString("pool")
	_ = b.WriteByte('-')
	n, err := b.Write([]byte("42"))

	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "pool-42", b.String())
	assert.Equal(t, 7, b.Len())

	b.Reset()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, "", b.String())
}

func TestBuilderPoolReuse(t *testing.T) {
	b := GetBuilder(Small)
	b.WriteString("scratch")
	PutBuilder(b, Small)

	// A pooled builder always comes back reset.
	b2 := GetBuilder(Small)
	assert.Equal(t, 0, b2.Len())
	PutBuilder(b2, Small)
}

func TestSprintf(t *testing.T) {
	assert.Equal(t, "no args", Sprintf("no args"))
	assert.Equal(t, "pool bullets full at 256", Sprintf("pool %s full at %d", "bullets", 256))

	// The result must survive builder reuse.
	first := Sprintf("value %d", 1)
	_ = Sprintf("value %d", 2)
	assert.Equal(t, "value 1", first)
}

func TestSizeFor(t *testing.T) {
	assert.Equal(t, Small, sizeFor(100))
	assert.Equal(t, Medium, sizeFor(2048))
	assert.Equal(t, Large, sizeFor(32*1024))
}
