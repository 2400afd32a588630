package flows

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUdpFlowClientServerDirections(t *testing.T) {
	cl, sv := testEndpoints()
	f := NewUdpFlow(cl, sv, true)

	c2s := f.ClientMessage([]byte("hi"), 0, false)
	content := c2s.IntoPacket().Buf.Content()
	assert.Equal(t, cl.Sock4.IP, [4]byte{content[12], content[13], content[14], content[15]})
	assert.Equal(t, sv.Sock4.IP, [4]byte{content[16], content[17], content[18], content[19]})

	f2 := NewUdpFlow(cl, sv, true)
	s2c := f2.ServerMessage([]byte("yo"), 0, false)
	content2 := s2c.IntoPacket().Buf.Content()
	assert.Equal(t, sv.Sock4.IP, [4]byte{content2[12], content2[13], content2[14], content2[15]})
	assert.Equal(t, cl.Sock4.IP, [4]byte{content2[16], content2[17], content2[18], content2[19]})
}

func TestUdpFlowFragmentOffsetApplied(t *testing.T) {
	cl, sv := testEndpoints()
	f := NewUdpFlow(cl, sv, true)
	d := f.ClientMessage([]byte("hi"), 5, false)
	content := d.IntoPacket().Buf.Content()
	rawFragOff := uint16(content[6])<<8 | uint16(content[7])
	assert.Equal(t, uint16(5), rawFragOff&0x1fff)
}
