package netutil

import (
	"net"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestIsListening(t *testing.T) {
	Convey("When a TCP listener is open", t, func() {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		So(err, ShouldBeNil)
		address := listener.Addr().String()

		Convey("IsListening should report it", func() {
			So(IsListening(address, time.Second), ShouldBeTrue)
		})

		Convey("After close IsListening should give up within timeout", func() {
			listener.Close()
			So(IsListening(address, 300*time.Millisecond), ShouldBeFalse)
		})

		Reset(func() { listener.Close() })
	})
}
