package netutil

import (
	"net"
	"time"
)

const retries = 30

// IsListeningFunction is a function type for checking if an endpoint is accepting connections.
type IsListeningFunction func(address string, timeout time.Duration) bool

// IsListening tries to establish TCP connection to given address in a form of `ip:port`.
// It returns true when it was able to connect to given endpoint within timeout time.
func IsListening(address string, timeout time.Duration) bool {
	sleepTime := timeout / retries
	for i := 0; i < retries; i++ {
		conn, err := net.DialTimeout("tcp", address, sleepTime)
		if err != nil {
			time.Sleep(sleepTime)
			continue
		}
		conn.Close()
		return true
	}
	return false
}
