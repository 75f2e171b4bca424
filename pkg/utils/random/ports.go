package random

import (
	"math/rand"
	"time"
)

var source int64

// PortsFromRange returns 'count' distinct random ports between 'start' and 'end'.
func PortsFromRange(start int, end int, count int) []int {
	if source == 0 {
		source = time.Now().UnixNano()
	} else {
		source++
	}
	r := rand.New(rand.NewSource(source))
	ports := map[int]struct{}{}
	for len(ports) < count {
		ports[r.Intn(end-start)+start] = struct{}{}
	}

	out := make([]int, 0, count)
	for port := range ports {
		out = append(out, port)
	}
	return out
}

// Ports return 'count' random ports in range between 22768 to 32768.
// Used by tests which start the real server.
func Ports(count int) []int {
	const lowEnd = 22768
	const highEnd = 32768
	return PortsFromRange(lowEnd, highEnd, count)
}
