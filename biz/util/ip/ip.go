package ip

import (
	"encoding/hex"
	"net"
	"sync"
)

var (
	hostHexOnce sync.Once
	hostHex     string
)

// IPv4Hex returns the first non-loopback IPv4 address of the host as 8 hex
// digits, or "00000000" when none is found. The lookup runs once.
func IPv4Hex() string {
	hostHexOnce.Do(func() {
		hostHex = "00000000"
		if ipv4 := firstIPv4(); ipv4 != nil {
			hostHex = hex.EncodeToString(ipv4)
		}
	})
	return hostHex
}

func firstIPv4() net.IP {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return nil
	}

	for _, addr := range addrs {
		if ipNet, ok := addr.(*net.IPNet); ok && !ipNet.IP.IsLoopback() {
			if ipv4 := ipNet.IP.To4(); ipv4 != nil {
				return ipv4
			}
		}
	}
	return nil
}
