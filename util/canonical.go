// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/datahighway/registryd/fault"
)

// CanonicalIPandPort - make the IP:Port canonical
//
// examples:
//   IPv4:  127.0.0.1:1234
//   IPv6:  [::1]:1234
func CanonicalIPandPort(hostPort string) (string, error) {

	host, port, err := net.SplitHostPort(strings.TrimSpace(hostPort))
	if nil != err {
		return "", fault.ErrInvalidIpAddress
	}

	IP := net.ParseIP(strings.TrimSpace(host))
	if nil == IP {
		return "", fault.ErrInvalidIpAddress
	}

	numericPort, err := strconv.Atoi(strings.TrimSpace(port))
	if nil != err || numericPort < 1 || numericPort > 65535 {
		return "", fault.ErrInvalidPortNumber
	}

	if nil != IP.To4() {
		return IP.String() + ":" + strconv.Itoa(numericPort), nil
	}
	return "[" + IP.String() + "]:" + strconv.Itoa(numericPort), nil
}

// CanonicalListen - canonical form of each listen address, "*:PORT"
// is kept for the listener to expand to all interfaces
func CanonicalListen(addresses []string) ([]string, error) {
	result := make([]string, 0, len(addresses))
	for _, a := range addresses {
		a = strings.TrimSpace(a)
		if strings.HasPrefix(a, "*:") {
			if _, err := CanonicalIPandPort("0.0.0.0" + a[1:]); nil != err {
				return nil, err
			}
			result = append(result, a)
			continue
		}
		c, err := CanonicalIPandPort(a)
		if nil != err {
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}
