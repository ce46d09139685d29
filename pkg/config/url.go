/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"strings"

	"github.com/hyperledger/fabric-sdk-go/pkg/common/logging"

	"github.com/sdnml/fabwallet/pkg/status"
)

var logger = logging.NewLogger("fabwallet/config")

// isTLSEnabled expects a URL and verifies if it has an https prefix
func isTLSEnabled(url string) bool {
	return strings.HasPrefix(strings.ToLower(url), "https://")
}

// checkCAURL rejects CA URLs without an http or https scheme. A TLS URL
// without a CA root certificate relies on the system certificate pool.
func checkCAURL(url, tlsCertPath string) error {
	lower := strings.ToLower(url)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return status.Errorf(status.ConfigStatus, status.InvalidConfig, "CA URL '%s' must start with http:// or https://", url)
	}
	if isTLSEnabled(url) && tlsCertPath == "" {
		logger.Warnf("no CA TLS certificate configured for %s, using the system certificate pool", url)
	}
	return nil
}
