/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"bytes"
	"go/build"
	"os"
	"path/filepath"
	"strings"
)

// goPath returns the current GOPATH. If the system
// has multiple GOPATHs then the first is used.
func goPath() string {
	gps := filepath.SplitList(build.Default.GOPATH)
	if len(gps) == 0 {
		return ""
	}
	return gps[0]
}

// substPathVars replaces instances of '${VARNAME}' with the value of the
// environment variable and a leading '~/' with the home directory.
// As a special case, $GOPATH is also replaced. Unknown variables are kept.
func substPathVars(path string) string {
	if strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	if !strings.Contains(path, "$") {
		return path
	}

	splits := strings.Split(path, "$")

	var buffer bytes.Buffer
	buffer.WriteString(splits[0]) // first split precedes the first $ so should always be written
	for _, s := range splits[1:] {
		// special case for GOPATH
		if strings.HasPrefix(s, "GOPATH") {
			buffer.WriteString(goPath())
			buffer.WriteString(s[6:]) // Skip "GOPATH"
			continue
		}

		if !strings.HasPrefix(s, "{") {
			// not a variable
			buffer.WriteString("$")
			buffer.WriteString(s)
			continue
		}

		endPos := strings.Index(s, "}") // not worrying about embedded '{'
		if endPos == -1 {
			// not a variable
			buffer.WriteString("$")
			buffer.WriteString(s)
			continue
		}

		subs, ok := substVar(s[1:endPos])
		if !ok {
			// not a variable
			buffer.WriteString("$")
			buffer.WriteString(s)
			continue
		}

		buffer.WriteString(subs)
		buffer.WriteString(s[endPos+1:])
	}
	return buffer.String()
}

// substVar returns the substituted variable
func substVar(v string) (s string, ok bool) {
	if v == "GOPATH" {
		return goPath(), true
	}
	return os.LookupEnv(v)
}
