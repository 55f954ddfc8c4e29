//go:build tools
// +build tools

package ball

import (
	_ "golang.org/x/tools/cmd/stringer"
)
