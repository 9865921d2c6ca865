/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package grammar

import (
	"path"
	"strings"
)

// ResolvePath builds the path of a file referenced from a spec.
// With a context directory, relative paths are joined to it. Without one,
// relative paths are prefixed with "./" unless already qualified.
// Nothing touches the filesystem.
func ResolvePath(contextDir, p string) string {
	if path.IsAbs(p) {
		return p
	}
	if contextDir != "" && contextDir != "." {
		return path.Join(contextDir, p)
	}
	if strings.HasPrefix(p, "./") || strings.HasPrefix(p, "../") {
		return p
	}
	return "./" + p
}
