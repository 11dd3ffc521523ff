package lint

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// IsPinned reports whether a package argument carries an explicit version
// specifier: an `@` after the name, e.g. "eslint@8.50.0". Scoped packages
// use `@scope/name@version`; the leading scope `@` is not a specifier.
//
// In strict mode the specifier must also parse as a semver version or
// constraint, so "pkg@latest" and dist-tags do not count as pins.
func IsPinned(arg string, strict bool) bool {
	name := arg
	if strings.HasPrefix(name, "@") {
		// Scoped package: look past "@scope/".
		slash := strings.Index(name, "/")
		if slash < 0 {
			return false
		}
		name = name[slash+1:]
	}
	at := strings.LastIndex(name, "@")
	if at <= 0 || at == len(name)-1 {
		return false
	}
	if !strict {
		return true
	}
	_, err := semver.NewConstraint(name[at+1:])
	return err == nil
}
