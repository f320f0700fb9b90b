package core

import (
	"sort"
	"strings"

	pep440 "github.com/aquasecurity/go-pep440-version"
	debversion "github.com/knqyf263/go-deb-version"
)

// versionCache memoizes parsed version directory names so sorting does
// not re-parse them on every comparison. Failed parses are cached too.
type versionCache struct {
	pep    map[string]pep440.Version
	pepErr map[string]bool
	deb    map[string]debversion.Version
	debErr map[string]bool
}

func newVersionCache() *versionCache {
	return &versionCache{
		pep:    map[string]pep440.Version{},
		pepErr: map[string]bool{},
		deb:    map[string]debversion.Version{},
		debErr: map[string]bool{},
	}
}

func (c *versionCache) pepVersion(value string) (pep440.Version, bool) {
	if parsed, ok := c.pep[value]; ok {
		return parsed, true
	}
	if c.pepErr[value] {
		return pep440.Version{}, false
	}
	parsed, err := pep440.Parse(value)
	if err != nil {
		c.pepErr[value] = true
		return pep440.Version{}, false
	}
	c.pep[value] = parsed
	return parsed, true
}

func (c *versionCache) debVersion(value string) (debversion.Version, bool) {
	if parsed, ok := c.deb[value]; ok {
		return parsed, true
	}
	if c.debErr[value] {
		return debversion.Version{}, false
	}
	parsed, err := debversion.NewVersion(value)
	if err != nil {
		c.debErr[value] = true
		return debversion.Version{}, false
	}
	c.deb[value] = parsed
	return parsed, true
}

// compare orders two framework version names: PEP 440 when both parse,
// then Debian version ordering, then plain string order.
func (c *versionCache) compare(a string, b string) int {
	if v1, ok := c.pepVersion(a); ok {
		if v2, ok := c.pepVersion(b); ok {
			if cmp := v1.Compare(v2); cmp != 0 {
				return cmp
			}
			return strings.Compare(a, b)
		}
	}
	if v1, ok := c.debVersion(a); ok {
		if v2, ok := c.debVersion(b); ok {
			if cmp := v1.Compare(v2); cmp != 0 {
				return cmp
			}
			return strings.Compare(a, b)
		}
	}
	return strings.Compare(a, b)
}

// CurrentVersion picks the version directory that Versions/Current should
// point at. The collector normally supplies a single version; with several,
// the highest one wins.
func CurrentVersion(names []string) string {
	if len(names) == 0 {
		return ""
	}
	ordered := append([]string(nil), names...)
	cache := newVersionCache()
	sort.SliceStable(ordered, func(i, j int) bool {
		return cache.compare(ordered[i], ordered[j]) < 0
	})
	return ordered[len(ordered)-1]
}
