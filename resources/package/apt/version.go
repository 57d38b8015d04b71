// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package apt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	regexEpoch           = `(?:([0-9]+):)?`
	regexUpstreamVersion = `([\.\+~0-9a-zA-Z-]+?)`
	regexDebianRevision  = `(?:-([\.\+~0-9a-zA-Z]*))?`
)

var (
	versionFullRx = regexp.MustCompile(`\A` + regexEpoch + regexUpstreamVersion + regexDebianRevision + `\z`)
	digitsRx      = regexp.MustCompile(`^([0-9]+)`)
	nonLettersRx  = regexp.MustCompile(`^([.+-]+)`)
	tildesRx      = regexp.MustCompile(`^(~+)`)
	lettersRx     = regexp.MustCompile(`^([A-Za-z]+)`)
)

// Version represents a parsed Debian package version
type Version struct {
	Epoch           int
	UpstreamVersion string
	DebianRevision  string
}

// ParseVersion parses a Debian version string into its components
func ParseVersion(ver string) (*Version, error) {
	if ver == "" {
		return nil, fmt.Errorf("unable to parse empty string as a debian version identifier")
	}

	matches := versionFullRx.FindStringSubmatch(ver)
	if matches == nil {
		return nil, fmt.Errorf("unable to parse %q as a debian version identifier", ver)
	}

	epoch := 0
	if matches[1] != "" {
		var err error
		epoch, err = strconv.Atoi(matches[1])
		if err != nil {
			return nil, fmt.Errorf("unable to parse epoch %q: %w", matches[1], err)
		}
	}

	return &Version{
		Epoch:           epoch,
		UpstreamVersion: matches[2],
		DebianRevision:  matches[3],
	}, nil
}

// String returns the version as a string
func (v *Version) String() string {
	s := v.UpstreamVersion
	if v.Epoch != 0 {
		s = fmt.Sprintf("%d:%s", v.Epoch, s)
	}
	if v.DebianRevision != "" {
		s = fmt.Sprintf("%s-%s", s, v.DebianRevision)
	}
	return s
}

// Compare compares two versions and returns:
// -1 if v < other
//
//	0 if v == other
//	1 if v > other
func (v *Version) Compare(other *Version) int {
	if other == nil {
		return 1
	}

	cmp := compareInt(v.Epoch, other.Epoch)
	if cmp != 0 {
		return cmp
	}

	cmp = compareDebianVersions(v.UpstreamVersion, other.UpstreamVersion)
	if cmp != 0 {
		return cmp
	}

	return compareDebianVersions(v.DebianRevision, other.DebianRevision)
}

// CompareVersionStrings compares two version strings directly
// Returns -1 if a < b, 0 if a == b, 1 if a > b
// Returns an error if either version string is invalid
func CompareVersionStrings(a, b string) (int, error) {
	va, err := ParseVersion(a)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", a, err)
	}

	vb, err := ParseVersion(b)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", b, err)
	}

	return va.Compare(vb), nil
}

func compareInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// compareDebianVersions implements the Debian version comparison
// algorithm, alternating lexical comparison of non-digit runs with
// numerical comparison of digit runs, with tildes sorting before
// anything including the end of a part
func compareDebianVersions(mine, yours string) int {
	mineIdx := 0
	yoursIdx := 0
	cmp := 0

	for mineIdx < len(mine) && yoursIdx < len(yours) && cmp == 0 {
		myTildes := tildesRx.FindString(mine[mineIdx:])
		yoursTildes := tildesRx.FindString(yours[yoursIdx:])

		// more tildes means an earlier version
		cmp = -1 * compareInt(len(myTildes), len(yoursTildes))
		mineIdx += len(myTildes)
		yoursIdx += len(yoursTildes)

		if cmp != 0 {
			continue
		}

		myLetters := lettersRx.FindString(mine[mineIdx:])
		yoursLetters := lettersRx.FindString(yours[yoursIdx:])

		cmp = strings.Compare(myLetters, yoursLetters)
		mineIdx += len(myLetters)
		yoursIdx += len(yoursLetters)

		if cmp != 0 {
			continue
		}

		myNonLetters := nonLettersRx.FindString(mine[mineIdx:])
		yoursNonLetters := nonLettersRx.FindString(yours[yoursIdx:])

		cmp = strings.Compare(myNonLetters, yoursNonLetters)
		mineIdx += len(myNonLetters)
		yoursIdx += len(yoursNonLetters)

		if cmp != 0 {
			continue
		}

		myDigits := digitsRx.FindString(mine[mineIdx:])
		yoursDigits := digitsRx.FindString(yours[yoursIdx:])

		myNum := 0
		if myDigits != "" {
			myNum, _ = strconv.Atoi(myDigits)
		}
		yoursNum := 0
		if yoursDigits != "" {
			yoursNum, _ = strconv.Atoi(yoursDigits)
		}

		cmp = compareInt(myNum, yoursNum)
		mineIdx += len(myDigits)
		yoursIdx += len(yoursDigits)
	}

	if cmp == 0 {
		if mineIdx < len(mine) && tildesRx.FindString(mine[mineIdx:]) != "" {
			cmp = -1
		} else if yoursIdx < len(yours) && tildesRx.FindString(yours[yoursIdx:]) != "" {
			cmp = 1
		} else {
			cmp = compareInt(len(mine), len(yours))
		}
	}

	return cmp
}
