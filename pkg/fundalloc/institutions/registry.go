// Package institutions holds the fund-house extraction profiles and the
// filename dispatch table.
package institutions

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/aggregate"
)

// ID identifies a fund-house extractor.
type ID string

const (
	AdityaBirla ID = "adityabirla"
	Axis        ID = "axis"
	Baroda      ID = "baroda"
	HDFC        ID = "hdfc"
	HSBC        ID = "hsbc"
	ICICI       ID = "icici"
	Mahindra    ID = "mahindra"
	Mirae       ID = "mirae"
	Shriram     ID = "shriram"
	Sundaram    ID = "sundaram"
	Tata        ID = "tata"
	UTI         ID = "uti"
)

// UnrecognizedInstitutionError reports a filename no alias matched.
type UnrecognizedInstitutionError struct {
	Filename string
}

func (e *UnrecognizedInstitutionError) Error() string {
	return fmt.Sprintf("no fund house recognized in file name %q", e.Filename)
}

// alias maps a lowercase filename substring to an extractor.
type alias struct {
	key string
	id  ID
}

// aliases is checked in order and the first hit wins. Longer spellings of
// the same house come first; "uti" is last because it is the substring most
// likely to appear by accident.
var aliases = []alias{
	{"adityabirla", AdityaBirla},
	{"aditya", AdityaBirla},
	{"birla", AdityaBirla},
	{"axis", Axis},
	{"baroda", Baroda},
	{"hdfc", HDFC},
	{"hsbc", HSBC},
	{"icici", ICICI},
	{"mahindra", Mahindra},
	{"mirae", Mirae},
	{"shriram", Shriram},
	{"sundaram", Sundaram},
	{"tata", Tata},
	{"uti", UTI},
}

var builders = map[ID]func() *aggregate.Profile{
	AdityaBirla: adityaBirlaProfile,
	Axis:        axisProfile,
	Baroda:      func() *aggregate.Profile { return standardProfile(Baroda, "Bank of Baroda BNP Paribas Mutual Fund") },
	HDFC:        hdfcProfile,
	HSBC:        hsbcProfile,
	ICICI:       iciciProfile,
	Mahindra:    mahindraProfile,
	Mirae:       func() *aggregate.Profile { return standardProfile(Mirae, "Mirae Asset Mutual Fund") },
	Shriram:     shriramProfile,
	Sundaram:    sundaramProfile,
	Tata:        func() *aggregate.Profile { return standardProfile(Tata, "Tata Mutual Fund") },
	UTI:         func() *aggregate.Profile { return standardProfile(UTI, "UTI Mutual Fund") },
}

// baseName strips any directory part, whichever separator the client used.
func baseName(filename string) string {
	if i := strings.LastIndexAny(filename, `/\`); i >= 0 {
		return filename[i+1:]
	}
	return filename
}

// Select resolves a file name to its extractor.
func Select(filename string) (ID, error) {
	name := strings.ToLower(baseName(filename))
	for _, a := range aliases {
		if strings.Contains(name, a.key) {
			return a.id, nil
		}
	}
	return "", &UnrecognizedInstitutionError{Filename: filename}
}

// Lookup returns a fresh profile for id.
func Lookup(id ID) (*aggregate.Profile, bool) {
	build, ok := builders[id]
	if !ok {
		return nil, false
	}
	return build(), true
}

// All returns every registered id, sorted.
func All() []ID {
	ids := make([]ID, 0, len(builders))
	for id := range builders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Aliases returns the filename keys that resolve to id, in match order.
func Aliases(id ID) []string {
	var keys []string
	for _, a := range aliases {
		if a.id == id {
			keys = append(keys, a.key)
		}
	}
	return keys
}
