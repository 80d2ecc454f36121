package loader

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/scoundrel/types"
)

// rawSettings is a settings file before validation. MaxHP is a pointer so
// an explicit zero can be told apart from a missing value.
type rawSettings struct {
	Title    string            `yaml:"title"`
	MaxHP    *int              `yaml:"max_hp"`
	Seed     int64             `yaml:"seed"`
	Monsters map[string]string `yaml:"monsters"`

	// Lua only.
	unknown    []string
	duplicates []string
	badTypes   []string
}

var knownSettings = map[string]bool{"title": true, "max_hp": true, "seed": true}

// collect converts the tables gathered from a script into rawSettings.
func collect(coll *collector) *rawSettings {
	raw := &rawSettings{}

	for _, name := range []string{"Settings", "Monsters"} {
		if coll.calls[name] > 1 {
			raw.duplicates = append(raw.duplicates, name)
		}
	}

	if tbl := coll.settings; tbl != nil {
		raw.Title = getString(tbl, "title")
		if n, ok := raw.wholeNumber(tbl, "max_hp"); ok {
			hp := int(n)
			raw.MaxHP = &hp
		}
		if n, ok := raw.wholeNumber(tbl, "seed"); ok {
			raw.Seed = n
		}
		tbl.ForEach(func(k, _ lua.LValue) {
			if !knownSettings[k.String()] {
				raw.unknown = append(raw.unknown, k.String())
			}
		})
		sort.Strings(raw.unknown)
	}

	if tbl := coll.monsters; tbl != nil {
		raw.Monsters = map[string]string{}
		tbl.ForEach(func(k, v lua.LValue) {
			if s, ok := v.(lua.LString); ok {
				raw.Monsters[k.String()] = string(s)
			} else {
				raw.badTypes = append(raw.badTypes,
					fmt.Sprintf("monster %s: name must be a string, got %s", k.String(), v.Type()))
			}
		})
	}
	return raw
}

// wholeNumber reads an integer setting. A missing key reports false; a
// value that is not a whole number is recorded as a type error.
func (raw *rawSettings) wholeNumber(tbl *lua.LTable, key string) (int64, bool) {
	v := tbl.RawGetString(key)
	if v == lua.LNil {
		return 0, false
	}
	n, ok := v.(lua.LNumber)
	if !ok {
		raw.badTypes = append(raw.badTypes, fmt.Sprintf("%s must be a number, got %s", key, v.Type()))
		return 0, false
	}
	f := float64(n)
	if math.IsInf(f, 0) || f != math.Trunc(f) {
		raw.badTypes = append(raw.badTypes, fmt.Sprintf("%s must be a whole number, got %s", key, n.String()))
		return 0, false
	}
	return int64(f), true
}

// compile merges validated rawSettings over the defaults.
func compile(raw *rawSettings) *types.Settings {
	s := Default()
	if raw.Title != "" {
		s.Title = raw.Title
	}
	if raw.MaxHP != nil {
		s.MaxHP = *raw.MaxHP
	}
	s.Seed = raw.Seed

	if len(raw.Monsters) > 0 {
		s.MonsterNames = make(map[string]string, len(raw.Monsters))
		for key, name := range raw.Monsters {
			rank, _ := normalizeRank(key)
			s.MonsterNames[rank] = name
		}
	}
	return s
}

// normalizeRank maps a monster key to a card rank. Keys are a value from 2
// to 14 or a face letter; 11 to 14 become J, Q, K and A.
func normalizeRank(key string) (string, bool) {
	key = strings.ToUpper(strings.TrimSpace(key))
	switch key {
	case "J", "Q", "K", "A":
		return key, true
	}
	n, err := strconv.Atoi(key)
	if err != nil || n < 2 || n > 14 {
		return "", false
	}
	if n > 10 {
		return [...]string{"J", "Q", "K", "A"}[n-11], true
	}
	return strconv.Itoa(n), true
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}
