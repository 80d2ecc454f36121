package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// collector accumulates definitions while a settings script runs.
type collector struct {
	settings *lua.LTable
	monsters *lua.LTable
	calls    map[string]int
}

func (c *collector) record(name string) {
	if c.calls == nil {
		c.calls = map[string]int{}
	}
	c.calls[name]++
}

// registerAPI registers the settings constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Settings { max_hp = 20, seed = 7, title = "..." }
	L.SetGlobal("Settings", L.NewFunction(func(L *lua.LState) int {
		coll.settings = L.CheckTable(1)
		coll.record("Settings")
		return 0
	}))

	// Monsters { [2] = "Goblin", J = "Jack", ... }
	L.SetGlobal("Monsters", L.NewFunction(func(L *lua.LState) int {
		coll.monsters = L.CheckTable(1)
		coll.record("Monsters")
		return 0
	}))
}
