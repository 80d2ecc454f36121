// Package loader reads player settings from a sandboxed Lua script or a
// YAML file. The Lua VM is discarded after loading.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"
	"gopkg.in/yaml.v3"

	"github.com/nathoo/scoundrel/engine"
	"github.com/nathoo/scoundrel/types"
)

// DefaultTitle names the dungeon when settings don't.
const DefaultTitle = "Scoundrel"

// File names looked up when Load is given a directory, in order.
var settingsFiles = []string{"settings.lua", "settings.yaml", "settings.yml"}

// Default returns the settings used when no file is given. A zero seed
// leaves the choice of seed to the caller.
func Default() *types.Settings {
	return &types.Settings{Title: DefaultTitle, MaxHP: engine.DefaultMaxHP}
}

// Load reads settings from path, which may be a .lua file, a .yaml/.yml
// file, or a directory holding one of settings.lua or settings.yaml.
// Fields the file leaves out keep their Default values.
func Load(path string) (*types.Settings, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}
	if info.IsDir() {
		path, err = findSettings(path)
		if err != nil {
			return nil, err
		}
	}

	var raw *rawSettings
	switch strings.ToLower(filepath.Ext(path)) {
	case ".lua":
		raw, err = loadLua(path)
	case ".yaml", ".yml":
		raw, err = loadYAML(path)
	default:
		return nil, fmt.Errorf("unsupported settings file %s: want .lua, .yaml or .yml", path)
	}
	if err != nil {
		return nil, err
	}

	if err := validate(raw); err != nil {
		return nil, err
	}
	return compile(raw), nil
}

func findSettings(dir string) (string, error) {
	for _, name := range settingsFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no settings file (%s) found in %s",
		strings.Join(settingsFiles, ", "), dir)
}

// loadLua executes a settings script in a sandboxed VM and collects what it
// declares.
func loadLua(path string) (*rawSettings, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("executing %s: %w", filepath.Base(path), err)
	}
	return collect(coll), nil
}

// loadYAML decodes a settings document. Unknown keys are rejected and an
// empty document yields the defaults.
func loadYAML(path string) (*rawSettings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}
	defer f.Close()

	raw := &rawSettings{}
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return raw, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	// Base library (print, type, tostring, tonumber, pairs, ipairs, etc.)
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes dangerous globals and functions.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage", "require", "module",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	// The deck is shuffled by the engine, never by scripts.
	if mathTbl := L.GetGlobal("math"); mathTbl != lua.LNil {
		if tbl, ok := mathTbl.(*lua.LTable); ok {
			tbl.RawSetString("randomseed", lua.LNil)
		}
	}
}
