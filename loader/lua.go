package loader

import (
	"github.com/nathoo/shmoopland/types"
	lua "github.com/yuin/gopher-lua"
)

// applyPack executes one Lua pack file in a sandboxed VM and merges its
// definitions into the store. Pack entries override file-based entries
// with the same ID. The VM is discarded after the file runs.
func applyPack(store *Store, path string) error {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)
	registerConstructors(L, store)

	return L.DoFile(path)
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes globals that could touch the host or break determinism.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}
	if mathTbl := L.GetGlobal("math"); mathTbl != lua.LNil {
		if tbl, ok := mathTbl.(*lua.LTable); ok {
			tbl.RawSetString("randomseed", lua.LNil)
		}
	}
}

// registerConstructors registers the content constructors as globals.
// All of them are curried: Location("id") returns a function that takes
// the definition table, so packs read as Location "id" { ... }.
func registerConstructors(L *lua.LState, store *Store) {
	L.SetGlobal("Start", L.NewFunction(func(L *lua.LState) int {
		store.Start = L.CheckString(1)
		return 0
	}))

	L.SetGlobal("Location", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			store.Locations[id] = types.Location{
				ID:          id,
				Description: getString(tbl, "description"),
				Exits:       tableToStringMap(getTable(tbl, "exits")),
			}
			return 0
		}))
		return 1
	}))

	L.SetGlobal("Item", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			store.Items[id] = types.Item{
				ID:          id,
				Description: getString(tbl, "description"),
				ExamineText: getString(tbl, "examine"),
				Lore:        getString(tbl, "lore"),
				Location:    getString(tbl, "location"),
			}
			return 0
		}))
		return 1
	}))

	L.SetGlobal("NPC", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			def := types.NPCDef{
				ID:           id,
				Location:     getString(tbl, "location"),
				Greetings:    tableToStringListMap(getTable(tbl, "greetings")),
				Responses:    tableToStringListMap(getTable(tbl, "responses")),
				Friendliness: getNumber(tbl, "friendliness"),
			}
			store.NPCs[id] = def
			return 0
		}))
		return 1
	}))

	L.SetGlobal("Quest", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			q := types.Quest{
				ID:            id,
				Title:         getString(tbl, "title"),
				Description:   getString(tbl, "description"),
				Prerequisites: tableToStringList(getTable(tbl, "prerequisites")),
				NextQuest:     getString(tbl, "next_quest"),
			}
			if objTbl := getTable(tbl, "objectives"); objTbl != nil {
				objTbl.ForEach(func(k, v lua.LValue) {
					if _, ok := k.(lua.LNumber); !ok {
						return
					}
					if ot, ok := v.(*lua.LTable); ok {
						q.Objectives = append(q.Objectives, types.Objective{
							Type:        getString(ot, "type"),
							Target:      getString(ot, "target"),
							Description: getString(ot, "description"),
						})
					}
				})
			}
			if rewTbl := getTable(tbl, "rewards"); rewTbl != nil {
				q.Rewards = types.Reward{
					Items:      tableToStringList(getTable(rewTbl, "items")),
					Experience: getInt(rewTbl, "experience"),
				}
			}
			store.Quests[id] = q
			return 0
		}))
		return 1
	}))

	L.SetGlobal("Recipe", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			store.Recipes[id] = types.Recipe{
				ID:               id,
				Name:             getString(tbl, "name"),
				Ingredients:      tableToStringList(getTable(tbl, "ingredients")),
				Result:           getString(tbl, "result"),
				Description:      getString(tbl, "description"),
				RequiredLocation: getString(tbl, "required_location"),
			}
			return 0
		}))
		return 1
	}))

	L.SetGlobal("Template", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			store.Templates[id] = tableToStringList(tbl)
			return 0
		}))
		return 1
	}))

	L.SetGlobal("Variables", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		for name, values := range tableToStringListMap(tbl) {
			store.Variables[name] = values
		}
		return 0
	}))
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getNumber returns a numeric field from a Lua table, or 0 if missing.
func getNumber(tbl *lua.LTable, key string) float64 {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return float64(n)
	}
	return 0
}

// getInt returns an int field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	return int(getNumber(tbl, key))
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	if t, ok := tbl.RawGetString(key).(*lua.LTable); ok {
		return t
	}
	return nil
}

// tableToStringMap converts a Lua table to a map[string]string.
func tableToStringMap(tbl *lua.LTable) map[string]string {
	if tbl == nil {
		return nil
	}
	m := map[string]string{}
	tbl.ForEach(func(k, v lua.LValue) {
		if ks, ok := k.(lua.LString); ok {
			if vs, ok := v.(lua.LString); ok {
				m[string(ks)] = string(vs)
			}
		}
	})
	return m
}

// tableToStringList converts a Lua array table to a []string.
func tableToStringList(tbl *lua.LTable) []string {
	if tbl == nil {
		return nil
	}
	var out []string
	for i := 1; i <= tbl.MaxN(); i++ {
		if s, ok := tbl.RawGetInt(i).(lua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out
}

// tableToStringListMap converts a Lua table of array tables to a
// map[string][]string.
func tableToStringListMap(tbl *lua.LTable) map[string][]string {
	if tbl == nil {
		return nil
	}
	m := map[string][]string{}
	tbl.ForEach(func(k, v lua.LValue) {
		ks, ok := k.(lua.LString)
		if !ok {
			return
		}
		if vt, ok := v.(*lua.LTable); ok {
			m[string(ks)] = tableToStringList(vt)
		}
	})
	return m
}
