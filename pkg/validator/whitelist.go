package validator

import (
	"log/slog"
	"reflect"

	"github.com/dmitrymomot/freshval/pkg/logger"
)

// Keys is a tree of property names. A nil subtree means "the whole value".
type Keys map[string]Keys

// Whitelist strips from the working copy every property that was not both
// navigated to with Property during this session and listed in allowed.
// Map entries are deleted; exported struct fields reachable through a
// pointer are zeroed. It does nothing in ModeNone, where the working copy
// is the caller's data.
func (e *Engine) Whitelist(allowed Keys) {
	if !e.hasWorking || !e.transforms() {
		return
	}
	e.working = e.prune(e.working, e.visited, allowed, "")
}

func (e *Engine) prune(value any, visited, allowed Keys, path string) any {
	rv := reflect.ValueOf(value)
	v := indirect(rv)
	if !v.IsValid() {
		return value
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return value
		}
		for _, k := range v.MapKeys() {
			name := k.String()
			sub, ok := e.keep(name, visited, allowed, path, name)
			if !ok {
				v.SetMapIndex(k, reflect.Value{})
				continue
			}
			if sub == nil {
				continue
			}
			child := v.MapIndex(k).Interface()
			updated := e.prune(child, visited[name], sub, joinPath(path, name))
			if nv, ok := assignable(updated, v.Type().Elem()); ok {
				v.SetMapIndex(k, nv)
			}
		}
		return value

	case reflect.Struct:
		target := v
		if !v.CanSet() {
			target = reflect.New(v.Type()).Elem()
			target.Set(v)
		}
		t := target.Type()
		for i := range t.NumField() {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			// visited fields are keyed by Go name, allowed ones by either spelling
			name := f.Name
			sub, ok := e.keep(name, visited, allowed, path, f.Name, jsonName(f))
			if !ok {
				target.Field(i).Set(reflect.Zero(f.Type))
				continue
			}
			if sub == nil {
				continue
			}
			updated := e.prune(target.Field(i).Interface(), visited[name], sub, joinPath(path, name))
			if nv, ok := assignable(updated, f.Type); ok {
				target.Field(i).Set(nv)
			}
		}
		if v.CanSet() {
			return value
		}
		return target.Interface()
	}

	return value
}

// keep reports whether the property visited as name survives, matching it
// against allowed under any of spellings, and returns the allowed subtree to
// recurse into.
func (e *Engine) keep(name string, visited, allowed Keys, path string, spellings ...string) (Keys, bool) {
	var (
		sub       Keys
		isAllowed bool
	)
	for _, s := range spellings {
		if s == "" {
			continue
		}
		if sub, isAllowed = allowed[s]; isAllowed {
			break
		}
	}
	_, wasVisited := visited[name]
	if isAllowed && wasVisited {
		return sub, true
	}
	e.logger.Debug("whitelist removed property",
		logger.Path(joinPath(path, name)),
		slog.Bool("allowed", isAllowed),
		slog.Bool("visited", wasVisited),
	)
	return nil, false
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
