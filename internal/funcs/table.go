package funcs

import "fmt"

// table is the immutable lookup structure behind a Registry.
//
// Every canonical key (primary name or alias) maps to its Definition so that
// alias lookups cost the same as primary lookups. keys keeps insertion order
// for listing: a primary name followed by its aliases.
type table struct {
	keys    []string
	defs    map[string]Definition
	aliases map[string]string // alias -> primary name
}

// newTable builds the table from defs in order. It fails on the first key
// claimed by two different definitions.
func newTable(defs []Definition) (*table, error) {
	t := &table{
		defs:    make(map[string]Definition, len(defs)*2),
		aliases: make(map[string]string),
	}

	for _, d := range defs {
		if err := checkDefinition(d); err != nil {
			return nil, err
		}
		d.Aliases = append([]string(nil), d.Aliases...)

		if existing, ok := t.defs[d.Name]; ok {
			if owner, isAlias := t.aliases[d.Name]; isAlias {
				return nil, aliasConflict(d.Name, owner, d.Name)
			}
			return nil, &ConfigError{
				Code:        ErrCodeDuplicateFunction,
				Key:         d.Name,
				Existing:    existing.Name,
				Conflicting: d.Name,
			}
		}
		t.insert(d.Name, d)

		for _, alias := range d.Aliases {
			if owner, ok := t.aliases[alias]; ok {
				if owner == d.Name {
					continue // listed twice on the same definition
				}
				return nil, aliasConflict(alias, owner, d.Name)
			}
			if existing, ok := t.defs[alias]; ok {
				if existing.Name == d.Name {
					continue // alias repeats the primary name
				}
				return nil, aliasConflict(alias, existing.Name, d.Name)
			}
			t.aliases[alias] = d.Name
			t.insert(alias, d)
		}
	}

	return t, nil
}

func (t *table) insert(key string, d Definition) {
	t.keys = append(t.keys, key)
	t.defs[key] = d
}

// get returns the definition registered under a canonical key.
func (t *table) get(key string) (Definition, bool) {
	d, ok := t.defs[key]
	return d, ok
}

func (t *table) contains(key string) bool {
	_, ok := t.defs[key]
	return ok
}

// concreteName returns the primary name for a known alias and key itself
// otherwise. The result is not guaranteed to be registered.
func (t *table) concreteName(key string) string {
	if primary, ok := t.aliases[key]; ok {
		return primary
	}
	return key
}

func checkDefinition(d Definition) error {
	if d.Name == "" {
		return &ConfigError{
			Code:    ErrCodeInvalidDefinition,
			Message: fmt.Sprintf("function definition of type [%s] has no name", d.Kind),
		}
	}
	if !d.Builder.Valid() {
		return &ConfigError{
			Code:    ErrCodeInvalidDefinition,
			Key:     d.Name,
			Message: fmt.Sprintf("function [%s] has no builder", d.Name),
		}
	}
	for _, alias := range d.Aliases {
		if alias == "" {
			return &ConfigError{
				Code:    ErrCodeInvalidDefinition,
				Key:     d.Name,
				Message: fmt.Sprintf("function [%s] has a blank alias", d.Name),
			}
		}
	}
	return nil
}

func aliasConflict(alias, existing, conflicting string) *ConfigError {
	return &ConfigError{
		Code:        ErrCodeAliasConflict,
		Key:         alias,
		Existing:    existing,
		Conflicting: conflicting,
	}
}
