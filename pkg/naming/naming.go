// SPDX-License-Identifier: MPL-2.0

package naming

import "strings"

const (
	// ElemDelim separates a block name from its element name.
	ElemDelim = "__"
	// ModDelim introduces a modifier name and separates it from its value.
	ModDelim = "_"
	// TechDelim separates the entity name from the technology tag.
	TechDelim = "."
)

type (
	// Entity is the semantic part of a component file name.
	Entity struct {
		Block   string `json:"block"`
		Elem    string `json:"elem,omitempty"`
		ModName string `json:"modName,omitempty"`
		ModVal  ModVal `json:"modVal,omitzero"`
	}

	// File is a parsed component file name: the entity plus its technology.
	File struct {
		Entity
		Tech string `json:"tech"`
	}
)

// IsElem reports whether the entity is an element of a block.
func (e Entity) IsElem() bool { return e.Elem != "" }

// IsMod reports whether the entity carries a modifier.
func (e Entity) IsMod() bool { return e.ModName != "" }

// IsValid reports whether the entity can be written as a file name and read
// back unchanged.
func (e Entity) IsValid() bool {
	if !isWord(e.Block) {
		return false
	}
	if e.Elem != "" && !isWord(e.Elem) {
		return false
	}
	if (e.ModName == "") != e.ModVal.IsZero() {
		return false
	}
	if e.ModName == "" {
		return true
	}
	if !isWord(e.ModName) {
		return false
	}
	if v, ok := e.ModVal.Value(); ok {
		return isWord(v)
	}
	return true
}

// String returns the entity name without technology, e.g. "block__elem_mod_val".
func (e Entity) String() string { return Stringify(e) }

// Stringify builds the file name stem for an entity. It is the inverse of
// ParseEntity for every entity that IsValid.
func Stringify(e Entity) string {
	var sb strings.Builder
	sb.WriteString(e.Block)
	if e.Elem != "" {
		sb.WriteString(ElemDelim)
		sb.WriteString(e.Elem)
	}
	if e.ModName != "" {
		sb.WriteString(ModDelim)
		sb.WriteString(e.ModName)
		if v, ok := e.ModVal.Value(); ok {
			sb.WriteString(ModDelim)
			sb.WriteString(v)
		}
	}
	return sb.String()
}

// Parse parses a file base name such as "block__elem_mod_val.css".
// Everything after the first dot is the technology. Names without a
// technology, and names that do not follow the grammar, are rejected.
func Parse(base string) (File, bool) {
	stem, tech, found := strings.Cut(base, TechDelim)
	if !found || stem == "" || tech == "" {
		return File{}, false
	}

	entity, ok := ParseEntity(stem)
	if !ok {
		return File{}, false
	}
	return File{Entity: entity, Tech: tech}, true
}

// ParseEntity parses an entity name without technology.
func ParseEntity(stem string) (Entity, bool) {
	blockPart, elemPart, hasElem := strings.Cut(stem, ElemDelim)

	if !hasElem {
		name, modName, modVal, ok := splitMod(blockPart)
		if !ok {
			return Entity{}, false
		}
		return Entity{Block: name, ModName: modName, ModVal: modVal}, true
	}

	// "block___mod" and "block_mod__elem" are both malformed.
	if strings.HasPrefix(elemPart, ModDelim) || !isWord(blockPart) {
		return Entity{}, false
	}

	name, modName, modVal, ok := splitMod(elemPart)
	if !ok {
		return Entity{}, false
	}
	return Entity{Block: blockPart, Elem: name, ModName: modName, ModVal: modVal}, true
}

// splitMod splits "name", "name_mod" or "name_mod_val".
func splitMod(s string) (name, modName string, modVal ModVal, ok bool) {
	parts := strings.Split(s, ModDelim)
	for _, p := range parts {
		if p == "" {
			return "", "", ModVal{}, false
		}
	}

	switch len(parts) {
	case 1:
		return parts[0], "", ModVal{}, true
	case 2:
		return parts[0], parts[1], FlagModVal(), true
	case 3:
		return parts[0], parts[1], StringModVal(parts[2]), true
	default:
		return "", "", ModVal{}, false
	}
}

// isWord reports whether s can stand alone as a name segment.
func isWord(s string) bool {
	return s != "" &&
		!strings.Contains(s, ModDelim) &&
		!strings.Contains(s, TechDelim) &&
		!strings.ContainsAny(s, `/\`)
}
