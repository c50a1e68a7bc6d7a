package model

import "fmt"

// LocationKey identifies a shooting location by name and interior/exterior type
type LocationKey struct {
	Name string       `json:"name"`
	Type LocationType `json:"type"`
}

// String renders the key slugline style, e.g. "INT. KITCHEN"
func (k LocationKey) String() string {
	return fmt.Sprintf("%s. %s", k.Type, k.Name)
}
