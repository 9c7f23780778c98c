package model

import "time"

// BuiltinCategories is the fixed category list every install starts with.
// Custom categories are appended after these when building the selectable
// set.
var BuiltinCategories = []string{
	"Groceries",
	"Dining",
	"Transport",
	"Shopping",
	"Entertainment",
	"Health",
	"Bills",
	"Travel",
	"Other",
}

// CustomCategory is a user-defined category label. Names are not required
// to be unique; de-duplication is a UI convenience only.
type CustomCategory struct {
	CreatedAt time.Time `json:"createdAt"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
}
