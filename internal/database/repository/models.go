package repository

import "time"

// OptionList is a named catalog of options.
type OptionList struct {
	ID   string
	Name string
}

// OptionRow represents one stored option. Position orders a list.
type OptionRow struct {
	ID          string
	ListID      string
	Position    int
	Text        string
	Value       string
	Description *string
	ImageSrc    *string
	Selected    bool
}

// Selection is the last option a user picked in one widget.
type Selection struct {
	Widget    string
	Index     int
	Value     string
	Text      string
	UpdatedAt time.Time
}
