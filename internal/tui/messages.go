package tui

import (
	"github.com/MKhiriev/driver-records/internal/form"
	"github.com/MKhiriev/driver-records/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Page names known to [RootModel].
const (
	PageList   = "list"
	PageRecord = "record"
)

// NavigateTo switches the active page. When Payload is set it is delivered to
// the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// OpenRecord asks the record page to open a form for ID. An empty ID opens
// an empty form for a new record.
type OpenRecord struct {
	ID string
}

// RecordSaved tells the list page how the last submit went.
type RecordSaved struct {
	Err error
}

type recordsLoadedMsg struct {
	records []models.Record
	err     error
}

type recordDeletedMsg struct {
	id  string
	err error
}

type serverVersionMsg struct {
	version string
	err     error
}

// formLoadedMsg and formSubmittedMsg carry the form that produced them so a
// result of an abandoned form is not applied to the current one.
type formLoadedMsg struct {
	form   *form.RecordForm
	result form.LoadResult
}

type formSubmittedMsg struct {
	form   *form.RecordForm
	result form.SubmitResult
}

type copiedMsg struct {
	id  string
	err error
}

type clearStatusMsg struct{}

// pageForRoute maps a form redirect route to a page name.
func pageForRoute(route string) string {
	if route == form.RouteCreate {
		return PageRecord
	}
	return PageList
}
