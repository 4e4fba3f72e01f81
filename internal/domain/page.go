package domain

// PageRenderer renders a named page template with the given data.
// Implementations must insert data values as literal text, never as markup.
type PageRenderer interface {
	Render(name string, data any) ([]byte, error)
}

// RegisterPage holds data for the registration form page. FullName and Phone
// echo the visitor's input back into the form after a rejected submission.
type RegisterPage struct {
	FullName string
	Phone    string
	// Errors maps a form field name ("full_name", "phone") to the message
	// shown inline next to it.
	Errors map[string]string
}

// GuestRow is one rendered listing unit: display-formatted fields only.
type GuestRow struct {
	FullName    string
	Phone       string
	SubmittedAt string
}

// GuestsPage holds data for the listing page. An empty Guests slice renders
// the placeholder branch instead of a list.
type GuestsPage struct {
	Guests []GuestRow
	Total  int
}

// ErrorPage holds data for the page shown when a submission could not be
// persisted.
type ErrorPage struct {
	Message string
}
