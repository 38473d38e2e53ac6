package domain

// Pull is an open pull request on the hosting platform.
// Fields are ordered to minimize memory padding.
type Pull struct {
	Title     string
	URL       string // html_url
	HeadLabel string // "owner:branch"
	HeadRef   string
	BaseRef   string
	Number    int
}

// PullSpec defines the parameters for creating a pull request.
type PullSpec struct {
	Title string
	Body  string
	Head  string // Derived review branch
	Base  string // Integration branch
}

// Issue represents a ticket on the hosting platform.
type Issue struct {
	Title  string
	Body   string
	Number int
}

// Credentials are the basic-auth credentials for the hosting platform.
type Credentials struct {
	User  string
	Token string
}
