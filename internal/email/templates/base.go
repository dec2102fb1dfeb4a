package templates

import (
	_ "embed"
)

//go:embed contact.html
var contactHTML string

//go:embed quote.html
var quoteHTML string
