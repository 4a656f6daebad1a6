package source

// Kind of the input detected from its content.
// ENUM(text, xml, zip)
type Kind int
