package detector

// Format describes a candidate timestamp layout.
type Format struct {
	// Name is a human-readable format name.
	Name string `json:"name"`

	// Layout is the Go time layout used for parsing.
	Layout string `json:"layout"`
}

// KnownFormats lists the timestamp layouts detection tries, most common
// first. Order matters: on equal match counts the earlier format wins.
func KnownFormats() []Format {
	return []Format{
		{Name: "RFC 3339", Layout: "2006-01-02T15:04:05Z07:00"},
		{Name: "ISO 8601 without timezone", Layout: "2006-01-02T15:04:05"},
		{Name: "Space-separated datetime", Layout: "2006-01-02 15:04:05"},
		{Name: "Space-separated datetime with offset", Layout: "2006-01-02 15:04:05 -0700"},
		{Name: "Date only", Layout: "2006-01-02"},
	}
}
