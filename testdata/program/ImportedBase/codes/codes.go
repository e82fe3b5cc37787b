package codes

const (
	OK       = 200
	NotFound = 404
)
