package utils

// CalculateTotalPages rounds up; zero when there is nothing to page.
func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// CalculateOffset converts a 1-based page into a row offset. Pages below 1
// read from the start.
func CalculateOffset(page, perPage int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * perPage
}
