package domain

// Page is a 1-based window over a newest-first listing
type Page struct {
	Number int
	Size   int
}

// Offset returns the number of records to skip for this page
func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}

// TotalPages returns how many pages of the given size cover total records
func TotalPages(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}
