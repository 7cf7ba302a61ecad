package utils

// Pagination normalizes page/pageSize query values and derives the offset.
func Pagination(page, pageSize int) (int, int, int) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize
	return page, pageSize, offset
}

// TotalPages is the page count for totalData rows at pageSize rows per page.
func TotalPages(totalData, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return (totalData + pageSize - 1) / pageSize
}
