package pagination

import "strconv"

// Page 一页的元信息：页码、总页数、偏移量与前后页标记
type Page struct {
	Number      int  `json:"number"`
	Size        int  `json:"size"`
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	Offset      int  `json:"-"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

// Resolve 将请求里的页码参数解析为合法页。
// 规则：缺失/非数字/小于 1 回落到第 1 页；超出末页夹取到末页；空集合视为单一空页。
func Resolve(raw string, totalItems, pageSize int) Page {
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	number := 1
	if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
		number = n
	}
	if number > totalPages {
		number = totalPages
	}

	return Page{
		Number:      number,
		Size:        pageSize,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		Offset:      (number - 1) * pageSize,
		HasPrevious: number > 1,
		HasNext:     number < totalPages,
	}
}
