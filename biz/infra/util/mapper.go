package util

import (
	"github.com/veritas-legal/lexaid-core-api/biz/application/dto/basic"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// BuildFindOption 根据页码分页构造查询选项
func BuildFindOption(p *basic.Page) (opts *options.FindOptionsBuilder) {
	opts = options.Find()
	page, size := p.GetPage(), p.GetSize()
	opts.SetSkip((page - 1) * size)
	opts.SetLimit(size)
	return
}

// HasMore 根据总数和页码判断是否还有后续页
func HasMore(total int64, page *basic.Page) bool {
	return total > page.GetPage()*page.GetSize()
}

// SplitAndHasMore 用于游标分页, 查询size+1条时切掉多余的一条并判断是否还有更多
func SplitAndHasMore[T any](slice []T, page *basic.Page) (ans []T, hasMore bool) {
	size, length := page.GetSize(), int64(len(slice))
	hasMore = length > size
	if size > length {
		ans = slice[:length]
	} else {
		ans = slice[:size]
	}
	return
}
