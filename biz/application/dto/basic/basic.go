package basic

type Response struct {
	Code int32  `json:"code"`
	Msg  string `json:"msg"`
}

// Page 分页参数, 页码分页用Page+Size, 游标分页用Cursor+Size
type Page struct {
	Page   *int64  `json:"page,omitempty"`
	Size   *int64  `json:"size,omitempty"`
	Cursor *string `json:"cursor,omitempty"`
}

func (p *Page) GetPage() int64 {
	if p == nil || p.Page == nil || *p.Page < 1 {
		return 1
	}
	return *p.Page
}

func (p *Page) GetSize() int64 {
	if p == nil || p.Size == nil || *p.Size < 1 {
		return 10
	}
	return *p.Size
}

func (p *Page) GetCursor() string {
	if p == nil || p.Cursor == nil {
		return ""
	}
	return *p.Cursor
}
