package views

// Paginator keeps a cursor inside a scrolling window of a list
type Paginator struct {
	pageSize   int
	pageOffset int
	cursor     int
	totalItems int
}

// NewPaginator creates a new paginator with the given page size
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Paginator{pageSize: pageSize}
}

// SetTotal sets the total number of items and keeps the cursor in range
func (p *Paginator) SetTotal(total int) {
	p.totalItems = total
	p.SetCursor(p.cursor)
}

// Reset moves the cursor back to the first item
func (p *Paginator) Reset(total int) {
	p.cursor, p.pageOffset = 0, 0
	p.SetTotal(total)
}

// Cursor returns the absolute index of the selected item
func (p *Paginator) Cursor() int {
	return p.cursor
}

// SetCursor moves the cursor, clamped to the list
func (p *Paginator) SetCursor(pos int) {
	p.cursor = max(0, min(pos, p.totalItems-1))
	p.follow()
}

// CursorUp moves the cursor up by one
func (p *Paginator) CursorUp() bool {
	if p.cursor == 0 {
		return false
	}
	p.SetCursor(p.cursor - 1)
	return true
}

// CursorDown moves the cursor down by one
func (p *Paginator) CursorDown() bool {
	if p.cursor >= p.totalItems-1 {
		return false
	}
	p.SetCursor(p.cursor + 1)
	return true
}

// Window returns the half-open range of visible items
func (p *Paginator) Window() (start, end int) {
	return p.pageOffset, min(p.pageOffset+p.pageSize, p.totalItems)
}

// Hidden returns how many items lie below the window
func (p *Paginator) Hidden() int {
	_, end := p.Window()
	return p.totalItems - end
}

// SetPageSize changes the window height
func (p *Paginator) SetPageSize(size int) {
	if size > 0 {
		p.pageSize = size
		p.follow()
	}
}

func (p *Paginator) follow() {
	if p.cursor < p.pageOffset {
		p.pageOffset = p.cursor
	}
	if p.cursor >= p.pageOffset+p.pageSize {
		p.pageOffset = p.cursor - p.pageSize + 1
	}
	p.pageOffset = max(0, p.pageOffset)
}
