package model

// Page is a complete standalone screen occupying everything but the footer.
type Page int

const (
	PageMain Page = iota
	PageHelp
)

// SidebarWidth is the fixed width of the navigation column including its border.
const SidebarWidth = 30

// ViewState tracks the common ui states that are shared between many models.
type ViewState struct {
	Page Page

	// ------------------- h
	// | Side | Content  | e
	// |      |          | i
	// |-----------------| g
	// | Footer          | h
	// W  i  d  t  h      t
	Width   int
	Height  int
	Content int
	Footer  int
}

// ContentWidth is the room left for panels beside the sidebar.
func (v ViewState) ContentWidth() int {
	return max(v.Width-SidebarWidth-1, 0)
}

func (v ViewState) Initialized() bool {
	return v.Width != 0 && v.Height != 0
}
