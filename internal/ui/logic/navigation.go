package logic

// Navigator handles the list cursor and viewport management
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	total          int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{viewportHeight: 1}
}

// UpdateState sets the number of rows and how many fit on screen,
// keeping the cursor inside the list
func (n *Navigator) UpdateState(total, viewportHeight int) {
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	n.total = total
	n.viewportHeight = viewportHeight
	n.clamp()
}

// Reset moves the cursor back to the first row
func (n *Navigator) Reset() {
	n.selectedIndex = 0
	n.viewportOffset = 0
}

// GetSelectedIndex returns the current selected index
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// GetViewportOffset returns the current viewport offset
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// GetViewportHeight returns the number of visible rows
func (n *Navigator) GetViewportHeight() int {
	return n.viewportHeight
}

// SetSelectedIndex sets the selected index and ensures it's visible
func (n *Navigator) SetSelectedIndex(index int) {
	n.selectedIndex = index
	n.clamp()
}

// MoveUp moves the cursor up by one row
func (n *Navigator) MoveUp() {
	n.SetSelectedIndex(n.selectedIndex - 1)
}

// MoveDown moves the cursor down by one row
func (n *Navigator) MoveDown() {
	n.SetSelectedIndex(n.selectedIndex + 1)
}

// PageUp moves the cursor up by one viewport
func (n *Navigator) PageUp() {
	n.SetSelectedIndex(n.selectedIndex - n.viewportHeight)
}

// PageDown moves the cursor down by one viewport
func (n *Navigator) PageDown() {
	n.SetSelectedIndex(n.selectedIndex + n.viewportHeight)
}

// GoToTop moves to the first row
func (n *Navigator) GoToTop() {
	n.SetSelectedIndex(0)
}

// GoToBottom moves to the last row
func (n *Navigator) GoToBottom() {
	n.SetSelectedIndex(n.total - 1)
}

func (n *Navigator) clamp() {
	if n.selectedIndex > n.total-1 {
		n.selectedIndex = n.total - 1
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}
	n.ensureSelectedVisible()
}

// ensureSelectedVisible adjusts the viewport to keep the selected item visible
func (n *Navigator) ensureSelectedVisible() {
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}
	if n.selectedIndex >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.selectedIndex - n.viewportHeight + 1
	}

	// Don't leave empty space below the last row
	if maxOffset := n.total - n.viewportHeight; n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
